package commands

import (
	"fmt"

	"gamesitetools/internal/backlog"
	"gamesitetools/internal/components/telemetry"
	"gamesitetools/internal/scrapers/backloggery"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var backlogFlags filterFlags

var backlogCmd = &cobra.Command{
	Use:   "backlog [--user <name>] [--status <status>] [--platform <platform>]",
	Short: "Estimates how many hours it takes to finish the unfinished and unplayed games of a collection.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}
		filter, err := backlogFlags.filter()
		if err != nil {
			return err
		}
		games, err := newBackloggeryClient(cfg, *backlogFlags.user)
		if err != nil {
			return err
		}
		lengths, err := newHowLongToBeatClient(cfg)
		if err != nil {
			return err
		}

		var statuses []backloggery.Status
		if filter.Status != backloggery.StatusAny {
			statuses = []backloggery.Status{filter.Status}
		}

		report, err := backlog.Estimate(cmd.Context(), games, lengths, backlog.Options{
			Filter:    filter,
			Statuses:  statuses,
			Telemetry: telemetry.SlogAPI{},
		})
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Name", "Platform", "Status", "Match", "Hours"})
		for _, entry := range report.Entries {
			match := entry.MatchedTitle
			if entry.Suspicious() {
				match = fmt.Sprintf("%s (?)", match)
			}
			t.AppendRow(table.Row{entry.Name, entry.Platform, entry.Status.String(), match, entry.Hours})
		}
		t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d unknown", report.Missing), report.TotalHours})
		t.Render()
		return nil
	},
}

func init() {
	backlogFlags = addFilterFlags(backlogCmd)
	rootCmd.AddCommand(backlogCmd)
}
