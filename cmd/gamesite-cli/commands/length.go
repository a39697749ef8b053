package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var lengthCmd = &cobra.Command{
	Use:   "length <title>",
	Short: "Prints the main story length of a game in hours.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}
		client, err := newHowLongToBeatClient(cfg)
		if err != nil {
			return err
		}

		title := strings.Join(args, " ")
		result, err := client.Search(cmd.Context(), title)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Query", "Match", "Main Story (hours)"})
		t.AppendRow(table.Row{title, result.Title, result.StoryHours})
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lengthCmd)
}
