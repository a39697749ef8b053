package commands

import (
	"gamesitetools/internal/scrapers/backloggery"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type filterFlags struct {
	user     *string
	status   *string
	search   *string
	platform *string
	alpha    *string
}

func addFilterFlags(cmd *cobra.Command) filterFlags {
	return filterFlags{
		user:     cmd.Flags().String("user", "", "The backloggery user, defaults to the configured one."),
		status:   cmd.Flags().String("status", "", "Only list games of a status (unplayed, unfinished, beaten, completed, mastered, null)."),
		search:   cmd.Flags().String("search", "", "Only list games whose name contains this text."),
		platform: cmd.Flags().String("platform", "", "Only list games of a platform, ex. 3DS."),
		alpha:    cmd.Flags().String("alpha", "", "Only list games starting with this letter."),
	}
}

func (f filterFlags) filter() (backloggery.Filter, error) {
	status, err := backloggery.ParseStatus(*f.status)
	if err != nil {
		return backloggery.Filter{}, err
	}
	return backloggery.Filter{
		Search:  *f.search,
		Status:  status,
		Console: *f.platform,
		Alpha:   *f.alpha,
	}, nil
}

var collectionFlags filterFlags

var collectionCmd = &cobra.Command{
	Use:   "collection [--user <name>] [--status <status>] [--search <text>] [--platform <platform>]",
	Short: "Lists the games of a backloggery collection.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}
		filter, err := collectionFlags.filter()
		if err != nil {
			return err
		}
		client, err := newBackloggeryClient(cfg, *collectionFlags.user)
		if err != nil {
			return err
		}

		games, err := client.Find(cmd.Context(), filter)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Name", "Platform", "Status"})
		for _, game := range games {
			t.AppendRow(table.Row{game.Name, game.Platform, game.Status.String()})
		}
		t.AppendFooter(table.Row{"", "Total", len(games)})
		t.Render()
		return nil
	},
}

func init() {
	collectionFlags = addFilterFlags(collectionCmd)
	rootCmd.AddCommand(collectionCmd)
}
