// Package backlog estimates how long it would take to get through a
// collection by looking up every unfinished game's story length.
package backlog

import (
	"context"
	"fmt"
	"strings"

	"gamesitetools/internal/components/assert"
	"gamesitetools/internal/components/telemetry"
	"gamesitetools/internal/scrapers/backloggery"
	"gamesitetools/internal/scrapers/howlongtobeat"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("gamesitetools.backlog")

const (
	report_estimate_lookup = "estimate.lookup"
	report_estimate_match  = "estimate.match"
)

// SuspiciousSimilarity is the similarity under which a matched title likely
// belongs to a different game than the one that was looked up.
const SuspiciousSimilarity = 0.75

// DefaultStatuses are the statuses a backlog is made of.
var DefaultStatuses = []backloggery.Status{
	backloggery.StatusUnfinished,
	backloggery.StatusUnplayed,
}

type GameSource interface {
	Find(ctx context.Context, filter backloggery.Filter) ([]backloggery.Game, error)
}

type LengthSource interface {
	Search(ctx context.Context, title string) (howlongtobeat.SearchResult, error)
}

type Entry struct {
	backloggery.Game
	Hours int
	// MatchedTitle is the title of the game the hours belong to, empty when
	// nothing was found.
	MatchedTitle string
	// Similarity is the Jaro-Winkler similarity of the name and the matched
	// title, in [0, 1].
	Similarity float64
}

func (e Entry) Suspicious() bool {
	return e.MatchedTitle != "" && e.Similarity < SuspiciousSimilarity
}

type Report struct {
	Entries    []Entry
	TotalHours int
	// Missing is the amount of games without known hours.
	Missing int
}

type Options struct {
	// Filter is applied to every status, its Status field is ignored.
	Filter backloggery.Filter
	// Statuses defaults to DefaultStatuses.
	Statuses  []backloggery.Status
	Telemetry telemetry.API
}

func similarity(name, title string) float64 {
	if title == "" {
		return 0
	}
	return matchr.JaroWinkler(strings.ToLower(name), strings.ToLower(title), false)
}

// Estimate fetches the games of every status in turn and looks each of them
// up, one request at a time.
func Estimate(ctx context.Context, games GameSource, lengths LengthSource, opts Options) (Report, error) {
	assert.NotNil(games, "game source")
	assert.NotNil(lengths, "length source")

	ctx, span := tracer.Start(ctx, "Estimate")
	defer span.End()

	if len(opts.Statuses) == 0 {
		opts.Statuses = DefaultStatuses
	}
	if opts.Telemetry == nil {
		opts.Telemetry = telemetry.SlogAPI{}
	}
	tel := telemetry.NewScopedAPI("backlog", opts.Telemetry)

	report := Report{Entries: []Entry{}}
	for _, status := range opts.Statuses {
		filter := opts.Filter
		filter.Status = status

		found, err := games.Find(ctx, filter)
		if err != nil {
			return Report{}, fmt.Errorf("backlog: find %s games: %w", status, err)
		}

		for _, game := range found {
			result, err := lengths.Search(ctx, game.Name)
			if err != nil {
				tel.ReportBroken(report_estimate_lookup, err, game.Name)
				return Report{}, fmt.Errorf("backlog: look up %q: %w", game.Name, err)
			}

			entry := Entry{
				Game:         game,
				Hours:        result.StoryHours,
				MatchedTitle: result.Title,
				Similarity:   similarity(game.Name, result.Title),
			}
			if entry.Suspicious() {
				tel.ReportWarning(report_estimate_match, game.Name, result.Title, entry.Similarity)
			}
			if entry.Hours == 0 {
				report.Missing++
			}
			report.TotalHours += entry.Hours
			report.Entries = append(report.Entries, entry)
		}
	}

	span.SetAttributes(
		attribute.Int("games", len(report.Entries)),
		attribute.Int("total_hours", report.TotalHours),
		attribute.Int("missing", report.Missing),
	)
	tel.ReportCount(report_estimate_lookup, int64(len(report.Entries)))
	return report, nil
}
