package backlog

import (
	"context"
	"errors"
	"testing"

	"gamesitetools/internal/components/telemetry"
	"gamesitetools/internal/scrapers/backloggery"
	"gamesitetools/internal/scrapers/howlongtobeat"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

type fakeGames struct {
	byStatus map[backloggery.Status][]backloggery.Game
	filters  []backloggery.Filter
	err      error
}

func (f *fakeGames) Find(ctx context.Context, filter backloggery.Filter) ([]backloggery.Game, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	return f.byStatus[filter.Status], nil
}

type fakeLengths struct {
	results map[string]howlongtobeat.SearchResult
	queries []string
	err     error
}

func (f *fakeLengths) Search(ctx context.Context, title string) (howlongtobeat.SearchResult, error) {
	f.queries = append(f.queries, title)
	if f.err != nil {
		return howlongtobeat.SearchResult{}, f.err
	}
	return f.results[title], nil
}

func TestEstimate(t *testing.T) {
	broken := backloggery.Game{Name: "Broken Sword 5", Platform: "iPad", Status: backloggery.StatusUnfinished}
	zelda := backloggery.Game{Name: "Legend of Zelda: A Link Between Worlds", Platform: "3DS", Status: backloggery.StatusUnplayed}
	enigma := backloggery.Game{Name: "Age of Enigma", Platform: "PC", Status: backloggery.StatusUnplayed}

	games := &fakeGames{byStatus: map[backloggery.Status][]backloggery.Game{
		backloggery.StatusUnfinished: {broken},
		backloggery.StatusUnplayed:   {zelda, enigma},
	}}
	lengths := &fakeLengths{results: map[string]howlongtobeat.SearchResult{
		broken.Name: {Title: "Broken Sword 5: The Serpent's Curse", StoryHours: 12},
		zelda.Name:  {Title: "The Legend of Zelda: A Link Between Worlds", StoryHours: 16},
	}}
	tel := &telemetry.RecordingAPI{}

	report, err := Estimate(context.Background(), games, lengths, Options{
		Filter:    backloggery.Filter{Console: "3DS", Status: backloggery.StatusBeaten},
		Telemetry: tel,
	})
	require.NoError(t, err)

	require.Equal(t, 28, report.TotalHours)
	require.Equal(t, 1, report.Missing)

	expected := []Entry{
		{Game: broken, Hours: 12, MatchedTitle: "Broken Sword 5: The Serpent's Curse"},
		{Game: zelda, Hours: 16, MatchedTitle: "The Legend of Zelda: A Link Between Worlds"},
		{Game: enigma},
	}
	if diff := cmp.Diff(expected, report.Entries, cmpopts.IgnoreFields(Entry{}, "Similarity")); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	require.Greater(t, report.Entries[0].Similarity, SuspiciousSimilarity)
	require.Equal(t, 0.0, report.Entries[2].Similarity)

	require.Len(t, games.filters, 2)
	require.Equal(t, backloggery.StatusUnfinished, games.filters[0].Status)
	require.Equal(t, backloggery.StatusUnplayed, games.filters[1].Status)
	for _, filter := range games.filters {
		require.Equal(t, "3DS", filter.Console)
	}
	require.Equal(t, []string{
		"Broken Sword 5",
		"Legend of Zelda: A Link Between Worlds",
		"Age of Enigma",
	}, lengths.queries)
}

func TestEstimateFlagsSuspiciousMatches(t *testing.T) {
	game := backloggery.Game{Name: "Lost Echo", Platform: "iPad", Status: backloggery.StatusUnplayed}
	games := &fakeGames{byStatus: map[backloggery.Status][]backloggery.Game{
		backloggery.StatusUnplayed: {game},
	}}
	lengths := &fakeLengths{results: map[string]howlongtobeat.SearchResult{
		"Lost Echo": {Title: "Zork: Grand Inquisitor", StoryHours: 8},
	}}
	tel := &telemetry.RecordingAPI{}

	report, err := Estimate(context.Background(), games, lengths, Options{
		Statuses:  []backloggery.Status{backloggery.StatusUnplayed},
		Telemetry: tel,
	})
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	require.True(t, report.Entries[0].Suspicious())
	require.Len(t, tel.Reports("warning"), 1)
}

func TestEstimatePropagatesErrors(t *testing.T) {
	failure := errors.New("connection reset")

	_, err := Estimate(context.Background(), &fakeGames{err: failure}, &fakeLengths{}, Options{})
	require.ErrorIs(t, err, failure)

	games := &fakeGames{byStatus: map[backloggery.Status][]backloggery.Game{
		backloggery.StatusUnfinished: {{Name: "Etrian Odyssey 4", Platform: "3DS", Status: backloggery.StatusUnfinished}},
	}}
	tel := &telemetry.RecordingAPI{}
	_, err = Estimate(context.Background(), games, &fakeLengths{err: failure}, Options{Telemetry: tel})
	require.ErrorIs(t, err, failure)
	require.Len(t, tel.Reports("broken"), 1)
}
