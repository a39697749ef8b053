package howlongtobeat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "embed"
)

//go:embed testdata/single_hit.html
var singleHit []byte

//go:embed testdata/fractional_hours.html
var fractionalHours []byte

//go:embed testdata/no_hours.html
var noHours []byte

//go:embed testdata/no_hits.html
var noHits []byte

//go:embed testdata/multiple_hits.html
var multipleHits []byte

func TestStoryHours(t *testing.T) {
	table := []struct {
		name     string
		page     []byte
		expected int
	}{
		{name: "single hit", page: singleHit, expected: 14},
		{name: "fractions are dropped", page: fractionalHours, expected: 2},
		{name: "no hours available", page: noHours, expected: 0},
		{name: "no hits", page: noHits, expected: 0},
		{name: "first of multiple hits", page: multipleHits, expected: 45},
		{name: "empty page", page: []byte(""), expected: 0},
		{
			name:     "single tidbit",
			page:     []byte(`<div class="search_list_details"><div class="gamelist_tidbit">Main Story</div></div>`),
			expected: 0,
		},
	}

	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			hours, err := StoryHours(context.Background(), test.page)
			require.NoError(t, err)
			require.Equal(t, test.expected, hours)
		})
	}
}

func TestParseSearchTitle(t *testing.T) {
	result, err := ParseSearch(context.Background(), multipleHits)
	require.NoError(t, err)
	require.Equal(t, SearchResult{Title: "Baldur's Gate", StoryHours: 45}, result)

	result, err = ParseSearch(context.Background(), noHits)
	require.NoError(t, err)
	require.Equal(t, SearchResult{}, result)
}

func TestExtractHours(t *testing.T) {
	table := []struct {
		input    string
		expected int
	}{
		{input: "14 Hours", expected: 14},
		{input: "2½ Hours", expected: 2},
		{input: "  107 Hours\n", expected: 107},
		{input: "N/A", expected: 0},
		{input: "", expected: 0},
		{input: "½ Hours", expected: 0},
		{input: "99999999999999999999999 Hours", expected: 0},
	}

	for _, row := range table {
		require.Equal(t, row.expected, extractHours(row.input), row.input)
	}
}
