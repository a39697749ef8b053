package howlongtobeat

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"gamesitetools/pkg/htmlutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("gamesitetools.scrapers.howlongtobeat")

// SearchResult is the first hit of a search.
//
// StoryHours is 0 both when nothing was found and when the hit has no
// "Main Story" time recorded, callers cannot tell the two apart.
type SearchResult struct {
	Title      string
	StoryHours int
}

var leadingDigits = regexp.MustCompile(`^\d+`)

// extractHours returns the whole hours of a tidbit value like "14 Hours" or
// "2½ Hours", fractions are dropped and anything without leading digits
// (ex. "N/A") is 0.
func extractHours(value string) int {
	digits := leadingDigits.FindString(strings.TrimSpace(value))
	if digits == "" {
		return 0
	}
	hours, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return hours
}

// ParseSearch parses a search results page (or a single game listing).
//
// The tidbits of a hit come in label/value pairs, the first pair is
// "Main Story", so the story hours are the value of the second tidbit on the
// page. With multiple hits this is the value of the first hit.
func ParseSearch(ctx context.Context, body []byte) (SearchResult, error) {
	_, span := tracer.Start(ctx, "ParseSearch")
	defer span.End()

	doc, err := htmlutil.Parse(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return SearchResult{}, err
	}

	tidbits := doc.Find(".gamelist_tidbit")
	if tidbits.Len() < 2 {
		// no search hits
		return SearchResult{}, nil
	}

	result := SearchResult{
		Title:      htmlutil.CollapseWhitespace(doc.Find("h3 a").First().Text()),
		StoryHours: extractHours(tidbits.Eq(1).Text()),
	}
	span.SetAttributes(
		attribute.String("title", result.Title),
		attribute.Int("story_hours", result.StoryHours),
	)
	return result, nil
}

// StoryHours returns the "Main Story" hours of the first hit on the page, 0
// if there are no hits or no recorded time.
func StoryHours(ctx context.Context, body []byte) (int, error) {
	result, err := ParseSearch(ctx, body)
	if err != nil {
		return 0, err
	}
	return result.StoryHours, nil
}
