package howlongtobeat

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func (c *Client) search(ctx context.Context, title string) (SearchResult, error) {
	body, err := c.GetPage(ctx, title)
	if err != nil {
		return SearchResult{}, fmt.Errorf("howlongtobeat: search %q: %w", title, err)
	}
	result, err := ParseSearch(ctx, body)
	if err != nil {
		c.tel.ReportBroken(report_client_search, err, title)
		return SearchResult{}, fmt.Errorf("howlongtobeat: parse results of %q: %w", title, err)
	}
	return result, nil
}

// Search looks up the title and returns its first hit.
//
// Games in a series are sometimes listed with roman numerals, so when nothing
// is found for a title containing a number the search is tried exactly once
// more with the number converted, ex. "Kings Quest 2" -> "Kings Quest II".
func (c *Client) Search(ctx context.Context, title string) (SearchResult, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()
	span.SetAttributes(attribute.String("title", title))

	result, err := c.search(ctx, title)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return SearchResult{}, err
	}
	if result.StoryHours != 0 || !hasNumber(title) {
		return result, nil
	}

	retry := ToRoman(title)
	c.tel.ReportDebug("retrying with roman numerals", title, retry)
	span.SetAttributes(attribute.String("retry_title", retry))

	result, err = c.search(ctx, retry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "retry failed")
		return SearchResult{}, err
	}
	return result, nil
}

// Find returns the "Main Story" hours of the title, 0 if none are known.
func (c *Client) Find(ctx context.Context, title string) (int, error) {
	result, err := c.Search(ctx, title)
	if err != nil {
		return 0, err
	}
	return result.StoryHours, nil
}
