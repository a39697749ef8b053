package backloggery

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Find fetches every page of the collection listing that matches the filter.
//
// Pages are fetched one after another, the offset of a page is the amount of
// games returned so far.
func (c *Client) Find(ctx context.Context, filter Filter) ([]Game, error) {
	ctx, span := tracer.Start(ctx, "Find")
	defer span.End()

	games := []Game{}
	offset := 0
	for {
		body, err := c.GetPage(ctx, filter, offset)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to get page")
			return nil, fmt.Errorf("backloggery: get page at %d: %w", offset, err)
		}
		page, err := ParsePage(ctx, body)
		if err != nil {
			c.tel.ReportBroken(report_client_find, err, offset)
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to parse page")
			return nil, fmt.Errorf("backloggery: parse page at %d: %w", offset, err)
		}

		games = append(games, page...)
		offset += len(page)

		if len(page) < PageSize {
			break
		}
	}

	span.SetAttributes(attribute.Int("games", len(games)))
	c.tel.ReportCount(report_client_find, int64(len(games)))
	return games, nil
}
