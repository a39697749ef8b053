package backloggery

import (
	"context"
	"fmt"
	"strings"

	"gamesitetools/pkg/htmlutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("gamesitetools.scrapers.backloggery")

// ParsePage parses a page of a collection listing into games, in document order.
//
// Listing blocks without a bolded title (system separators, end of section
// markers) are not games and are skipped. A game whose status icon is missing or
// unknown fails the whole page, since it means the markup has changed.
func ParsePage(ctx context.Context, body []byte) ([]Game, error) {
	_, span := tracer.Start(ctx, "ParsePage")
	defer span.End()

	doc, err := htmlutil.Parse(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	games := []Game{}
	var parseErr error
	doc.Find("section.gamebox").Each(func(i int, box htmlutil.Selection) {
		if parseErr != nil {
			return
		}
		title := box.Find("h2").First()
		name := strings.TrimSpace(title.Find("b").First().Text())
		if name == "" {
			return
		}

		game, err := parseGame(name, title, box)
		if err != nil {
			parseErr = fmt.Errorf("listing block %d: %w", i, err)
			return
		}
		games = append(games, game)
	})
	if parseErr != nil {
		span.RecordError(parseErr)
		span.SetStatus(codes.Error, "failed to parse listing block")
		return nil, parseErr
	}

	span.SetAttributes(attribute.Int("games", len(games)))
	return games, nil
}

func parseGame(name string, title, box htmlutil.Selection) (Game, error) {
	platform := strings.TrimSpace(box.Find("div").First().Find("b").First().Text())

	icon, ok := title.Find("img").First().Attr("alt")
	if !ok {
		return Game{}, fmt.Errorf("%w: no status icon for %q", ErrUnknownStatus, name)
	}
	status, err := StatusFromIcon(icon)
	if err != nil {
		return Game{}, err
	}

	return Game{
		Name:     name,
		Platform: platform,
		Status:   status,
	}, nil
}
