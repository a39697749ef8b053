package backloggery

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gamesitetools/internal/components/assert"
	"gamesitetools/internal/components/telemetry"

	"github.com/go-resty/resty/v2"
)

const (
	report_client_get_page = "client.get-page"
	report_client_find     = "client.find"
)

const DefaultBaseUrl = "http://backloggery.com"

// PageSize is the amount of games the site returns per page. The response
// does not say how many games there are, so a page shorter than this is
// the only indication that it was the last one.
const PageSize = 50

type ClientOptions struct {
	// Username is the owner of the collection, it is required.
	Username string
	// BaseUrl defaults to DefaultBaseUrl.
	BaseUrl string
	// Timeout of a single request, 0 means no timeout.
	Timeout time.Duration
	// Telemetry defaults to telemetry.SlogAPI.
	Telemetry telemetry.API
}

// Client scrapes a single user's collection.
type Client struct {
	Username string
	Http     *resty.Client

	tel telemetry.API
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Username == "" {
		return nil, fmt.Errorf("backloggery: username is required")
	}
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Telemetry == nil {
		opts.Telemetry = telemetry.SlogAPI{}
	}
	tel := telemetry.NewScopedAPI("backloggery", opts.Telemetry)

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	telemetry.InstrumentResty(httpClient, tel)

	return &Client{
		Username: opts.Username,
		Http:     httpClient,
		tel:      tel,
	}, nil
}

func (c *Client) pageParams(filter Filter, offset int) (map[string]string, error) {
	params := map[string]string{
		"console":  filter.Console,
		"rating":   filter.Rating,
		"status":   "",
		"unplayed": "",
		"own":      filter.Own,
		"search":   filter.Search,
		"comments": filter.Comments,
		"region":   filter.Region,
		"region_u": "0",
		"wish":     filter.Wish,
		"alpha":    filter.Alpha,
		"temp_sys": "ZZZ",
		"total":    "0",
		"aid":      "1",
		"ajid":     strconv.Itoa(offset),
		"user":     c.Username,
	}
	if filter.Status != StatusAny {
		if _, ok := statusTable[filter.Status]; !ok {
			return nil, fmt.Errorf("%w: filter by %s", ErrUnknownStatus, filter.Status)
		}
		params["status"], params["unplayed"] = filter.Status.QueryPair()
	}
	return params, nil
}

// GetPage fetches the raw html of the page of the collection listing starting
// at the given offset (0 based, counted in games).
func (c *Client) GetPage(ctx context.Context, filter Filter, offset int) ([]byte, error) {
	assert.NotEmptyStr(c.Username, "username")

	params, err := c.pageParams(filter, offset)
	if err != nil {
		return nil, err
	}

	c.tel.ReportDebug(report_client_get_page, offset)

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/ajax_moregames.php")
	if err != nil {
		c.tel.ReportBroken(
			report_client_get_page,
			fmt.Errorf("fetch: %w", err),
			offset,
		)
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("backloggery: unexpected status %s", res.Status())
		c.tel.ReportBroken(report_client_get_page, err, offset)
		return nil, err
	}

	return res.Body(), nil
}
