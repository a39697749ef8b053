package howlongtobeat

import (
	"context"
	"fmt"
	"time"

	"gamesitetools/internal/components/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const (
	report_client_get_page = "client.get-page"
	report_client_search   = "client.search"
)

const DefaultBaseUrl = "https://howlongtobeat.com"

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type ClientOptions struct {
	// BaseUrl defaults to DefaultBaseUrl.
	BaseUrl string
	// UserAgent defaults to DefaultUserAgent, the site rejects requests that
	// do not look like they come from a browser.
	UserAgent string
	// Timeout of a single request, 0 means no timeout.
	Timeout time.Duration
	// Telemetry defaults to telemetry.SlogAPI.
	Telemetry telemetry.API
}

type Client struct {
	Http *resty.Client

	tel telemetry.API
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Telemetry == nil {
		opts.Telemetry = telemetry.SlogAPI{}
	}
	tel := telemetry.NewScopedAPI("howlongtobeat", opts.Telemetry)

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	httpClient.SetHeader("user-agent", opts.UserAgent)
	httpClient.SetHeader("referer", opts.BaseUrl)
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	telemetry.InstrumentResty(httpClient, tel)

	return &Client{
		Http: httpClient,
		tel:  tel,
	}, nil
}

func searchForm(query string) map[string]string {
	return map[string]string{
		"queryString": query,
		"t":           "games",
		"sorthead":    "popular",
		"sortd":       "0",
		"plat":        "",
		"length_type": "main",
		"length_min":  "",
		"length_max":  "",
		"detail":      "",
		"v":           "",
		"f":           "",
		"g":           "",
		"randomize":   "0",
	}
}

// GetPage fetches the raw html of the first page of search results for the query.
func (c *Client) GetPage(ctx context.Context, query string) ([]byte, error) {
	c.tel.ReportDebug(report_client_get_page, query)

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParam("page", "1").
		SetFormData(searchForm(query)).
		Post("/search_results")
	if err != nil {
		c.tel.ReportBroken(
			report_client_get_page,
			fmt.Errorf("fetch: %w", err),
			query,
		)
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("howlongtobeat: unexpected status %s", res.Status())
		c.tel.ReportBroken(report_client_get_page, err, query)
		return nil, err
	}

	return res.Body(), nil
}
