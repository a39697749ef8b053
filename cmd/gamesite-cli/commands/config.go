package commands

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gamesitetools/internal/components/telemetry"
	"gamesitetools/internal/scrapers/backloggery"
	"gamesitetools/internal/scrapers/howlongtobeat"
	"gamesitetools/pkg/configutil"
	"gamesitetools/pkg/restyutil"

	"github.com/go-resty/resty/v2"
)

type BackloggeryConfig struct {
	Username string `json:"username"`
	BaseUrl  string `json:"base_url"`
}

type HowLongToBeatConfig struct {
	BaseUrl   string `json:"base_url"`
	UserAgent string `json:"user_agent"`
}

type Config struct {
	Backloggery    BackloggeryConfig   `json:"backloggery"`
	HowLongToBeat  HowLongToBeatConfig `json:"howlongtobeat"`
	TimeoutSeconds int                 `json:"timeout_seconds"`
}

const (
	envUsername = "GAMESITE_BACKLOGGERY_USERNAME"
	envTimeout  = "GAMESITE_TIMEOUT_SECONDS"
)

// readConfig reads the config file if there is one and applies the
// environment overrides on top of it.
func readConfig() (Config, error) {
	cfg, err := configutil.ReadRecursively[Config](*configPath)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if username, ok := os.LookupEnv(envUsername); ok {
		cfg.Backloggery.Username = username
	}
	if timeout, ok := os.LookupEnv(envTimeout); ok {
		seconds, err := strconv.Atoi(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", envTimeout, err)
		}
		cfg.TimeoutSeconds = seconds
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = 30
	}
	return cfg, nil
}

func (c Config) timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func newBackloggeryClient(cfg Config, username string) (*backloggery.Client, error) {
	if username == "" {
		username = cfg.Backloggery.Username
	}
	if username == "" {
		return nil, fmt.Errorf(
			"no backloggery username, pass --user, set backloggery.username in %s or set %s",
			*configPath, envUsername,
		)
	}
	client, err := backloggery.NewClient(backloggery.ClientOptions{
		Username:  username,
		BaseUrl:   cfg.Backloggery.BaseUrl,
		Timeout:   cfg.timeout(),
		Telemetry: telemetry.SlogAPI{},
	})
	if err != nil {
		return nil, err
	}
	err = dumpTo(client.Http, "backloggery")
	if err != nil {
		return nil, err
	}
	return client, nil
}

func newHowLongToBeatClient(cfg Config) (*howlongtobeat.Client, error) {
	client, err := howlongtobeat.NewClient(howlongtobeat.ClientOptions{
		BaseUrl:   cfg.HowLongToBeat.BaseUrl,
		UserAgent: cfg.HowLongToBeat.UserAgent,
		Timeout:   cfg.timeout(),
		Telemetry: telemetry.SlogAPI{},
	})
	if err != nil {
		return nil, err
	}
	err = dumpTo(client.Http, "howlongtobeat")
	if err != nil {
		return nil, err
	}
	return client, nil
}

func dumpTo(client *resty.Client, prefix string) error {
	if *dumpDir == "" {
		return nil
	}
	out, err := restyutil.NewFilesystemOutput(*dumpDir)
	if err != nil {
		return fmt.Errorf("create dump dir: %w", err)
	}
	restyutil.Dump(client, prefix, out)
	return nil
}
