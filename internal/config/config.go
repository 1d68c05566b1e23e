package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultGoldTypes are the price-board labels tracked when the config does not
// list any. Labels must match the upstream feed exactly (after trimming).
var DefaultGoldTypes = []string{"Nhẫn 999.9", "Vàng Miếng SJC (Loại 10 chỉ)"}

type Config struct {
	Feed     Feed     `yaml:"feed"`
	Time     Time     `yaml:"time"`
	Storage  Storage  `yaml:"storage"`
	Schedule Schedule `yaml:"schedule"`
	Logger   Logger   `yaml:"logger"`
}

type Feed struct {
	URL        string   `env-default:"https://ngoctham.com/ajax/proxy_banggia.php" yaml:"url"`
	Referer    string   `env-default:"https://ngoctham.com/bang-gia-vang/" yaml:"referer"`
	UserAgent  string   `env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36" yaml:"user-agent"`
	TimeoutSec int      `env-default:"30" yaml:"timeout-sec"`
	GoldTypes  []string `yaml:"gold-types"`
}

func (f *Feed) Timeout() time.Duration {
	return time.Duration(f.TimeoutSec) * time.Second
}

type Time struct {
	Zone           string `env-default:"Asia/Ho_Chi_Minh" yaml:"zone"`
	UTCOffsetHours int    `env-default:"7" yaml:"utc-offset-hours"`
}

// Location returns the fixed civil calendar zone used to stamp observations.
// A fixed offset keeps the day boundary stable regardless of the host zone.
func (t *Time) Location() *time.Location {
	return time.FixedZone(t.Zone, t.UTCOffsetHours*3600)
}

type Storage struct {
	Path string `env-default:"data/gold_prices.csv" yaml:"path"`
}

type Schedule struct {
	Cron string `env-default:"0 9 * * *" yaml:"cron"`
}

type Logger struct {
	Level           string     `env-default:"info" yaml:"level"`
	ParsedSlogLevel slog.Level `yaml:"-"`
}

// MustLoad loads config from a file, falling back to env-only defaults when
// the file does not exist.
func MustLoad(configPath string) *Config {
	cnf := &Config{}

	var err error
	if _, statErr := os.Stat(configPath); errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(cnf)
	} else {
		err = cleanenv.ReadConfig(configPath, cnf)
	}
	if err != nil {
		panic(fmt.Errorf("cannot read config: %w", err))
	}

	if len(cnf.Feed.GoldTypes) == 0 {
		cnf.Feed.GoldTypes = append([]string(nil), DefaultGoldTypes...)
	}

	switch cnf.Logger.Level {
	case "debug":
		cnf.Logger.ParsedSlogLevel = slog.LevelDebug
	case "info":
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	case "warn":
		cnf.Logger.ParsedSlogLevel = slog.LevelWarn
	case "error":
		cnf.Logger.ParsedSlogLevel = slog.LevelError
	default:
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	}

	return cnf
}
