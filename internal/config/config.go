// Package config reads the service configuration from the environment, with
// an optional .env file filling in anything not already set and command-line
// flags overriding both.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/detroitcommercial/microsite/internal/storage"
)

type Config struct {
	Port        string
	BaseURL     string
	ContentFile string
	AssetsDir   string
	StaticDir   string
	GeoIPPath   string
	LogLevel    string
	LogFormat   string
	Watch       bool
	Storage     storage.Config
}

var defaults = map[string]any{
	"PORT":          "8080",
	"BASE_URL":      "http://localhost:8080",
	"CONTENT_FILE":  "",
	"ASSETS_DIR":    "public",
	"STATIC_DIR":    "static",
	"GEOIP_DB_PATH": "",
	"LOG_LEVEL":     "info",
	"LOG_FORMAT":    "text",
	"CONTENT_WATCH": false,
	"S3_REGION":     "eu-central-1",
}

// flagKeys maps command-line flags to the variables they override.
var flagKeys = map[string]string{
	"addr":    "PORT",
	"content": "CONTENT_FILE",
	"assets":  "ASSETS_DIR",
	"static":  "STATIC_DIR",
	"watch":   "CONTENT_WATCH",
}

// Load applies envFile (if it exists) and then reads the environment.
// Variables already present in the environment win over the file, and
// flags in flags that were set on the command line win over both. flags
// may be nil.
func Load(envFile string, flags *pflag.FlagSet) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	return Config{
		Port:        v.GetString("PORT"),
		BaseURL:     v.GetString("BASE_URL"),
		ContentFile: v.GetString("CONTENT_FILE"),
		AssetsDir:   v.GetString("ASSETS_DIR"),
		StaticDir:   v.GetString("STATIC_DIR"),
		GeoIPPath:   v.GetString("GEOIP_DB_PATH"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		Watch:       v.GetBool("CONTENT_WATCH"),
		Storage: storage.Config{
			Endpoint:       v.GetString("S3_ENDPOINT"),
			PublicEndpoint: v.GetString("S3_PUBLIC_ENDPOINT"),
			Bucket:         v.GetString("S3_BUCKET"),
			Prefix:         v.GetString("S3_PREFIX"),
			AccessKey:      v.GetString("S3_ACCESS_KEY"),
			SecretKey:      v.GetString("S3_SECRET_KEY"),
			Region:         v.GetString("S3_REGION"),
		},
	}, nil
}

// Addr is the listen address for Port, which may be a bare port ("8080")
// or a full address (":8080", "127.0.0.1:8080").
func (c Config) Addr() string {
	if _, _, err := net.SplitHostPort(c.Port); err == nil {
		return c.Port
	}
	return ":" + c.Port
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.LogLevel)}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
