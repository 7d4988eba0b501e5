package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Config struct {
	// Checklist parsing
	InputPath  string
	OutputPath string
	StatsPath  string

	// Document attributes
	Title   string
	Version string
	Date    string

	// Graph export
	GraphDBPath     string
	GraphOutputPath string

	// Static server
	Port         string
	ServeRoot    string
	ServeGraphDB string

	ShutdownTimeout time.Duration

	// Logging
	LogFormat  string
	LogVerbose bool
}

func Load() Config {
	cfg := Config{
		InputPath:  envOr("WORKFLOW_INPUT", "estimation_workflow.md"),
		OutputPath: envOr("WORKFLOW_OUTPUT", "estimation_workflow_structured.json"),
		StatsPath:  envOr("WORKFLOW_STATS", "estimation_workflow_stats.json"),

		Title:   os.Getenv("WORKFLOW_TITLE"),
		Version: os.Getenv("WORKFLOW_VERSION"),
		Date:    os.Getenv("WORKFLOW_DATE"),

		GraphDBPath:     envOr("WORKFLOW_DB", "workflow.db"),
		GraphOutputPath: envOr("WORKFLOW_GRAPH", "workflow_graph.json"),

		Port:         envOr("PORT", "8000"),
		ServeRoot:    envOr("SERVE_ROOT", "."),
		ServeGraphDB: os.Getenv("SERVE_GRAPH_DB"),

		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		LogFormat:  envOr("LOG_FORMAT", "text"),
		LogVerbose: envBool("LOG_VERBOSE", false),
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.LogFormat, validation.Required, validation.In("text", "json").Error("must be text or json")),
		validation.Field(&c.Port, validation.By(tcpPort)),
	)
}

// ValidateParse checks the settings used by the parse command.
func (c Config) ValidateParse() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.InputPath, validation.Required),
		validation.Field(&c.OutputPath, validation.Required),
		validation.Field(&c.StatsPath, validation.Required,
			validation.NotIn(c.OutputPath).Error("must differ from the structured output path")),
	)
}

func tcpPort(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 65535 {
		return errors.New("must be a TCP port number")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
