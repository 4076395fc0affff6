package config

import (
	"errors"
	"flag"
	"os"
	"strings"

	configutil "github.com/NYCU-SDC/summer/pkg/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	ErrDatabaseURLRequired = errors.New("database_url is required")
)

type Config struct {
	Debug            bool     `yaml:"debug"              envconfig:"DEBUG"`
	Host             string   `yaml:"host"               envconfig:"HOST"`
	Port             string   `yaml:"port"               envconfig:"PORT"`
	DatabaseURL      string   `yaml:"database_url"       envconfig:"DATABASE_URL"`
	MigrationSource  string   `yaml:"migration_source"   envconfig:"MIGRATION_SOURCE"`
	OtelCollectorUrl string   `yaml:"otel_collector_url" envconfig:"OTEL_COLLECTOR_URL"`
	AllowOrigins     []string `yaml:"allow_origins"      envconfig:"ALLOW_ORIGINS"`
}

type LogBuffer struct {
	buffer []logEntry
}

type logEntry struct {
	msg  string
	err  error
	meta map[string]string
}

func NewConfigLogger() *LogBuffer {
	return &LogBuffer{}
}

func (cl *LogBuffer) Warn(msg string, err error, meta map[string]string) {
	cl.buffer = append(cl.buffer, logEntry{msg: msg, err: err, meta: meta})
}

func (cl *LogBuffer) FlushToZap(logger *zap.Logger) {
	for _, e := range cl.buffer {
		var fields []zap.Field
		if e.err != nil {
			fields = append(fields, zap.Error(e.err))
		}
		for k, v := range e.meta {
			fields = append(fields, zap.String(k, v))
		}
		logger.Warn(e.msg, fields...)
	}
	cl.buffer = nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrDatabaseURLRequired
	}

	return nil
}

func Load() (Config, *LogBuffer) {
	logger := NewConfigLogger()

	config := &Config{
		Debug:            false,
		Host:             "localhost",
		Port:             "5001",
		DatabaseURL:      "",
		MigrationSource:  "file://internal/database/migrations",
		OtelCollectorUrl: "",
		AllowOrigins:     []string{"http://localhost:3000"},
	}

	var err error

	config, err = FromFile("config.yaml", config, logger)
	if err != nil {
		logger.Warn("Failed to load config from file", err, map[string]string{"path": "config.yaml"})
	}

	config, err = FromEnv(config, logger)
	if err != nil {
		logger.Warn("Failed to load config from env", err, map[string]string{"path": ".env"})
	}

	config, err = FromFlags(config, os.Args[1:])
	if err != nil {
		logger.Warn("Failed to load config from flags", err, map[string]string{"path": "flags"})
	}

	return *config, logger
}

func FromFile(filePath string, config *Config, logger *LogBuffer) (*Config, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return config, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			logger.Warn("Failed to close config file", err, map[string]string{"path": filePath})
		}
	}(file)

	fileConfig := Config{}
	if err := yaml.NewDecoder(file).Decode(&fileConfig); err != nil {
		return config, err
	}

	return configutil.Merge[Config](config, &fileConfig)
}

func FromEnv(config *Config, logger *LogBuffer) (*Config, error) {
	if err := godotenv.Overload(); err != nil {
		if os.IsNotExist(err) {
			logger.Warn("No .env file found", err, map[string]string{"path": ".env"})
		} else {
			return config, err
		}
	}

	envConfig := &Config{
		Debug:            os.Getenv("DEBUG") == "true",
		Host:             os.Getenv("HOST"),
		Port:             os.Getenv("PORT"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MigrationSource:  os.Getenv("MIGRATION_SOURCE"),
		OtelCollectorUrl: os.Getenv("OTEL_COLLECTOR_URL"),
		AllowOrigins:     SplitList(os.Getenv("ALLOW_ORIGINS")),
	}

	return configutil.Merge[Config](config, envConfig)
}

func FromFlags(config *Config, args []string) (*Config, error) {
	flagConfig := &Config{}
	var allowOrigins string

	flags := flag.NewFlagSet("course-catalog-backend", flag.ContinueOnError)
	flags.BoolVar(&flagConfig.Debug, "debug", false, "debug mode")
	flags.StringVar(&flagConfig.Host, "host", "", "host")
	flags.StringVar(&flagConfig.Port, "port", "", "port")
	flags.StringVar(&flagConfig.DatabaseURL, "database_url", "", "database url")
	flags.StringVar(&flagConfig.MigrationSource, "migration_source", "", "migration source")
	flags.StringVar(&flagConfig.OtelCollectorUrl, "otel_collector_url", "", "OpenTelemetry collector URL")
	flags.StringVar(&allowOrigins, "allow_origins", "", "comma separated list of allowed CORS origins")

	if err := flags.Parse(args); err != nil {
		return config, err
	}
	flagConfig.AllowOrigins = SplitList(allowOrigins)

	return configutil.Merge[Config](config, flagConfig)
}

// SplitList splits a comma separated value, dropping blank entries. It returns nil for
// an empty input so the merge keeps the previous value.
func SplitList(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
