// Command datasource-demo renders the example data sources as ASCII trees.
//
//	datasource-demo root
//	datasource-demo sectioned
//	datasource-demo grouped kiwi kale lime
//	datasource-demo yaml --file catalog.yaml
//
// Settings can come from the environment or from a .env file
// (see DATASOURCE_ENV_FILE).
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

type Config struct {
	EnvFile  string `env:"DATASOURCE_ENV_FILE" default:".env"`
	LogLevel string `env:"LOG_LEVEL" default:"info" enum:"debug;info;warn;error;fatal;"`
}

func main() {
	ctx := context.Background()
	if err := Setup(ctx); err != nil {
		logger.Fatal(ctx, "failed to load configuration", logging.ErrField(err))
		os.Exit(1)
	}
	cli.Main(ctx, NewMux())
}

// Setup loads the optional .env file and configures logging.
func Setup(ctx context.Context) error {
	envFile, _, err := env.Lookup[string]("DATASOURCE_ENV_FILE", env.DefaultValue(".env"))
	if err != nil {
		return err
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	var c Config
	if err := env.Load(&c); err != nil {
		return err
	}

	logger.Configure(func(l *logging.Logger) {
		l.Level = logging.Level(c.LogLevel)
	})
	logger.Debug(ctx, "configuration loaded", logging.Field("env_file", c.EnvFile))
	return nil
}
