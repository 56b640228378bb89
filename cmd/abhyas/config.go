package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mikepea/abhyas/pkg/abhyas/database"
	"github.com/urfave/cli/v2"
)

var errInvalidInvocation = errors.New("invalid invocation")

// Config is the resolved command line
type Config struct {
	DBPath     string
	ImportFile string
	ExportFile string
	ImportOnly bool
	Debug      bool

	// Args holds positional arguments, which are not accepted
	Args []string
}

// Validate reports every problem with the invocation at once
func (cfg *Config) Validate() error {
	var err error
	if len(cfg.Args) > 0 {
		err = multierror.Append(err, fmt.Errorf("unexpected arguments: %s", strings.Join(cfg.Args, " ")))
	}
	if cfg.DBPath == "" {
		err = multierror.Append(err, errors.New("database path not specified"))
	}
	if cfg.ImportOnly && cfg.ImportFile == "" {
		err = multierror.Append(err, errors.New("--import-only requires --file"))
	}
	if cfg.ImportFile != "" && cfg.ExportFile != "" {
		err = multierror.Append(err, errors.New("--file and --export cannot be combined"))
	}

	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidInvocation, err)
	}
	return nil
}

func configFromContext(c *cli.Context) (Config, error) {
	cfg := Config{
		DBPath:     c.String("db"),
		ImportFile: c.String("file"),
		ExportFile: c.String("export"),
		ImportOnly: c.Bool("import-only"),
		Debug:      c.Bool("debug"),
		Args:       c.Args().Slice(),
	}

	if cfg.DBPath == "" {
		path, err := database.DefaultPath()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = path
	}

	return cfg, cfg.Validate()
}
