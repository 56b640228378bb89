package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/mikepea/abhyas/pkg/abhyas/database"
	"github.com/mikepea/abhyas/pkg/abhyas/importexport"
	"github.com/mikepea/abhyas/pkg/abhyas/links"
	"github.com/mikepea/abhyas/pkg/abhyas/menu"
	"github.com/mikepea/abhyas/pkg/abhyas/terminal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	gormlogger "gorm.io/gorm/logger"
)

var (
	appName = "abhyas"
	version = "dev"
	logger  = newLogger()
)

// exitInterrupted is the conventional status for a process ended by SIGINT
const exitInterrupted = 130

func main() {
	if err := makeApp().Run(os.Args); err != nil {
		logger.WithError(err).Debug("shutting down due to error")
		os.Exit(1)
	}
}

func newLogger() *logrus.Entry {
	rootLogger := logrus.New()
	rootLogger.SetOutput(os.Stderr)
	rootLogger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return rootLogger.WithField("app", appName)
}

func makeApp() *cli.App {
	return &cli.App{
		Name:    appName,
		Usage:   "keep a worklist of links to practice, one at a time",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "import links from `PATH`, one per line, before starting",
			},
			&cli.BoolFlag{
				Name:  "import-only",
				Usage: "exit after importing --file",
			},
			&cli.StringFlag{
				Name:  "export",
				Usage: "write every link to `PATH`, one per line, and exit",
			},
			&cli.StringFlag{
				Name:    "db",
				EnvVars: []string{"ABHYAS_DB_PATH"},
				Usage:   "database `PATH` (default: <user cache dir>/abhyas/abhyas.db)",
			},
			&cli.BoolFlag{
				Name:    "debug",
				EnvVars: []string{"ABHYAS_DEBUG"},
				Usage:   "log diagnostics and SQL statements to stderr",
			},
		},
		Action: runMain,
	}
}

func runMain(c *cli.Context) error {
	out := terminal.NewRenderer(c.App.Writer)

	cfg, err := configFromContext(c)
	if errors.Is(err, errInvalidInvocation) {
		out.Failure("Error: " + err.Error())
		if err := cli.ShowAppHelp(c); err != nil {
			logger.WithError(err).Debug("failed to show help")
		}
		return cli.Exit("", 1)
	}
	if err != nil {
		out.Failure("Error: " + err.Error())
		return cli.Exit("", 1)
	}

	if cfg.Debug {
		logger.Logger.SetLevel(logrus.DebugLevel)
	}

	db, err := database.Connect(database.Config{
		Path:   cfg.DBPath,
		Logger: sqlLogger(cfg.Debug),
	})
	if err != nil {
		out.Failure("Error: " + err.Error())
		return cli.Exit("", 1)
	}
	logger.WithField("path", cfg.DBPath).Debug("database opened")

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, links.NewStore(db), terminal.NewPrompter(), out)
	if cerr := database.Close(db); cerr != nil {
		err = multierror.Append(err, cerr)
	}

	return exitStatus(err, out)
}

// run performs the import or export requested on the command line and then,
// unless told to stop, hands the store to the interactive session.
func run(ctx context.Context, cfg Config, store *links.Store, prompt menu.Prompter, out menu.Renderer) error {
	if cfg.ExportFile != "" {
		n, err := importexport.ExportFile(store, cfg.ExportFile)
		if err != nil {
			return err
		}
		out.Success(fmt.Sprintf("Exported %d links to %s", n, cfg.ExportFile))
		return nil
	}

	if cfg.ImportFile != "" {
		result, err := importexport.ImportFile(store, cfg.ImportFile)
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"file":     cfg.ImportFile,
			"read":     result.Read,
			"imported": result.Imported,
			"skipped":  result.Skipped,
		}).Debug("import finished")
		out.Success(fmt.Sprintf("Imported %d new links, skipped %d duplicates", result.Imported, result.Skipped))

		if cfg.ImportOnly {
			return nil
		}
	}

	return menu.NewSession(store, prompt, out).Run(ctx)
}

// exitStatus renders the error that ended the run and picks the exit code
func exitStatus(err error, out menu.Renderer) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, menu.ErrInterrupted):
		out.Failure("Error: User forcefully quit the operation")
		return cli.Exit("", exitInterrupted)
	case errors.Is(err, menu.ErrCancelled):
		out.Failure("Error: User cancelled the operation")
		return cli.Exit("", 1)
	default:
		logger.WithError(err).Debug("run failed")
		out.Failure("Error: " + err.Error())
		return cli.Exit("", 1)
	}
}

// sqlLogger routes gorm's statement trace to logrus when debugging
func sqlLogger(debug bool) gormlogger.Interface {
	if !debug {
		return nil
	}
	return gormlogger.New(logger, gormlogger.Config{
		LogLevel:                  gormlogger.Info,
		IgnoreRecordNotFoundError: true,
	})
}
