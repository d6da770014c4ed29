package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scanpro/internal/adapters/localstorage"
	"scanpro/internal/adapters/scanpro"
	"scanpro/internal/config"
	"scanpro/internal/i18n"
	"scanpro/internal/log"
	loglogrus "scanpro/internal/log/logrus"
	"scanpro/internal/printer"
	"scanpro/internal/service"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// ErrOperationFailed is returned when the service answered with a failed envelope.
var ErrOperationFailed = errors.New("operation failed")

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	Cmd     *cobra.Command
	Version string

	// Global flags.
	ConfigPath string
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	Format     string

	// Global instances, ready once the command line has been parsed.
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     log.Logger
	Config     *config.Config
	Translator *i18n.Translator

	viper *viper.Viper
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(version string, stdout, stderr io.Writer) *RootCommand {
	c := &RootCommand{
		Version:    version,
		Stdout:     stdout,
		Stderr:     stderr,
		Logger:     log.Noop,
		Translator: i18n.Default(),
		viper:      config.New(),
	}

	c.Cmd = &cobra.Command{
		Use:           "scanpro-cli",
		Short:         "Process documents with the ScanPro service.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
	}
	c.Cmd.SetOut(stdout)
	c.Cmd.SetErr(stderr)

	pf := c.Cmd.PersistentFlags()
	pf.StringVar(&c.ConfigPath, "config", "", "config file (default is $HOME/.scanpro.yaml)")
	pf.String("api-url", "", "Base URL of the processing service (env SCANPRO_API_URL).")
	pf.String("api-key", "", "API key sent in the x-api-key header (env SCANPRO_API_KEY).")
	pf.String("output-dir", "", "Directory downloaded results are saved to.")
	pf.String("data-dir", "", "Directory job records are kept in.")
	pf.String("lang", "", "Message language (en, es, fr). Defaults to $LANG.")
	pf.BoolVar(&c.Debug, "debug", false, "Enable debug mode.")
	pf.BoolVar(&c.NoLog, "no-log", false, "Disable logger.")
	pf.BoolVar(&c.NoColor, "no-color", false, "Disable logger color.")
	pf.StringVar(&c.LoggerType, "logger", LoggerTypeDefault, "Selects the logger type (default, json).")
	pf.StringVarP(&c.Format, "output", "o", printer.FormatText, "Output format (text, json, yaml).")

	for key, flag := range map[string]string{
		"api_url":    "api-url",
		"api_key":    "api-key",
		"output_dir": "output-dir",
		"data_dir":   "data-dir",
		"lang":       "lang",
	} {
		// Lookup only fails for unknown flags, all of them are registered above.
		_ = c.viper.BindPFlag(key, pf.Lookup(flag))
	}

	return c
}

func (c *RootCommand) setup() error {
	if c.LoggerType != LoggerTypeDefault && c.LoggerType != LoggerTypeJSON {
		return fmt.Errorf("invalid logger type %q", c.LoggerType)
	}
	if !slices.Contains(printer.Formats(), c.Format) {
		return fmt.Errorf("invalid output format %q", c.Format)
	}

	cfg, err := config.LoadConfig(c.viper, c.ConfigPath)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	c.Config = cfg

	lang := cfg.Lang
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	t, err := i18n.New(lang)
	if err != nil {
		return fmt.Errorf("could not load translations: %w", err)
	}
	c.Translator = t

	// Structured output owns stdout, keep it free of log noise unless debugging.
	if c.Format != printer.FormatText && !c.Debug {
		c.NoLog = true
	}
	c.Logger = c.newLogger()
	if used := c.viper.ConfigFileUsed(); used != "" {
		c.Logger.Debugf("Using config file %s", used)
	}

	return nil
}

// newLogger returns the application logger.
func (c *RootCommand) newLogger() log.Logger {
	if c.NoLog {
		return log.Noop
	}

	// If logger not disabled use logrus logger.
	logrusLog := logrus.New()
	logrusLog.Out = c.Stderr // By default logger goes to stderr (so it can split stdout prints).
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if c.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	switch c.LoggerType {
	case LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !c.NoColor,
			DisableColors: c.NoColor,
		})
	case LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": c.Version,
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger
}

func (c *RootCommand) newClient() *scanpro.Client {
	return scanpro.NewClient(scanpro.Config{
		BaseURL: c.Config.APIURL,
		APIKey:  c.Config.APIKey,
	}, scanpro.WithLogger(c.Logger))
}

func (c *RootCommand) newStorage() *localstorage.LocalStorage {
	return localstorage.NewLocalStorage(c.Config.DataDir, c.Config.OutputDir)
}

func (c *RootCommand) newRunner() *service.Runner {
	return service.NewRunner(c.newClient(), c.newStorage(), c.Translator, c.Logger)
}

func (c *RootCommand) newPrinter() (printer.Printer, error) {
	return printer.New(c.Format, c.Stdout, c.Translator)
}
