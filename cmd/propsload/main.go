package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/propsload/internal/application"
	"github.com/eugenenazirov/propsload/internal/config"
	"github.com/eugenenazirov/propsload/internal/logging"
)

func main() {
	overrides, err := parseFlags(os.Args[1:])
	kingpin.FatalIfError(err, "invalid arguments")

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := app.Run(os.Stdout); err != nil {
		logger.Fatal("failed to load properties", zap.Error(err))
	}
}

// parseFlags turns command-line arguments into config overrides. Flags left
// unset stay nil so lower-precedence sources apply.
func parseFlags(args []string) (*config.CLIOverrides, error) {
	kingpinApp := kingpin.New("propsload", "Loads a dotted key=value properties file and prints it as a nested tree")
	configFile := kingpinApp.Flag("config", "Path to YAML settings file").String()
	file := kingpinApp.Flag("file", "Properties file to load (skips locator resolution)").Short('f').String()
	locator := kingpinApp.Flag("locator", "Properties file holding config.location.<platform> entries").String()
	platformName := kingpinApp.Flag("platform", "Platform whose location entry is used (windows, mac, linux)").String()
	format := kingpinApp.Flag("format", "Output format").Enum(config.FormatJSON, config.FormatYAML, config.FormatTOML)
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()

	if _, err := kingpinApp.Parse(args); err != nil {
		return nil, err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}
	for dst, src := range map[**string]*string{
		&overrides.PropertiesFile: file,
		&overrides.LocatorFile:    locator,
		&overrides.Platform:       platformName,
		&overrides.Format:         format,
		&overrides.LogLevel:       logLevel,
	} {
		if *src != "" {
			*dst = src
		}
	}

	return overrides, nil
}
