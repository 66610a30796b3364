package application

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/propsload/internal/config"
	"github.com/eugenenazirov/propsload/internal/platform"
	"github.com/eugenenazirov/propsload/internal/properties"
)

// App encapsulates the loader dependencies and resolved settings.
type App struct {
	cfg    config.Config
	loader *properties.Loader
	logger *zap.Logger
	detect func() (platform.OS, error)
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	detect := platform.Current
	if cfg.Platform != "" {
		osName, err := platform.Parse(cfg.Platform)
		if err != nil {
			return nil, fmt.Errorf("failed to apply platform override: %w", err)
		}
		detect = func() (platform.OS, error) { return osName, nil }
	}

	return &App{
		cfg:    cfg,
		loader: properties.NewLoader(properties.WithLogger(logger)),
		logger: logger,
		detect: detect,
	}, nil
}

// Run resolves the properties path, loads it and writes the tree to w.
func (a *App) Run(w io.Writer) error {
	path, err := a.ResolvePath()
	if err != nil {
		return err
	}

	tree, err := a.loader.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	a.logger.Info("properties loaded", zap.String("path", path), zap.Int("top_level_keys", len(tree)))

	return Render(w, tree, a.cfg.Format)
}

// ResolvePath returns the explicit properties file when configured. Otherwise
// it reads the locator file and picks the entry for the current platform,
// resolving relative entries against the locator's directory.
func (a *App) ResolvePath() (string, error) {
	if a.cfg.PropertiesFile != "" {
		return a.cfg.PropertiesFile, nil
	}

	locator, err := a.loader.Load(a.cfg.LocatorFile)
	if err != nil {
		return "", fmt.Errorf("load locator %s: %w", a.cfg.LocatorFile, err)
	}

	osName, err := a.detect()
	if err != nil {
		return "", fmt.Errorf("detect platform: %w", err)
	}

	baseDir, err := filepath.Abs(filepath.Dir(a.cfg.LocatorFile))
	if err != nil {
		return "", fmt.Errorf("resolve locator directory: %w", err)
	}

	path, err := platform.ResolveConfigPath(locator, osName, baseDir)
	if err != nil {
		return "", err
	}
	a.logger.Debug("resolved properties path",
		zap.String("platform", string(osName)),
		zap.String("locator", a.cfg.LocatorFile),
		zap.String("path", path),
	)
	return path, nil
}

// Render writes tree to w in the given format.
func Render(w io.Writer, tree properties.Tree, format string) error {
	switch format {
	case config.FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
	case config.FormatTOML:
		data, err := toml.Marshal(tree)
		if err != nil {
			return fmt.Errorf("encode TOML: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write TOML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}
