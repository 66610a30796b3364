// Package config loads the loader's runtime settings from multiple sources
// (YAML files, environment variables, CLI flags) with precedence: CLI flags >
// YAML config > Environment variables > Defaults.
package config
