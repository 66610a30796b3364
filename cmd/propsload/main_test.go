package main

import "testing"

func TestParseFlags(t *testing.T) {
	overrides, err := parseFlags([]string{
		"--file", "app.properties",
		"--format", "yaml",
		"--platform", "mac",
		"--config", "settings.yaml",
	})
	if err != nil {
		t.Fatalf("parseFlags returned error: %v", err)
	}

	if overrides.ConfigFile != "settings.yaml" {
		t.Fatalf("expected config file, got %q", overrides.ConfigFile)
	}
	if overrides.PropertiesFile == nil || *overrides.PropertiesFile != "app.properties" {
		t.Fatalf("expected properties file override, got %v", overrides.PropertiesFile)
	}
	if overrides.Format == nil || *overrides.Format != "yaml" {
		t.Fatalf("expected yaml format override, got %v", overrides.Format)
	}
	if overrides.Platform == nil || *overrides.Platform != "mac" {
		t.Fatalf("expected platform override, got %v", overrides.Platform)
	}
	if overrides.LocatorFile != nil || overrides.LogLevel != nil {
		t.Fatalf("expected unset flags to stay nil")
	}
}

func TestParseFlagsShortFile(t *testing.T) {
	overrides, err := parseFlags([]string{"-f", "x.properties"})
	if err != nil {
		t.Fatalf("parseFlags returned error: %v", err)
	}
	if overrides.PropertiesFile == nil || *overrides.PropertiesFile != "x.properties" {
		t.Fatalf("expected short flag to set the file, got %v", overrides.PropertiesFile)
	}
}

func TestParseFlagsRejectsUnknownFormat(t *testing.T) {
	if _, err := parseFlags([]string{"--format", "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
