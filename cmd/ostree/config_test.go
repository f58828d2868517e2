package main

import (
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	config, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if *config != defaultConfig {
		t.Errorf("expected default config, have %+v", config)
	}
}

func TestConfigFromFile(t *testing.T) {
	path := writeTemp(t, "ostree.yaml", "numeric: true\nindent: 2\n")
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !config.Numeric || config.Indent != 2 {
		t.Errorf("settings from file not applied: %+v", config)
	}
	if config.Tracing != "info" || config.Progress {
		t.Errorf("expected defaults for absent settings, have %+v", config)
	}
}

func TestConfigErrors(t *testing.T) {
	for _, content := range []string{
		"tracing: verbose\n",
		"indent: -1\n",
		"numeric: [\n",
	} {
		path := writeTemp(t, "ostree.yaml", content)
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("expected error for config %q", content)
		}
	}
	if _, err := LoadConfig(writeTemp(t, "x", "") + ".missing"); err == nil {
		t.Errorf("expected error for missing explicit config file")
	}
}

func TestConfigTraceLevelIgnoresCase(t *testing.T) {
	path := writeTemp(t, "ostree.yaml", "tracing: Debug\n")
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected mixed-case trace level to be accepted, have %v", err)
	}
	if config.Tracing != "Debug" {
		t.Errorf("unexpected trace level %q", config.Tracing)
	}
}
