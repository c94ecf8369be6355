package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, "fishtank.cfg.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	writeConfig(t, dir, `{
		"logLevel": "debug",
		"scenePath": "tanks/reef.json",
		"sim": {
			"tickRate": 120,
			"runSeconds": 30.5
		}
	}`)

	if err := Load(dir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := GetString("logLevel"); got != "debug" {
		t.Errorf("logLevel = %q, want debug", got)
	}
	if got := GetString("scenePath"); got != "tanks/reef.json" {
		t.Errorf("scenePath = %q, want tanks/reef.json", got)
	}
	if got := GetInt("sim.tickRate"); got != 120 {
		t.Errorf("sim.tickRate = %d, want 120", got)
	}
	if got := GetFloat64("sim.runSeconds"); got != 30.5 {
		t.Errorf("sim.runSeconds = %v, want 30.5", got)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	writeConfig(t, dir, `{"logLevel": "warn"}`)

	if err := Load(dir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := GetString("scenePath"); got != "assets/scene.json" {
		t.Errorf("scenePath default = %q, want assets/scene.json", got)
	}
	if got := GetInt("sim.tickRate"); got != 60 {
		t.Errorf("sim.tickRate default = %d, want 60", got)
	}
	if got := GetFloat64("sim.fixedStep"); got != 0.0 {
		t.Errorf("sim.fixedStep default = %v, want 0", got)
	}
	if !GetBool("watchScene") {
		t.Error("watchScene default should be true")
	}
	if GetBool("debugDraw") {
		t.Error("debugDraw default should be false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	if err := Load(t.TempDir()); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	writeConfig(t, dir, `{"logLevel": `)

	if err := Load(dir); err == nil {
		t.Error("expected error for malformed config file")
	}
}
