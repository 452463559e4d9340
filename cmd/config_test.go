package cmd

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvCurrency, "USD")
	t.Setenv(EnvAgingBands, "5")
	t.Setenv(EnvVerbose, "true")

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	want := DefaultConfig
	want.Currency = "USD"
	want.AgingBands = "5"
	want.Verbose = true
	if got != want {
		t.Errorf("LoadConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, name := range []string{EnvCurrency, EnvAgingBands, EnvHorizonMode, EnvFormat, EnvModel, EnvVerbose} {
		t.Setenv(name, "") // restored after the test
		os.Unsetenv(name)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if got != DefaultConfig {
		t.Errorf("LoadConfig() = %+v, want %+v", got, DefaultConfig)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv(EnvVerbose, "maybe")
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() should fail on an invalid boolean")
	}
}
