package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Trials != 10000 {
		t.Errorf("expected default trials 10000, got %d", cfg.Trials)
	}
	if cfg.Workers != 1 {
		t.Errorf("expected default workers 1, got %d", cfg.Workers)
	}
	if cfg.Output != "markdown" {
		t.Errorf("expected default output markdown, got %s", cfg.Output)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CASELAB_TRIALS", "500")
	t.Setenv("CASELAB_WORKERS", "4")
	t.Setenv("CASELAB_OUTPUT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Trials != 500 {
		t.Errorf("expected trials 500, got %d", cfg.Trials)
	}
	if cfg.Workers != 4 {
		t.Errorf("expected workers 4, got %d", cfg.Workers)
	}
	if cfg.Output != "json" {
		t.Errorf("expected output json, got %s", cfg.Output)
	}
}
