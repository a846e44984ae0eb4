package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Rules.ClassifierVersion != "classic" {
		t.Errorf("classifier = %q, want classic", cfg.Rules.ClassifierVersion)
	}
	if len(cfg.Projects) == 0 {
		t.Error("no seed projects without a config file")
	}
	if cfg.Pomodoro.WorkMinutes != 25 {
		t.Errorf("work minutes = %d, want 25", cfg.Pomodoro.WorkMinutes)
	}
}

func TestLoadRejectsUnknownRuleValues(t *testing.T) {
	t.Setenv("RULES_CLASSIFIER_VERSION", "bogus")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown classifier version")
	}
}
