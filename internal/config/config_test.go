package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "JWT_SECRET", "ABSENCE_THRESHOLD_MIN", "WORKDAY_START_HOUR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != ":8080" {
		t.Fatalf("unexpected default port %q", cfg.Port)
	}
	if cfg.AbsenceThreshold() != 20*time.Minute {
		t.Fatalf("unexpected default threshold %v", cfg.AbsenceThreshold())
	}
	if cfg.StartFloor() != 7*time.Hour {
		t.Fatalf("unexpected default start floor %v", cfg.StartFloor())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("ABSENCE_THRESHOLD_MIN", "30")
	t.Setenv("WORKDAY_START_HOUR", "6")

	cfg := Load()
	if cfg.Port != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.Port)
	}
	if cfg.AbsenceThreshold() != 30*time.Minute {
		t.Fatalf("expected 30m threshold, got %v", cfg.AbsenceThreshold())
	}
	if cfg.StartFloor() != 6*time.Hour {
		t.Fatalf("expected 6h floor, got %v", cfg.StartFloor())
	}
}

func TestLoadIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("ABSENCE_THRESHOLD_MIN", "not-a-number")
	t.Setenv("WORKDAY_START_HOUR", "25")

	cfg := Load()
	if cfg.AbsenceThresholdMin != 20 || cfg.WorkdayStartHour != 7 {
		t.Fatalf("invalid env values should keep defaults, got %d/%d",
			cfg.AbsenceThresholdMin, cfg.WorkdayStartHour)
	}
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worktrace.yaml")
	body := "port: \":7070\"\nworkday_start_hour: 8\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Load()
	original := cfg.DBPath
	if err := cfg.ApplyFile(path); err != nil {
		t.Fatalf("apply file: %v", err)
	}

	if cfg.Port != ":7070" || cfg.WorkdayStartHour != 8 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.DBPath != original {
		t.Fatalf("fields absent from the file must keep their values")
	}
}

func TestApplyFileMissing(t *testing.T) {
	cfg := Load()
	if err := cfg.ApplyFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
