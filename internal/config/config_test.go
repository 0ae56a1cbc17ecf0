package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/rosterbot?sslmode=disable")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("MESSAGES_FILE", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DatabaseDriver != DriverPostgres {
		t.Errorf("DatabaseDriver = %q, want %q", cfg.DatabaseDriver, DriverPostgres)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Location.String() != "UTC" {
		t.Errorf("Location = %q, want UTC", cfg.Location)
	}
	if cfg.Messages.NoEvents != DefaultMessages().NoEvents {
		t.Errorf("Messages.NoEvents = %q", cfg.Messages.NoEvents)
	}
}

func TestLoadReportsAllMissing(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("MESSAGES_FILE", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should error without required variables")
	}

	for _, want := range []string{"TELEGRAM_TOKEN", "DATABASE_URL", "DATABASE_DRIVER"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadInvalidTimezone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	if _, err := Load(); err == nil {
		t.Error("Load() should error on an unknown time zone")
	}
}

func TestLoadMessagesFile(t *testing.T) {
	setRequiredEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "messages.yaml")
	content := `
no_events: "Sem eventos programados"
weekdays: [Domingo, Segunda, Terça, Quarta, Quinta, Sexta, Sábado]
aliases:
  list: /lista
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MESSAGES_FILE", path)
	t.Setenv("TIMEZONE", "America/Sao_Paulo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Messages.NoEvents != "Sem eventos programados" {
		t.Errorf("NoEvents = %q", cfg.Messages.NoEvents)
	}
	if cfg.Messages.Weekdays[6] != "Sábado" {
		t.Errorf("Weekdays[6] = %q, want Sábado", cfg.Messages.Weekdays[6])
	}
	if cfg.Messages.Aliases.List != "/lista" {
		t.Errorf("Aliases.List = %q, want /lista", cfg.Messages.Aliases.List)
	}
	// Untouched keys keep their defaults.
	if cfg.Messages.Aliases.Register != "/in" {
		t.Errorf("Aliases.Register = %q, want /in", cfg.Messages.Aliases.Register)
	}
	if cfg.Location.String() != "America/Sao_Paulo" {
		t.Errorf("Location = %q", cfg.Location)
	}
}

func TestLoadMessagesInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"short weekdays", "weekdays: [Mon, Tue]"},
		{"alias with space", "aliases:\n  echo: \"/e x\""},
		{"empty alias", "aliases:\n  help: \"\""},
		{"bad yaml", "no_events: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "messages.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadMessages(path); err == nil {
				t.Error("LoadMessages() should error")
			}
		})
	}
}

func TestLoadMessagesMissingFile(t *testing.T) {
	if _, err := LoadMessages("/nonexistent/messages.yaml"); err == nil {
		t.Error("LoadMessages() should error on missing file")
	}
}
