package config

import (
	"path/filepath"
	"testing"

	"github.com/Kerhoff/RosterboT/pkg/logger"
)

func TestSQLiteMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rosterbot.db")

	db, err := NewDatabase(DriverSQLite, path, logger.Discard())
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	// A second run has nothing to do.
	if err := db.Migrate(); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}

	for _, table := range []string{"chat_group", "event", "person"} {
		var n int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&n)
		if err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Errorf("table %s not created", table)
		}
	}
}

func TestMigrateUnknownDriver(t *testing.T) {
	d := &Database{driver: "mysql", logger: logger.Discard()}
	if err := d.Migrate(); err == nil {
		t.Error("Migrate() should error for an unknown driver")
	}
}
