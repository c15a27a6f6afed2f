package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLiteBootstrapsSchema(t *testing.T) {
	database := newTestDatabase(t)

	expectedTables := []string{"users", "todos", "moods", "notes", "date_ideas", "schema_migrations"}
	for _, tableName := range expectedTables {
		var count int64
		err := database.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, tableName,
		).Scan(&count).Error
		if err != nil {
			t.Fatalf("inspect table %s: %v", tableName, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist after bootstrap", tableName)
		}
	}
}

func TestOpenSQLiteRecordsAppliedMigrations(t *testing.T) {
	database := newTestDatabase(t)

	var versions []appliedMigrationVersion
	if err := database.Raw(`SELECT version FROM schema_migrations ORDER BY version`).Scan(&versions).Error; err != nil {
		t.Fatalf("load applied versions: %v", err)
	}
	if len(versions) == 0 {
		t.Fatal("expected at least one recorded migration")
	}
	if versions[0].Version != "001" {
		t.Fatalf("expected first migration version 001, got %q", versions[0].Version)
	}
}

func TestOpenSQLiteIsIdempotentAcrossReopens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "twodo_test.db")

	first, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	user := createTestUser(t, first, "alice")

	second, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen after migrations applied: %v", err)
	}

	reloaded := reloadTestUser(t, second, user.ID)
	if reloaded.Username != "alice" {
		t.Fatalf("expected existing data to survive reopen, got %q", reloaded.Username)
	}

	var applied int64
	if err := second.Raw(`SELECT COUNT(*) FROM schema_migrations WHERE version = '001'`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied != 1 {
		t.Fatalf("expected migration 001 recorded exactly once, got %d", applied)
	}
}

func TestUsernameUniquenessIsCaseInsensitive(t *testing.T) {
	database := newTestDatabase(t)
	createTestUser(t, database, "alice")

	err := database.Exec(
		`INSERT INTO users (username, password_hash, display_name, created_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		"  ALICE  ", "hash", "Impostor",
	).Error
	if err == nil {
		t.Fatal("expected case-insensitive unique index to reject the second alice")
	}
}
