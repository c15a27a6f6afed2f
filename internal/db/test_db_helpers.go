package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/an0ushkaaa/twodo/internal/models"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "twodo_test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		PasswordHash: "not-a-real-hash",
		DisplayName:  username,
		CreatedAt:    time.Now(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create test user %s: %v", username, err)
	}
	return user
}

func createTestTodoAt(t *testing.T, database *gorm.DB, userID uint, text string, done bool, createdAt time.Time) models.Todo {
	t.Helper()

	todo := models.Todo{
		UserID:    userID,
		Text:      text,
		Done:      done,
		CreatedAt: createdAt,
	}
	if err := database.Create(&todo).Error; err != nil {
		t.Fatalf("create test todo %q: %v", text, err)
	}
	return todo
}

func createTestNoteAt(t *testing.T, database *gorm.DB, fromUserID uint, toUserID uint, message string, createdAt time.Time) models.Note {
	t.Helper()

	note := models.Note{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Message:    message,
		CreatedAt:  createdAt,
	}
	if err := database.Create(&note).Error; err != nil {
		t.Fatalf("create test note %q: %v", message, err)
	}
	return note
}

func reloadTestUser(t *testing.T, database *gorm.DB, userID uint) models.User {
	t.Helper()

	var user models.User
	if err := database.First(&user, userID).Error; err != nil {
		t.Fatalf("reload test user %d: %v", userID, err)
	}
	return user
}
