package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/an0ushkaaa/twodo/internal/models"
	"gorm.io/gorm"
)

func createTestTodo(t *testing.T, database *gorm.DB, userID uint, text string, done bool, createdAt time.Time) models.Todo {
	t.Helper()

	todo := models.Todo{
		UserID:    userID,
		Text:      text,
		Done:      done,
		CreatedAt: createdAt,
	}
	if err := database.Create(&todo).Error; err != nil {
		t.Fatalf("create todo: %v", err)
	}
	return todo
}

func TestAddTodoTrimsTextAndStartsOpen(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	alice := createTestUser(t, database, "alice", "Alice", "secret1")
	authCookie := loginAndExtractAuthCookie(t, app, "alice", "secret1")

	response := postTestForm(t, app, authCookie, "/todo/add", url.Values{
		"text": {"  buy milk  "},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}

	var todo models.Todo
	if err := database.Where("user_id = ?", alice.ID).First(&todo).Error; err != nil {
		t.Fatalf("load created todo: %v", err)
	}
	if todo.Text != "buy milk" {
		t.Fatalf("expected trimmed text, got %q", todo.Text)
	}
	if todo.Done {
		t.Fatal("expected new todo to start open")
	}
}

func TestAddTodoWhitespaceOnlyIsNoOp(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	alice := createTestUser(t, database, "alice", "Alice", "secret1")
	authCookie := loginAndExtractAuthCookie(t, app, "alice", "secret1")

	response := postTestForm(t, app, authCookie, "/todo/add", url.Values{
		"text": {"   "},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.Todo{}).Where("user_id = ?", alice.ID).Count(&count).Error; err != nil {
		t.Fatalf("count todos: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no todo created, got %d", count)
	}
}

func TestToggleTodoFlipsOwnItem(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	alice := createTestUser(t, database, "alice", "Alice", "secret1")
	todo := createTestTodo(t, database, alice.ID, "buy milk", false, time.Now())
	authCookie := loginAndExtractAuthCookie(t, app, "alice", "secret1")

	getTestPage(t, app, authCookie, "/todo/toggle/"+strconv.Itoa(int(todo.ID)), http.StatusSeeOther)

	var toggled models.Todo
	if err := database.First(&toggled, todo.ID).Error; err != nil {
		t.Fatalf("reload todo: %v", err)
	}
	if !toggled.Done {
		t.Fatal("expected todo to be done after toggle")
	}

	getTestPage(t, app, authCookie, "/todo/toggle/"+strconv.Itoa(int(todo.ID)), http.StatusSeeOther)
	if err := database.First(&toggled, todo.ID).Error; err != nil {
		t.Fatalf("reload todo: %v", err)
	}
	if toggled.Done {
		t.Fatal("expected second toggle to reopen the todo")
	}
}

func TestToggleAndDeleteByNonOwnerAreSilentNoOps(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	alice := createTestUser(t, database, "alice", "Alice", "secret1")
	createTestUser(t, database, "bob", "Bob", "secret2")
	todo := createTestTodo(t, database, alice.ID, "buy milk", false, time.Now())

	bobCookie := loginAndExtractAuthCookie(t, app, "bob", "secret2")
	todoPath := strconv.Itoa(int(todo.ID))

	// The response is the same redirect the owner would get: no way to tell
	// "not yours" from "not there".
	getTestPage(t, app, bobCookie, "/todo/toggle/"+todoPath, http.StatusSeeOther)
	getTestPage(t, app, bobCookie, "/todo/delete/"+todoPath, http.StatusSeeOther)

	var unchanged models.Todo
	if err := database.First(&unchanged, todo.ID).Error; err != nil {
		t.Fatalf("expected todo to still exist: %v", err)
	}
	if unchanged.Done {
		t.Fatal("expected non-owner toggle to leave the item unchanged")
	}
}

func TestDeleteTodoRemovesOwnItem(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	alice := createTestUser(t, database, "alice", "Alice", "secret1")
	todo := createTestTodo(t, database, alice.ID, "buy milk", false, time.Now())
	authCookie := loginAndExtractAuthCookie(t, app, "alice", "secret1")

	getTestPage(t, app, authCookie, "/todo/delete/"+strconv.Itoa(int(todo.ID)), http.StatusSeeOther)

	var count int64
	if err := database.Model(&models.Todo{}).Where("id = ?", todo.ID).Count(&count).Error; err != nil {
		t.Fatalf("count todos: %v", err)
	}
	if count != 0 {
		t.Fatal("expected todo to be deleted by its owner")
	}
}

func TestToggleTodoMalformedIDIsNoOp(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "alice", "Alice", "secret1")
	authCookie := loginAndExtractAuthCookie(t, app, "alice", "secret1")

	request := httptest.NewRequest(http.MethodGet, "/todo/toggle/not-a-number", nil)
	request.Header.Set("Cookie", authCookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("toggle request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303 for malformed id, got %d", response.StatusCode)
	}
}

func TestDashboardListsOpenItemsFirstNewestFirst(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	alice := createTestUser(t, database, "alice", "Alice", "secret1")

	base := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	createTestTodo(t, database, alice.ID, "oldest done", true, base)
	createTestTodo(t, database, alice.ID, "older open", false, base.Add(1*time.Hour))
	createTestTodo(t, database, alice.ID, "newest open", false, base.Add(2*time.Hour))

	authCookie := loginAndExtractAuthCookie(t, app, "alice", "secret1")
	body := getTestPage(t, app, authCookie, "/dashboard", http.StatusOK)

	newestOpen := strings.Index(body, "newest open")
	olderOpen := strings.Index(body, "older open")
	oldestDone := strings.Index(body, "oldest done")
	if newestOpen < 0 || olderOpen < 0 || oldestDone < 0 {
		t.Fatal("expected all three items on the dashboard")
	}
	if !(newestOpen < olderOpen && olderOpen < oldestDone) {
		t.Fatalf("expected order newest-open, older-open, oldest-done; got positions %d, %d, %d",
			newestOpen, olderOpen, oldestDone)
	}
}
