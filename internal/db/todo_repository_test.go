package db

import (
	"testing"
	"time"
)

func TestListForUserOrdersOpenFirstThenNewest(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewTodoRepository(database)
	alice := createTestUser(t, database, "alice")
	base := time.Now().Add(-time.Hour)

	createTestTodoAt(t, database, alice.ID, "oldest done", true, base)
	createTestTodoAt(t, database, alice.ID, "older open", false, base.Add(time.Minute))
	createTestTodoAt(t, database, alice.ID, "newest open", false, base.Add(2*time.Minute))
	createTestTodoAt(t, database, alice.ID, "newest done", true, base.Add(3*time.Minute))

	todos, err := repo.ListForUser(alice.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	wantOrder := []string{"newest open", "older open", "newest done", "oldest done"}
	if len(todos) != len(wantOrder) {
		t.Fatalf("expected %d todos, got %d", len(wantOrder), len(todos))
	}
	for index, want := range wantOrder {
		if todos[index].Text != want {
			t.Fatalf("position %d: expected %q, got %q", index, want, todos[index].Text)
		}
	}
}

func TestListForUserExcludesOtherOwners(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewTodoRepository(database)
	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	createTestTodoAt(t, database, alice.ID, "mine", false, time.Now())
	createTestTodoAt(t, database, bob.ID, "theirs", false, time.Now())

	todos, err := repo.ListForUser(alice.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(todos) != 1 || todos[0].Text != "mine" {
		t.Fatalf("expected only alice's todo, got %v", todos)
	}
}

func TestToggleOwnedFlipsOnlyOwnersRow(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewTodoRepository(database)
	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	todo := createTestTodoAt(t, database, alice.ID, "buy milk", false, time.Now())

	if err := repo.ToggleOwned(todo.ID, bob.ID); err != nil {
		t.Fatalf("non-owner toggle returned error: %v", err)
	}
	remaining, err := repo.ListForUser(alice.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if remaining[0].Done {
		t.Fatal("expected non-owner toggle to leave the todo untouched")
	}

	if err := repo.ToggleOwned(todo.ID, alice.ID); err != nil {
		t.Fatalf("owner toggle failed: %v", err)
	}
	remaining, _ = repo.ListForUser(alice.ID)
	if !remaining[0].Done {
		t.Fatal("expected owner toggle to mark the todo done")
	}

	if err := repo.ToggleOwned(todo.ID, alice.ID); err != nil {
		t.Fatalf("second owner toggle failed: %v", err)
	}
	remaining, _ = repo.ListForUser(alice.ID)
	if remaining[0].Done {
		t.Fatal("expected second toggle to reopen the todo")
	}
}

func TestDeleteOwnedScopesToOwner(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewTodoRepository(database)
	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	todo := createTestTodoAt(t, database, alice.ID, "buy milk", false, time.Now())

	if err := repo.DeleteOwned(todo.ID, bob.ID); err != nil {
		t.Fatalf("non-owner delete returned error: %v", err)
	}
	remaining, err := repo.ListForUser(alice.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatal("expected non-owner delete to be a no-op")
	}

	if err := repo.DeleteOwned(todo.ID, alice.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	remaining, _ = repo.ListForUser(alice.ID)
	if len(remaining) != 0 {
		t.Fatal("expected owner delete to remove the todo")
	}
}
