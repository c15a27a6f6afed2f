package services

import (
	"testing"

	"github.com/an0ushkaaa/twodo/internal/models"
)

type fakeTodoRepository struct {
	created []models.Todo
	toggled [][2]uint
	deleted [][2]uint
}

func (repo *fakeTodoRepository) Create(todo *models.Todo) error {
	repo.created = append(repo.created, *todo)
	return nil
}

func (repo *fakeTodoRepository) ListForUser(userID uint) ([]models.Todo, error) {
	return repo.created, nil
}

func (repo *fakeTodoRepository) ToggleOwned(todoID uint, userID uint) error {
	repo.toggled = append(repo.toggled, [2]uint{todoID, userID})
	return nil
}

func (repo *fakeTodoRepository) DeleteOwned(todoID uint, userID uint) error {
	repo.deleted = append(repo.deleted, [2]uint{todoID, userID})
	return nil
}

func TestAddTodoTrimsAndCreatesOpenItem(t *testing.T) {
	repo := &fakeTodoRepository{}
	service := NewTodoService(repo)

	created, err := service.AddTodo(1, "  buy milk  ")
	if err != nil {
		t.Fatalf("expected AddTodo to succeed, got %v", err)
	}
	if !created {
		t.Fatal("expected a todo to be created")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created todo, got %d", len(repo.created))
	}
	todo := repo.created[0]
	if todo.Text != "buy milk" {
		t.Fatalf("expected trimmed text, got %q", todo.Text)
	}
	if todo.Done {
		t.Fatal("expected new todo to start open")
	}
	if todo.UserID != 1 {
		t.Fatalf("expected owner 1, got %d", todo.UserID)
	}
	if todo.CreatedAt.IsZero() {
		t.Fatal("expected server-assigned creation time")
	}
}

func TestAddTodoWhitespaceOnlyIsNoOp(t *testing.T) {
	repo := &fakeTodoRepository{}
	service := NewTodoService(repo)

	created, err := service.AddTodo(1, "   ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created {
		t.Fatal("expected no todo for whitespace-only text")
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no created todo, got %d", len(repo.created))
	}
}

func TestToggleAndDeleteScopeToOwner(t *testing.T) {
	repo := &fakeTodoRepository{}
	service := NewTodoService(repo)

	if err := service.ToggleTodo(7, 42); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if err := service.DeleteTodo(7, 42); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if len(repo.toggled) != 1 || repo.toggled[0] != [2]uint{42, 7} {
		t.Fatalf("expected ToggleOwned(42, 7), got %v", repo.toggled)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != [2]uint{42, 7} {
		t.Fatalf("expected DeleteOwned(42, 7), got %v", repo.deleted)
	}
}
