package services

import (
	"strings"
	"time"

	"github.com/an0ushkaaa/twodo/internal/models"
)

type TodoRepository interface {
	Create(todo *models.Todo) error
	ListForUser(userID uint) ([]models.Todo, error)
	ToggleOwned(todoID uint, userID uint) error
	DeleteOwned(todoID uint, userID uint) error
}

type TodoService struct {
	todos TodoRepository
}

func NewTodoService(todos TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// AddTodo inserts a new open item for the user. Whitespace-only text is a
// silent no-op; the returned flag reports whether a row was created.
func (service *TodoService) AddTodo(userID uint, textRaw string) (bool, error) {
	text := strings.TrimSpace(textRaw)
	if text == "" {
		return false, nil
	}

	todo := models.Todo{
		UserID:    userID,
		Text:      text,
		Done:      false,
		CreatedAt: time.Now(),
	}
	if err := service.todos.Create(&todo); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleTodo flips the done flag of the user's own item. Unknown ids and
// items owned by someone else no-op without revealing which case it was.
func (service *TodoService) ToggleTodo(userID uint, todoID uint) error {
	return service.todos.ToggleOwned(todoID, userID)
}

func (service *TodoService) DeleteTodo(userID uint, todoID uint) error {
	return service.todos.DeleteOwned(todoID, userID)
}

func (service *TodoService) ListForUser(userID uint) ([]models.Todo, error) {
	return service.todos.ListForUser(userID)
}
