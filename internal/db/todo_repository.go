package db

import (
	"github.com/an0ushkaaa/twodo/internal/models"
	"gorm.io/gorm"
)

type TodoRepository struct {
	database *gorm.DB
}

func NewTodoRepository(database *gorm.DB) *TodoRepository {
	return &TodoRepository{database: database}
}

func (repo *TodoRepository) Create(todo *models.Todo) error {
	return repo.database.Create(todo).Error
}

// ListForUser orders incomplete items first, newest first within each group.
// Both the owner's and the partner's views rely on this ordering.
func (repo *TodoRepository) ListForUser(userID uint) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("done ASC, created_at DESC, id DESC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// ToggleOwned flips the done flag only when the row belongs to userID. A
// non-owner's request matches no rows, so it cannot mutate anything and the
// caller cannot tell "not yours" from "not there".
func (repo *TodoRepository) ToggleOwned(todoID uint, userID uint) error {
	return repo.database.Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", todoID, userID).
		Update("done", gorm.Expr("NOT done")).Error
}

func (repo *TodoRepository) DeleteOwned(todoID uint, userID uint) error {
	return repo.database.
		Where("id = ? AND user_id = ?", todoID, userID).
		Delete(&models.Todo{}).Error
}
