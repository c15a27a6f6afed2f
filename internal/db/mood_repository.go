package db

import (
	"github.com/an0ushkaaa/twodo/internal/models"
	"gorm.io/gorm"
)

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

// Create is the only write the mood log exposes: entries are append-only.
func (repo *MoodRepository) Create(mood *models.Mood) error {
	return repo.database.Create(mood).Error
}

func (repo *MoodRepository) CountForUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Mood{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
