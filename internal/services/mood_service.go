package services

import (
	"strings"
	"time"

	"github.com/an0ushkaaa/twodo/internal/models"
)

type MoodRepository interface {
	Create(mood *models.Mood) error
}

type MoodService struct {
	moods MoodRepository
}

func NewMoodService(moods MoodRepository) *MoodService {
	return &MoodService{moods: moods}
}

// LogMood appends a mood entry. The score is an open-ended signed integer;
// parsing it out of the form is the handler's job. Existing entries are
// never updated or deleted.
func (service *MoodService) LogMood(userID uint, score int, noteRaw string) error {
	mood := models.Mood{
		UserID:    userID,
		Score:     score,
		Note:      strings.TrimSpace(noteRaw),
		CreatedAt: time.Now(),
	}
	return service.moods.Create(&mood)
}
