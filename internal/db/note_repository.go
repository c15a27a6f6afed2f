package db

import (
	"github.com/an0ushkaaa/twodo/internal/models"
	"gorm.io/gorm"
)

type NoteRepository struct {
	database *gorm.DB
}

func NewNoteRepository(database *gorm.DB) *NoteRepository {
	return &NoteRepository{database: database}
}

func (repo *NoteRepository) Create(note *models.Note) error {
	return repo.database.Create(note).Error
}

func (repo *NoteRepository) MarkReadForReceiver(userID uint) error {
	return repo.database.Model(&models.Note{}).
		Where("to_user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

// ListForUser returns every note the user sent or received, newest first,
// annotated with both parties' display names.
func (repo *NoteRepository) ListForUser(userID uint) ([]models.NoteListItem, error) {
	items := make([]models.NoteListItem, 0)
	err := repo.database.
		Table("notes").
		Select("notes.id, notes.from_user_id, notes.to_user_id, notes.message, notes.read, notes.created_at, " +
			"senders.display_name AS sender_name, receivers.display_name AS receiver_name").
		Joins("JOIN users AS senders ON senders.id = notes.from_user_id").
		Joins("JOIN users AS receivers ON receivers.id = notes.to_user_id").
		Where("notes.from_user_id = ? OR notes.to_user_id = ?", userID, userID).
		Order("notes.created_at DESC, notes.id DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *NoteRepository) CountSentByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Note{}).Where("from_user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
