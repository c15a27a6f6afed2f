package services

import (
	"strings"
	"time"

	"github.com/an0ushkaaa/twodo/internal/models"
)

type NoteRepository interface {
	Create(note *models.Note) error
	MarkReadForReceiver(userID uint) error
	ListForUser(userID uint) ([]models.NoteListItem, error)
}

type NoteService struct {
	notes NoteRepository
}

func NewNoteService(notes NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

// ListNotes marks every note addressed to the user as read, then returns all
// notes the user sent or received, newest first. The mark-read happens on
// every view, not as an explicit acknowledgment.
func (service *NoteService) ListNotes(userID uint) ([]models.NoteListItem, error) {
	if err := service.notes.MarkReadForReceiver(userID); err != nil {
		return nil, err
	}
	return service.notes.ListForUser(userID)
}

// SendNote delivers a message to the user's linked partner. An empty message
// or an unlinked user is a silent no-op; the returned flag reports whether a
// note went out.
func (service *NoteService) SendNote(sender models.User, messageRaw string) (bool, error) {
	message := strings.TrimSpace(messageRaw)
	if message == "" || sender.PartnerID == nil {
		return false, nil
	}

	note := models.Note{
		FromUserID: sender.ID,
		ToUserID:   *sender.PartnerID,
		Message:    message,
		Read:       false,
		CreatedAt:  time.Now(),
	}
	if err := service.notes.Create(&note); err != nil {
		return false, err
	}
	return true, nil
}
