package services

import (
	"errors"

	"github.com/an0ushkaaa/twodo/internal/models"
)

var (
	ErrPartnerNotFound = errors.New("partner not found")
	ErrSelfLink        = errors.New("cannot link with yourself")
)

type PartnerUserRepository interface {
	FindByNormalizedUsername(username string) (models.User, error)
	LinkPartners(userID uint, partnerID uint) error
}

type PartnerService struct {
	users PartnerUserRepository
}

func NewPartnerService(users PartnerUserRepository) *PartnerService {
	return &PartnerService{users: users}
}

// LinkPartner establishes the symmetric link between the current user and
// the account behind partnerUsername. Both partner_id writes happen in one
// transaction; any failure leaves both rows untouched.
func (service *PartnerService) LinkPartner(current models.User, partnerUsernameRaw string) (models.User, error) {
	username := NormalizeUsername(partnerUsernameRaw)
	if username == "" {
		return models.User{}, ErrPartnerNotFound
	}

	partner, err := service.users.FindByNormalizedUsername(username)
	if err != nil {
		return models.User{}, ErrPartnerNotFound
	}
	if partner.ID == current.ID {
		return models.User{}, ErrSelfLink
	}

	if err := service.users.LinkPartners(current.ID, partner.ID); err != nil {
		return models.User{}, err
	}
	return partner, nil
}
