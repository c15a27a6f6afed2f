package db

import (
	"github.com/an0ushkaaa/twodo/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(username)) = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// LinkPartners points both rows at each other inside one transaction. Stale
// reverse links from previous partners are cleared in the same transaction,
// so the symmetry invariant holds globally after every link.
func (repo *UserRepository) LinkPartners(userID uint, partnerID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("partner_id IN ? AND id NOT IN ?", []uint{userID, partnerID}, []uint{userID, partnerID}).
			Update("partner_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Update("partner_id", partnerID).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", partnerID).Update("partner_id", userID).Error
	})
}
