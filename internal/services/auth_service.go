package services

import (
	"errors"
	"time"

	"github.com/an0ushkaaa/twodo/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedUsername(username string) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// RegisterUser stores a new account with a bcrypt hash of the password. The
// raw password never leaves this function. A uniqueness violation on the
// normalized username surfaces as ErrUsernameTaken; the insert is atomic, so
// the conflict leaves no partial row behind.
func (service *AuthService) RegisterUser(usernameRaw string, displayNameRaw string, passwordRaw string) (models.User, error) {
	username, displayName, password, err := NormalizeRegistrationInput(usernameRaw, displayNameRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		DisplayName:  displayName,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate resolves the account by normalized username and verifies the
// password against the stored hash. Unknown user and wrong password collapse
// into the same ErrInvalidCredentials so callers cannot tell them apart.
func (service *AuthService) Authenticate(usernameRaw string, passwordRaw string) (models.User, error) {
	username, password, err := NormalizeCredentialsInput(usernameRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
