package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/lifeboard/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken           = fmt.Errorf("%w: username already registered", ErrInvalidInput)
	ErrAccountInactive         = errors.New("account is inactive")
	ErrUserNotFound            = errors.New("user not found")
	ErrPasswordChangeInvalid   = fmt.Errorf("%w: current_password and new_password are required", ErrInvalidInput)
	ErrInvalidCurrentPassword  = fmt.Errorf("%w: current password is incorrect", ErrInvalidInput)
	ErrNewPasswordMustDiffer   = fmt.Errorf("%w: new password must differ from the current one", ErrInvalidInput)
	ErrPasswordHashUnavailable = errors.New("password hash unavailable")
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, bool, error)
	FindByUsername(username string) (models.User, bool, error)
	ExistsByUsername(username string) (bool, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
}

type Registration struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type AuthService struct {
	users AuthUserRepository
	cost  int
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users, cost: bcrypt.DefaultCost}
}

// WithHashCost returns a copy that hashes passwords with cost. Tests use
// bcrypt.MinCost to stay fast.
func (service *AuthService) WithHashCost(cost int) *AuthService {
	clone := *service
	clone.cost = cost
	return &clone
}

func (service *AuthService) Register(registration Registration) (models.User, error) {
	username := NormalizeUsername(registration.Username)
	if username == "" {
		return models.User{}, ErrInvalidUsername
	}
	if err := ValidatePasswordStrength(registration.Password); err != nil {
		return models.User{}, err
	}
	email, err := NormalizeOptionalEmail(registration.Email)
	if err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := service.hash(registration.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		FullName:     strings.TrimSpace(registration.FullName),
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate returns ErrAuthCredentialsInvalid for unknown users and wrong
// passwords alike.
func (service *AuthService) Authenticate(usernameRaw string, password string) (models.User, error) {
	username, password, err := NormalizeCredentialsInput(usernameRaw, password)
	if err != nil {
		return models.User{}, err
	}

	user, found, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !found {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if !user.IsActive {
		return models.User{}, ErrAccountInactive
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, bool, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrPasswordChangeInvalid
	}

	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if !found {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCurrentPassword
	}
	if currentPassword == newPassword {
		return ErrNewPasswordMustDiffer
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	passwordHash, err := service.hash(newPassword)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(user.ID, passwordHash, false)
}

// ResetPassword replaces the password of username with password. When
// mustChange is set the account is gated until the owner picks a new one.
func (service *AuthService) ResetPassword(usernameRaw string, password string, mustChange bool) (models.User, error) {
	username := strings.TrimSpace(usernameRaw)
	if username == "" {
		return models.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if password == "" {
		return models.User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	user, found, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !found {
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}

	passwordHash, err := service.hash(password)
	if err != nil {
		return models.User{}, err
	}
	if err := service.users.UpdatePassword(user.ID, passwordHash, mustChange); err != nil {
		return models.User{}, fmt.Errorf("update password: %w", err)
	}
	user.PasswordHash = passwordHash
	user.MustChangePassword = mustChange
	return user, nil
}

func (service *AuthService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most 72 bytes", ErrInvalidInput)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPasswordHashUnavailable, err)
	}
	return string(hash), nil
}
