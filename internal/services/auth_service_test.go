package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/lifeboard/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepository struct {
	users  map[uint]models.User
	nextID uint
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{users: map[uint]models.User{}}
}

func (repo *stubUserRepository) FindByID(userID uint) (models.User, bool, error) {
	user, ok := repo.users[userID]
	return user, ok, nil
}

func (repo *stubUserRepository) FindByUsername(username string) (models.User, bool, error) {
	for _, user := range repo.users {
		if user.Username == username {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (repo *stubUserRepository) ExistsByUsername(username string) (bool, error) {
	_, found, err := repo.FindByUsername(username)
	return found, err
}

func (repo *stubUserRepository) Create(user *models.User) error {
	repo.nextID++
	user.ID = repo.nextID
	repo.users[user.ID] = *user
	return nil
}

func (repo *stubUserRepository) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	user, ok := repo.users[userID]
	if !ok {
		return errors.New("missing user")
	}
	user.PasswordHash = passwordHash
	user.MustChangePassword = mustChangePassword
	repo.users[userID] = user
	return nil
}

func newTestAuthService() (*AuthService, *stubUserRepository) {
	repo := newStubUserRepository()
	return NewAuthService(repo).WithHashCost(bcrypt.MinCost), repo
}

func TestAuthServiceRegisterAndAuthenticate(t *testing.T) {
	service, _ := newTestAuthService()

	user, err := service.Register(Registration{Username: " alice ", Password: "StrongPass1", Email: "ALICE@example.com"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if user.Username != "alice" || user.Email != "alice@example.com" || !user.IsActive {
		t.Fatalf("unexpected registered user: %+v", user)
	}
	if user.PasswordHash == "StrongPass1" {
		t.Fatal("expected stored password to be hashed")
	}

	authenticated, err := service.Authenticate("alice", "StrongPass1")
	if err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, authenticated.ID)
	}
}

func TestAuthServiceRegisterRejectsInvalidInput(t *testing.T) {
	service, _ := newTestAuthService()
	if _, err := service.Register(Registration{Username: "alice", Password: "StrongPass1"}); err != nil {
		t.Fatalf("seed registration: %v", err)
	}

	tests := []struct {
		name         string
		registration Registration
		want         error
	}{
		{name: "short username", registration: Registration{Username: "al", Password: "StrongPass1"}, want: ErrInvalidUsername},
		{name: "weak password", registration: Registration{Username: "bob", Password: "weak"}, want: ErrWeakPassword},
		{name: "bad email", registration: Registration{Username: "bob", Password: "StrongPass1", Email: "nope"}, want: ErrInvalidEmail},
		{name: "duplicate", registration: Registration{Username: "alice", Password: "StrongPass1"}, want: ErrUsernameTaken},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.Register(testCase.registration)
			if !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected %v to classify as invalid input", err)
			}
		})
	}
}

func TestAuthServiceAuthenticateRejectsBadCredentials(t *testing.T) {
	service, repo := newTestAuthService()
	user, err := service.Register(Registration{Username: "alice", Password: "StrongPass1"})
	if err != nil {
		t.Fatalf("seed registration: %v", err)
	}

	if _, err := service.Authenticate("alice", "WrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for wrong password, got %v", err)
	}
	if _, err := service.Authenticate("nobody", "StrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for unknown user, got %v", err)
	}

	stored := repo.users[user.ID]
	stored.IsActive = false
	repo.users[user.ID] = stored
	if _, err := service.Authenticate("alice", "StrongPass1"); !errors.Is(err, ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestAuthServiceChangePassword(t *testing.T) {
	service, repo := newTestAuthService()
	user, err := service.Register(Registration{Username: "alice", Password: "StrongPass1"})
	if err != nil {
		t.Fatalf("seed registration: %v", err)
	}

	tests := []struct {
		name    string
		current string
		next    string
		want    error
	}{
		{name: "missing input", current: "", next: "NewPass12", want: ErrPasswordChangeInvalid},
		{name: "wrong current", current: "WrongPass1", next: "NewPass12", want: ErrInvalidCurrentPassword},
		{name: "unchanged", current: "StrongPass1", next: "StrongPass1", want: ErrNewPasswordMustDiffer},
		{name: "weak", current: "StrongPass1", next: "weakpass", want: ErrWeakPassword},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if err := service.ChangePassword(user.ID, testCase.current, testCase.next); !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
		})
	}

	stored := repo.users[user.ID]
	stored.MustChangePassword = true
	repo.users[user.ID] = stored

	if err := service.ChangePassword(user.ID, "StrongPass1", "NewPass12"); err != nil {
		t.Fatalf("ChangePassword() unexpected error: %v", err)
	}
	if repo.users[user.ID].MustChangePassword {
		t.Fatal("expected must_change_password to be cleared")
	}
	if _, err := service.Authenticate("alice", "NewPass12"); err != nil {
		t.Fatalf("expected new password to authenticate, got %v", err)
	}
}

func TestAuthServiceResetPassword(t *testing.T) {
	service, _ := newTestAuthService()
	if _, err := service.Register(Registration{Username: "alice", Password: "StrongPass1"}); err != nil {
		t.Fatalf("seed registration: %v", err)
	}

	user, err := service.ResetPassword("alice", "TempPass99", true)
	if err != nil {
		t.Fatalf("ResetPassword() unexpected error: %v", err)
	}
	if !user.MustChangePassword {
		t.Fatal("expected reset to require a password change")
	}
	if _, err := service.Authenticate("alice", "TempPass99"); err != nil {
		t.Fatalf("expected temporary password to authenticate, got %v", err)
	}

	if _, err := service.ResetPassword("ghost", "TempPass99", true); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
