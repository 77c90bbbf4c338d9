package service

import (
	"fmt"
	"strings"

	"school-calendar-bot/internal/models"
	"school-calendar-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// RegisterOrUpdate records the user on first contact and refreshes the
// profile fields on later ones. The role is never touched here.
func (s *UserService) RegisterOrUpdate(chatID int64, username, firstName, lastName string) (*models.User, error) {
	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %v", err)
	}

	if user == nil {
		user = &models.User{
			ChatID:    chatID,
			Username:  username,
			FirstName: firstName,
			LastName:  lastName,
			Role:      string(models.RoleViewer),
		}
		if err := s.repo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %v", err)
		}
		logrus.WithField("chat_id", chatID).Info("Registered new user")
		return user, nil
	}

	user.Username = username
	user.FirstName = firstName
	user.LastName = lastName
	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %v", err)
	}
	return user, nil
}

// InitializeAdmin grants the admin role to the configured chat ID,
// creating the user row if it does not exist yet.
func (s *UserService) InitializeAdmin(chatID int64) error {
	if chatID == 0 {
		return nil
	}

	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return err
	}

	if user == nil {
		user = &models.User{
			ChatID:    chatID,
			FirstName: "Administrator",
			Role:      string(models.RoleAdmin),
		}
		return s.repo.Create(user)
	}

	if user.IsAdmin() {
		return nil
	}
	return s.repo.UpdateRole(chatID, models.RoleAdmin)
}

// IsAdmin reports whether the chat belongs to an administrator.
func (s *UserService) IsAdmin(chatID int64) (bool, error) {
	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsAdmin(), nil
}

// Promote makes the target chat an administrator.
func (s *UserService) Promote(chatID int64) error {
	return s.repo.UpdateRole(chatID, models.RoleAdmin)
}

// Demote returns the target chat to viewer.
func (s *UserService) Demote(chatID int64) error {
	return s.repo.UpdateRole(chatID, models.RoleViewer)
}

func (s *UserService) GetAdmins() ([]*models.User, error) {
	return s.repo.GetAdmins()
}

// FormatAdminList formats the administrator list for display.
func (s *UserService) FormatAdminList(admins []*models.User) string {
	if len(admins) == 0 {
		return "No administrators configured."
	}

	var lines []string
	lines = append(lines, "👥 Administrators:")
	for _, admin := range admins {
		name := strings.TrimSpace(admin.FirstName + " " + admin.LastName)
		if admin.Username != "" {
			name += " (@" + admin.Username + ")"
		}
		lines = append(lines, fmt.Sprintf("• %s — chat %d", name, admin.ChatID))
	}
	return strings.Join(lines, "\n")
}
