package user

import (
	"errors"
	"log/slog"
	"strings"

	internal "github.com/cims/inventory-management/internal"
	userDatamodel "github.com/cims/inventory-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type RepositoryAPI interface {
	GetByID(id int64) (*userDatamodel.User, error)
	EmailTakenByOther(email string, userID int64) (bool, error)
	UpdateProfile(id int64, name, email string) (*userDatamodel.User, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetProfile(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		s.logger.Error("get profile: lookup failed", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("user lookup failed", err)
	}
	return FromDataModel(u), nil
}

// UpdateProfile changes name and email after re-running the email shape
// check and making sure no other user already holds the new email.
func (s *Service) UpdateProfile(userID int64, dto UpdateProfileDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)
	email := strings.TrimSpace(dto.Email)

	taken, err := s.repo.EmailTakenByOther(email, userID)
	if err != nil {
		s.logger.Error("update profile: email lookup failed", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("email lookup failed", err)
	}
	if taken {
		return nil, internal.ErrEmailInUse
	}

	updated, err := s.repo.UpdateProfile(userID, name, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		s.logger.Error("update profile: update failed", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("profile update failed", err)
	}

	s.logger.Info("profile updated", "user_id", userID)
	return FromDataModel(updated), nil
}
