package services

import (
	"vpms_backend/internal/auth"
	"vpms_backend/internal/email"
	"vpms_backend/internal/logger"
	"vpms_backend/internal/models"
	"vpms_backend/internal/repositories"
	"vpms_backend/internal/services/dto"
	"vpms_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ConfirmEmail(db *gorm.DB, userID, code string) (*dto.ConfirmEmailResponse, error)
	ResendConfirmation(db *gorm.DB, req *dto.ResendConfirmationRequest) error
}

type authService struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	encryptionKey string
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider, encryptionKey string) AuthService {
	return &authService{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		encryptionKey: encryptionKey,
	}
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, apperrors.ErrStoreFailed(err, "load user")
	}

	// Stored passwords are encrypted, not hashed: decrypt and compare.
	stored, err := auth.DecryptString(user.Password, s.encryptionKey)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stored != req.Password {
		return nil, apperrors.ErrPasswordIncorrect
	}

	if !user.IsValid {
		state, err := user.AccountState()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		switch state.State {
		case models.AccountStatePending:
			return nil, apperrors.ErrAccountPending
		case models.AccountStateFrozen:
			return nil, apperrors.ErrAccountFrozen
		}
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		APIToken: token,
		UserID:   user.ID,
	}, nil
}

func (s *authService) ConfirmEmail(db *gorm.DB, userID, code string) (*dto.ConfirmEmailResponse, error) {
	if userID == "" {
		return nil, apperrors.ErrMissingParameter("userId")
	}
	if code == "" {
		return nil, apperrors.ErrMissingParameter("cc")
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User")
		}
		return nil, apperrors.ErrStoreFailed(err, "load user")
	}
	if user.IsValid {
		return nil, apperrors.ErrPreconditionFailed("auth", "User is already active")
	}

	state, err := user.AccountState()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if state.ConfirmationCode != code {
		return nil, apperrors.NewBadRequestError("Incorrect confirmation code")
	}

	// An approved email change takes effect together with the activation.
	if state.NewEmailAddress != "" {
		user.Email = state.NewEmailAddress
	}
	user.IsValid = true
	if err := user.SetAccountState(models.AccountState{State: models.AccountStateActive}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.ErrStoreFailed(err, "activate user")
	}

	return &dto.ConfirmEmailResponse{
		Message: "Email confirmed successfully",
		Email:   user.Email,
	}, nil
}

func (s *authService) ResendConfirmation(db *gorm.DB, req *dto.ResendConfirmationRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrEmailNotFound
		}
		return apperrors.ErrStoreFailed(err, "load user")
	}
	if user.IsValid {
		return apperrors.ErrPreconditionFailed("auth", "User is already active")
	}

	state, err := user.AccountState()
	if err != nil {
		return apperrors.InternalError(err)
	}
	if state.State == models.AccountStateFrozen {
		return apperrors.ErrAccountFrozen
	}

	state.State = models.AccountStatePending
	state.ConfirmationCode = uuid.NewString()
	if err := user.SetAccountState(state); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.ErrStoreFailed(err, "store confirmation code")
	}

	if err := s.emailProvider.SendConfirmationCode(user.Email, user.ID, state.ConfirmationCode); err != nil {
		logger.WithError(err).Warn("failed to send confirmation email", "user_id", user.ID)
		return apperrors.Wrap(err, apperrors.CodeInternalError, "email", "Failed to send confirmation email", 502)
	}
	return nil
}
