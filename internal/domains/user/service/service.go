package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	profilemodel "social-backend/internal/domains/profile/model"
	profilerepo "social-backend/internal/domains/profile/repository"
	"social-backend/internal/domains/user/model"
	"social-backend/internal/domains/user/repository"
	"social-backend/pkg/jwt"
	"social-backend/pkg/logger"
)

const bcryptCost = 12

// UserService covers registration, login and token refresh. It also
// deletes accounts on behalf of the profile domain.
type UserService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenPair, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo        repository.UserRepository
	profileRepo profilerepo.ProfileRepository
	jwtManager  *jwt.Manager
}

func NewUserService(
	repo repository.UserRepository,
	profileRepo profilerepo.ProfileRepository,
	jwtManager *jwt.Manager,
) UserService {
	return &userService{
		repo:        repo,
		profileRepo: profileRepo,
		jwtManager:  jwtManager,
	}
}

// Register creates the user and its profile atomically. A missing
// username gets a generated placeholder the user can change later.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	username := profilemodel.DefaultUsername()
	if req.Username != nil && *req.Username != "" {
		username = *req.Username
	}

	profile := &profilemodel.Profile{
		ID:       uuid.New(),
		UserID:   user.ID,
		Username: username,
	}

	if err := s.repo.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return nil, model.NewEmailTakenError()
		}
		if errors.Is(err, profilemodel.ErrUsernameTaken) {
			return nil, profilemodel.NewUsernameTakenError()
		}
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": user.ID.String(),
	})

	return s.buildAuthResponse(user, profile.ID, profile.Username)
}

func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same reply for unknown email and wrong password.
		return nil, model.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	profile, err := s.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user, profile.ID, profile.Username)
}

func (s *userService) Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, model.NewInvalidTokenError()
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.NewInvalidTokenError()
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, model.NewInvalidTokenError()
	}

	return s.generateTokens(user)
}

func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}

	logger.Info("user deleted", map[string]interface{}{
		"user_id": userID.String(),
	})

	return nil
}

func (s *userService) buildAuthResponse(user *model.User, profileID uuid.UUID, username string) (*model.AuthResponse, error) {
	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		UserID:    user.ID,
		ProfileID: profileID,
		Email:     user.Email,
		Username:  username,
		Tokens:    *tokens,
	}, nil
}

func (s *userService) generateTokens(user *model.User) (*model.TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, err
	}

	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
