package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"social-backend/internal/domains/profile/model"
	"social-backend/internal/domains/profile/repository"
	"social-backend/internal/infrastructure/storage"
)

type profileService struct {
	repo     repository.ProfileRepository
	uploader storage.Uploader
	remover  IdentityRemover
}

func NewProfileService(
	repo repository.ProfileRepository,
	uploader storage.Uploader,
	remover IdentityRemover,
) ProfileService {
	return &profileService{
		repo:     repo,
		uploader: uploader,
		remover:  remover,
	}
}

// profileOf resolves the caller's own profile by account ID.
func (s *profileService) profileOf(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return nil, model.NewProfileNotFoundError()
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) List(ctx context.Context, viewerUserID uuid.UUID, filter model.ListProfilesFilter) ([]model.ProfileListItem, error) {
	viewer, err := s.profileOf(ctx, viewerUserID)
	if err != nil {
		return nil, err
	}

	return s.repo.List(ctx, filter, viewer.ID)
}

func (s *profileService) GetDetail(ctx context.Context, viewerUserID, profileID uuid.UUID) (*model.ProfileDetail, error) {
	viewer, err := s.profileOf(ctx, viewerUserID)
	if err != nil {
		return nil, err
	}

	detail, err := s.repo.GetDetail(ctx, profileID, viewer.ID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return nil, model.NewProfileNotFoundError()
		}
		return nil, err
	}

	return detail, nil
}

func (s *profileService) GetMine(ctx context.Context, userID uuid.UUID) (*model.MyProfile, error) {
	me, err := s.repo.GetMine(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return nil, model.NewProfileNotFoundError()
		}
		return nil, err
	}
	return me, nil
}

func (s *profileService) UpdateMine(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.MyProfile, error) {
	profile, err := s.profileOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		profile.Username = *req.Username
	}
	if req.FirstName != nil {
		profile.FirstName = req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = req.LastName
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return nil, model.NewUsernameTakenError()
		}
		return nil, err
	}

	return s.GetMine(ctx, userID)
}

func (s *profileService) DeleteMine(ctx context.Context, userID uuid.UUID) error {
	// Confirm the profile exists before touching the account.
	if _, err := s.profileOf(ctx, userID); err != nil {
		return err
	}

	return s.remover.DeleteUser(ctx, userID)
}

func (s *profileService) SetImage(ctx context.Context, userID uuid.UUID, filename string, data []byte, contentType string) (string, error) {
	profile, err := s.profileOf(ctx, userID)
	if err != nil {
		return "", err
	}

	key := storage.ObjectKey(storage.ProfileImagePrefix, filename)
	url, err := s.uploader.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}

	if err := s.repo.UpdateImagePath(ctx, profile.ID, url); err != nil {
		return "", err
	}

	return url, nil
}

func (s *profileService) Follow(ctx context.Context, followerUserID, followingProfileID uuid.UUID) error {
	follower, err := s.profileOf(ctx, followerUserID)
	if err != nil {
		return err
	}

	if follower.ID == followingProfileID {
		return model.NewSelfFollowError()
	}

	// The target must exist before the edge is written.
	if _, err := s.repo.GetByID(ctx, followingProfileID); err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return model.NewProfileNotFoundError()
		}
		return err
	}

	if err := s.repo.Follow(ctx, follower.ID, followingProfileID); err != nil {
		if errors.Is(err, model.ErrAlreadyFollowing) {
			return model.NewAlreadyFollowingError()
		}
		return err
	}

	return nil
}

func (s *profileService) Unfollow(ctx context.Context, followerUserID, followingProfileID uuid.UUID) error {
	follower, err := s.profileOf(ctx, followerUserID)
	if err != nil {
		return err
	}

	if follower.ID == followingProfileID {
		return model.NewSelfFollowError()
	}

	if _, err := s.repo.GetByID(ctx, followingProfileID); err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return model.NewProfileNotFoundError()
		}
		return err
	}

	if err := s.repo.Unfollow(ctx, follower.ID, followingProfileID); err != nil {
		if errors.Is(err, model.ErrNotFollowing) {
			return model.NewNotFollowingError()
		}
		return err
	}

	return nil
}

func (s *profileService) Followers(ctx context.Context, userID uuid.UUID) ([]model.FollowRow, error) {
	profile, err := s.profileOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.repo.Followers(ctx, profile.ID)
}

func (s *profileService) Following(ctx context.Context, userID uuid.UUID) ([]model.FollowRow, error) {
	profile, err := s.profileOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.repo.Following(ctx, profile.ID)
}
