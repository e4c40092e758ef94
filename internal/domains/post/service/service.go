package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"social-backend/internal/domains/post/model"
	"social-backend/internal/domains/post/repository"
	profilerepo "social-backend/internal/domains/profile/repository"
	"social-backend/internal/infrastructure/cache"
	"social-backend/internal/infrastructure/storage"
	"social-backend/pkg/logger"
)

const postDetailCacheTTL = 5 * time.Minute

type postService struct {
	repo        repository.PostRepository
	profileRepo profilerepo.ProfileRepository
	uploader    storage.Uploader
	enqueuer    ScheduledPostEnqueuer
	cache       cache.Cache
	now         func() time.Time
}

func NewPostService(
	repo repository.PostRepository,
	profileRepo profilerepo.ProfileRepository,
	uploader storage.Uploader,
	enqueuer ScheduledPostEnqueuer,
	c cache.Cache,
) PostService {
	return &postService{
		repo:        repo,
		profileRepo: profileRepo,
		uploader:    uploader,
		enqueuer:    enqueuer,
		cache:       c,
		now:         time.Now,
	}
}

func postDetailCacheKey(postID, viewerProfileID uuid.UUID) string {
	return fmt.Sprintf("post:detail:%s:%s", postID, viewerProfileID)
}

// Create publishes the post now, or enqueues it when scheduled_at is in
// the future. Deferred posts persist nothing until the worker runs.
func (s *postService) Create(ctx context.Context, userID uuid.UUID, req *model.CreatePostRequest) (*CreatePostResult, error) {
	author, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.ScheduledAt != nil && req.ScheduledAt.After(s.now()) {
		payload := model.ScheduledPostPayload{
			AuthorID: author.ID.String(),
			Text:     req.Text,
		}
		if err := s.enqueuer.EnqueueScheduledPost(ctx, payload, *req.ScheduledAt); err != nil {
			return nil, fmt.Errorf("failed to enqueue scheduled post: %w", err)
		}

		logger.Info("post scheduled", map[string]interface{}{
			"author_id":    author.ID.String(),
			"scheduled_at": req.ScheduledAt.Format(time.RFC3339),
		})

		return &CreatePostResult{ScheduledAt: req.ScheduledAt}, nil
	}

	post, err := s.CreateForAuthor(ctx, author.ID, req.Text)
	if err != nil {
		return nil, err
	}

	detail, err := s.repo.GetDetail(ctx, post.ID, author.ID)
	if err != nil {
		return nil, err
	}

	return &CreatePostResult{Post: detail}, nil
}

// CreateForAuthor is the immediate publishing path, shared by Create and
// the scheduled-post worker. Hashtags are extracted from the text and
// attached atomically with the insert.
func (s *postService) CreateForAuthor(ctx context.Context, authorProfileID uuid.UUID, text string) (*model.Post, error) {
	if len(text) == 0 || len([]rune(text)) > model.MaxPostTextLength {
		return nil, model.NewTextTooLongError()
	}

	post := &model.Post{
		ID:       uuid.New(),
		AuthorID: authorProfileID,
		Text:     text,
	}

	titles := model.ExtractHashtags(text)
	if err := s.repo.CreateWithHashtags(ctx, post, titles); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) GetDetail(ctx context.Context, userID, postID uuid.UUID) (*model.PostDetail, error) {
	viewer, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := postDetailCacheKey(postID, viewer.ID)

	var cached model.PostDetail
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	detail, err := s.repo.GetDetail(ctx, postID, viewer.ID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, model.NewPostNotFoundError()
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, key, detail, postDetailCacheTTL); err != nil {
		logger.Warn("failed to cache post detail", map[string]interface{}{
			"post_id": postID.String(),
		})
	}

	return detail, nil
}

func (s *postService) List(ctx context.Context, userID uuid.UUID, filter model.ListPostsFilter) ([]model.PostListItem, error) {
	viewer, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.repo.List(ctx, filter, viewer.ID)
}

func (s *postService) Update(ctx context.Context, userID, postID uuid.UUID, req *model.UpdatePostRequest) (*model.PostDetail, error) {
	authorID, err := s.requireAuthor(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	titles := model.ExtractHashtags(req.Text)
	if err := s.repo.UpdateTextWithHashtags(ctx, postID, req.Text, titles); err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return nil, model.NewPostNotFoundError()
		}
		return nil, err
	}

	s.invalidateDetail(ctx, postID, authorID)

	return s.repo.GetDetail(ctx, postID, authorID)
}

func (s *postService) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	authorID, err := s.requireAuthor(ctx, userID, postID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return model.NewPostNotFoundError()
		}
		return err
	}

	s.invalidateDetail(ctx, postID, authorID)
	return nil
}

func (s *postService) SetImage(ctx context.Context, userID, postID uuid.UUID, filename string, data []byte, contentType string) (string, error) {
	authorID, err := s.requireAuthor(ctx, userID, postID)
	if err != nil {
		return "", err
	}

	key := storage.ObjectKey(storage.PostImagePrefix, filename)
	url, err := s.uploader.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload post image: %w", err)
	}

	if err := s.repo.UpdateImagePath(ctx, postID, url); err != nil {
		return "", err
	}

	s.invalidateDetail(ctx, postID, authorID)
	return url, nil
}

func (s *postService) Like(ctx context.Context, userID, postID uuid.UUID) error {
	viewer, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return model.NewPostNotFoundError()
		}
		return err
	}

	if err := s.repo.Like(ctx, postID, viewer.ID); err != nil {
		if errors.Is(err, model.ErrAlreadyLiked) {
			return model.NewAlreadyLikedError()
		}
		return err
	}

	s.invalidateDetail(ctx, postID, viewer.ID)
	return nil
}

func (s *postService) Unlike(ctx context.Context, userID, postID uuid.UUID) error {
	viewer, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return model.NewPostNotFoundError()
		}
		return err
	}

	if err := s.repo.Unlike(ctx, postID, viewer.ID); err != nil {
		if errors.Is(err, model.ErrNotLiked) {
			return model.NewNotLikedError()
		}
		return err
	}

	s.invalidateDetail(ctx, postID, viewer.ID)
	return nil
}

// requireAuthor loads the caller's profile and the post, and rejects the
// call when the caller is not the post's author. Returns the caller's
// profile ID.
func (s *postService) requireAuthor(ctx context.Context, userID, postID uuid.UUID) (uuid.UUID, error) {
	viewer, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			return uuid.Nil, model.NewPostNotFoundError()
		}
		return uuid.Nil, err
	}

	if post.AuthorID != viewer.ID {
		return uuid.Nil, model.NewNotAuthorError()
	}

	return viewer.ID, nil
}

func (s *postService) invalidateDetail(ctx context.Context, postID, viewerProfileID uuid.UUID) {
	if err := s.cache.Delete(ctx, postDetailCacheKey(postID, viewerProfileID)); err != nil {
		logger.Warn("failed to invalidate post cache", map[string]interface{}{
			"post_id": postID.String(),
		})
	}
}
