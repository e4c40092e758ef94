package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"social-backend/internal/domains/comment/model"
	"social-backend/internal/domains/comment/repository"
	postmodel "social-backend/internal/domains/post/model"
	profilerepo "social-backend/internal/domains/profile/repository"
)

// CommentService covers comments scoped to a post. Mutations are
// restricted to the comment's author.
type CommentService interface {
	Create(ctx context.Context, userID, postID uuid.UUID, req *model.CreateCommentRequest) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.CommentView, error)
	Update(ctx context.Context, userID, commentID uuid.UUID, req *model.UpdateCommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, userID, commentID uuid.UUID) error
}

type commentService struct {
	repo        repository.CommentRepository
	profileRepo profilerepo.ProfileRepository
}

func NewCommentService(
	repo repository.CommentRepository,
	profileRepo profilerepo.ProfileRepository,
) CommentService {
	return &commentService{
		repo:        repo,
		profileRepo: profileRepo,
	}
}

func (s *commentService) Create(ctx context.Context, userID, postID uuid.UUID, req *model.CreateCommentRequest) (*model.Comment, error) {
	author, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.PostExists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, postmodel.ErrPostNotFound
	}

	comment := &model.Comment{
		ID:       uuid.New(),
		PostID:   postID,
		AuthorID: author.ID,
		Text:     req.Text,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.CommentView, error) {
	exists, err := s.repo.PostExists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, postmodel.ErrPostNotFound
	}

	return s.repo.ListByPost(ctx, postID)
}

func (s *commentService) Update(ctx context.Context, userID, commentID uuid.UUID, req *model.UpdateCommentRequest) (*model.Comment, error) {
	comment, err := s.requireAuthor(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateText(ctx, commentID, req.Text); err != nil {
		return nil, err
	}

	comment.Text = req.Text
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	if _, err := s.requireAuthor(ctx, userID, commentID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, commentID)
}

func (s *commentService) requireAuthor(ctx context.Context, userID, commentID uuid.UUID) (*model.Comment, error) {
	author, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			return nil, model.NewCommentNotFoundError()
		}
		return nil, err
	}

	if comment.AuthorID != author.ID {
		return nil, model.NewNotAuthorError()
	}

	return comment, nil
}
