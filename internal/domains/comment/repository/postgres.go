package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"social-backend/internal/domains/comment/model"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

func (r *postgresCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, author_id, text, commented_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING commented_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query, comment.ID, comment.PostID, comment.AuthorID, comment.Text).
		Scan(&comment.CommentedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `
		SELECT id, post_id, author_id, text, commented_at, updated_at
		FROM comments
		WHERE id = $1
	`

	comment := &model.Comment{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Text,
		&comment.CommentedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.CommentView, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, pr.username, pr.image_path, c.text, c.commented_at
		FROM comments c
		INNER JOIN profiles pr ON pr.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.commented_at DESC
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var views []model.CommentView
	for rows.Next() {
		var view model.CommentView
		if err := rows.Scan(
			&view.ID,
			&view.PostID,
			&view.AuthorID,
			&view.AuthorUsername,
			&view.AuthorImage,
			&view.Text,
			&view.CommentedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		views = append(views, view)
	}

	return views, rows.Err()
}

func (r *postgresCommentRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	query := `UPDATE comments SET text = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, text)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}

func (r *postgresCommentRepository) PostExists(ctx context.Context, postID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return exists, nil
}
