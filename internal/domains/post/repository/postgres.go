package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"social-backend/internal/domains/post/model"
	"social-backend/pkg/database"
)

const uniqueViolation = "23505"

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

// =====================================================
// WRITES
// =====================================================

func (r *postgresPostRepository) CreateWithHashtags(ctx context.Context, post *model.Post, titles []string) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO posts (id, author_id, text, image_path, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING created_at, updated_at
		`
		err := tx.QueryRow(ctx, query, post.ID, post.AuthorID, post.Text, post.ImagePath).
			Scan(&post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		return attachHashtags(ctx, tx, post.ID, titles)
	})
}

func (r *postgresPostRepository) UpdateTextWithHashtags(ctx context.Context, postID uuid.UUID, text string, titles []string) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx,
			`UPDATE posts SET text = $2, updated_at = NOW() WHERE id = $1`,
			postID, text,
		)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}
		if result.RowsAffected() == 0 {
			return model.ErrPostNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM post_hashtags WHERE post_id = $1`, postID); err != nil {
			return fmt.Errorf("failed to clear post hashtags: %w", err)
		}

		return attachHashtags(ctx, tx, postID, titles)
	})
}

// attachHashtags gets or creates each hashtag by title and links it to
// the post. ON CONFLICT keeps concurrent creations of the same title
// from failing the transaction.
func attachHashtags(ctx context.Context, tx pgx.Tx, postID uuid.UUID, titles []string) error {
	for _, title := range titles {
		var hashtagID uuid.UUID
		err := tx.QueryRow(ctx, `
			INSERT INTO hashtags (id, title)
			VALUES ($1, $2)
			ON CONFLICT (title) DO UPDATE SET title = EXCLUDED.title
			RETURNING id
		`, uuid.New(), title).Scan(&hashtagID)
		if err != nil {
			return fmt.Errorf("failed to upsert hashtag: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO post_hashtags (post_id, hashtag_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, postID, hashtagID)
		if err != nil {
			return fmt.Errorf("failed to attach hashtag: %w", err)
		}
	}
	return nil
}

func (r *postgresPostRepository) UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE posts SET image_path = $2, updated_at = NOW() WHERE id = $1`,
		id, imagePath,
	)
	if err != nil {
		return fmt.Errorf("failed to update post image: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

// =====================================================
// READS
// =====================================================

func (r *postgresPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := `
		SELECT id, author_id, text, image_path, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	post := &model.Post{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Text,
		&post.ImagePath,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// postListSelect is the annotated row shared by List and GetDetail:
// author fields joined in, counters and the viewer flag as correlated
// subqueries, hashtag titles aggregated into an array.
const postListSelect = `
	SELECT
		p.id, p.author_id, pr.username, pr.image_path, p.text, p.image_path,
		COALESCE(
			(SELECT array_agg(h.title ORDER BY h.title)
			 FROM post_hashtags ph
			 INNER JOIN hashtags h ON h.id = ph.hashtag_id
			 WHERE ph.post_id = p.id),
			'{}'
		) AS hashtags,
		(SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id) AS likes_count,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count,
		EXISTS (
			SELECT 1 FROM post_likes l
			WHERE l.post_id = p.id AND l.liked_by_id = $1
		) AS liked_by_user,
		p.created_at
	FROM posts p
	INNER JOIN profiles pr ON pr.id = p.author_id
`

func scanPostItem(row pgx.Row, item *model.PostListItem) error {
	return row.Scan(
		&item.ID,
		&item.AuthorID,
		&item.AuthorUsername,
		&item.AuthorImage,
		&item.Text,
		&item.ImagePath,
		&item.Hashtags,
		&item.LikesCount,
		&item.CommentsCount,
		&item.LikedByUser,
		&item.CreatedAt,
	)
}

func (r *postgresPostRepository) GetDetail(ctx context.Context, id, viewerProfileID uuid.UUID) (*model.PostDetail, error) {
	query := postListSelect + ` WHERE p.id = $2`

	detail := &model.PostDetail{}
	err := scanPostItem(r.pool.QueryRow(ctx, query, viewerProfileID, id), &detail.PostListItem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post detail: %w", err)
	}

	detail.Comments, err = r.listPostComments(ctx, id)
	if err != nil {
		return nil, err
	}

	detail.Likes, err = r.listPostLikes(ctx, id)
	if err != nil {
		return nil, err
	}

	return detail, nil
}

func (r *postgresPostRepository) listPostComments(ctx context.Context, postID uuid.UUID) ([]model.PostComment, error) {
	query := `
		SELECT c.id, c.author_id, pr.username, c.text, c.commented_at
		FROM comments c
		INNER JOIN profiles pr ON pr.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.commented_at DESC
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list post comments: %w", err)
	}
	defer rows.Close()

	comments := []model.PostComment{}
	for rows.Next() {
		var comment model.PostComment
		err := rows.Scan(
			&comment.ID,
			&comment.AuthorID,
			&comment.AuthorUsername,
			&comment.Text,
			&comment.CommentedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post comment: %w", err)
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

func (r *postgresPostRepository) listPostLikes(ctx context.Context, postID uuid.UUID) ([]model.PostLike, error) {
	query := `
		SELECT pr.id, pr.username
		FROM post_likes l
		INNER JOIN profiles pr ON pr.id = l.liked_by_id
		WHERE l.post_id = $1
		ORDER BY l.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list post likes: %w", err)
	}
	defer rows.Close()

	likes := []model.PostLike{}
	for rows.Next() {
		var like model.PostLike
		if err := rows.Scan(&like.ProfileID, &like.Username); err != nil {
			return nil, fmt.Errorf("failed to scan post like: %w", err)
		}
		likes = append(likes, like)
	}

	return likes, rows.Err()
}

func (r *postgresPostRepository) List(ctx context.Context, filter model.ListPostsFilter, viewerProfileID uuid.UUID) ([]model.PostListItem, error) {
	query := postListSelect + ` WHERE 1=1`
	args := []interface{}{viewerProfileID}
	argCount := 2

	switch filter.Scope {
	case model.ScopeMine:
		query += fmt.Sprintf(" AND p.author_id = $%d", argCount)
		args = append(args, viewerProfileID)
		argCount++
	case model.ScopeFeed:
		query += fmt.Sprintf(` AND p.author_id IN (
			SELECT f.following_id FROM follows f WHERE f.follower_id = $%d
		)`, argCount)
		args = append(args, viewerProfileID)
		argCount++
	case model.ScopeLiked:
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM post_likes l
			WHERE l.post_id = p.id AND l.liked_by_id = $%d
		)`, argCount)
		args = append(args, viewerProfileID)
		argCount++
	}

	if len(filter.Hashtags) > 0 {
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM post_hashtags ph
			INNER JOIN hashtags h ON h.id = ph.hashtag_id
			WHERE ph.post_id = p.id AND h.title = ANY($%d)
		)`, argCount)
		args = append(args, filter.Hashtags)
		argCount++
	}

	query += " ORDER BY p.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var items []model.PostListItem
	for rows.Next() {
		var item model.PostListItem
		if err := scanPostItem(rows, &item); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// =====================================================
// LIKES
// =====================================================

func (r *postgresPostRepository) Like(ctx context.Context, postID, profileID uuid.UUID) error {
	query := `
		INSERT INTO post_likes (id, post_id, liked_by_id, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := r.pool.Exec(ctx, query, uuid.New(), postID, profileID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrAlreadyLiked
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

func (r *postgresPostRepository) Unlike(ctx context.Context, postID, profileID uuid.UUID) error {
	query := `DELETE FROM post_likes WHERE post_id = $1 AND liked_by_id = $2`

	result, err := r.pool.Exec(ctx, query, postID, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrNotLiked
	}

	return nil
}
