package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"social-backend/internal/domains/profile/model"
)

const uniqueViolation = "23505"

type postgresProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &postgresProfileRepository{pool: pool}
}

const profileColumns = `id, user_id, username, first_name, last_name, bio, image_path, created_at, updated_at`

func scanProfile(row pgx.Row) (*model.Profile, error) {
	p := &model.Profile{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Username,
		&p.FirstName,
		&p.LastName,
		&p.Bio,
		&p.ImagePath,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (r *postgresProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return scanProfile(r.pool.QueryRow(ctx, query, userID))
}

// =====================================================
// ANNOTATED LISTING
// =====================================================

// List annotates every row with is_followed_by_me and the follow
// counters in a single query.
func (r *postgresProfileRepository) List(
	ctx context.Context,
	filter model.ListProfilesFilter,
	viewerProfileID uuid.UUID,
) ([]model.ProfileListItem, error) {
	query := `
		SELECT
			p.id, p.username,
			TRIM(CONCAT(COALESCE(p.first_name, ''), ' ', COALESCE(p.last_name, ''))) AS full_name,
			p.image_path,
			EXISTS (
				SELECT 1 FROM follows f
				WHERE f.follower_id = $1 AND f.following_id = p.id
			) AS is_followed_by_me,
			(SELECT COUNT(*) FROM follows f WHERE f.following_id = p.id) AS followers_count,
			(SELECT COUNT(*) FROM follows f WHERE f.follower_id = p.id) AS following_count
		FROM profiles p
		WHERE 1=1
	`

	args := []interface{}{viewerProfileID}
	argCount := 2

	if filter.Username != "" {
		query += fmt.Sprintf(" AND LOWER(p.username) = LOWER($%d)", argCount)
		args = append(args, filter.Username)
		argCount++
	}

	if filter.FirstName != "" {
		query += fmt.Sprintf(" AND LOWER(p.first_name) = LOWER($%d)", argCount)
		args = append(args, filter.FirstName)
		argCount++
	}

	if filter.LastName != "" {
		query += fmt.Sprintf(" AND LOWER(p.last_name) = LOWER($%d)", argCount)
		args = append(args, filter.LastName)
		argCount++
	}

	query += " ORDER BY p.username"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var items []model.ProfileListItem
	for rows.Next() {
		var item model.ProfileListItem
		if err := rows.Scan(
			&item.ID,
			&item.Username,
			&item.FullName,
			&item.ImagePath,
			&item.IsFollowedByMe,
			&item.FollowersCount,
			&item.FollowingCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *postgresProfileRepository) GetDetail(ctx context.Context, id, viewerProfileID uuid.UUID) (*model.ProfileDetail, error) {
	query := `
		SELECT
			p.id, p.username, p.first_name, p.last_name, p.bio, p.image_path,
			EXISTS (
				SELECT 1 FROM follows f
				WHERE f.follower_id = $2 AND f.following_id = p.id
			) AS is_followed_by_me,
			(SELECT COUNT(*) FROM follows f WHERE f.following_id = p.id) AS followers_count,
			(SELECT COUNT(*) FROM follows f WHERE f.follower_id = p.id) AS following_count
		FROM profiles p
		WHERE p.id = $1
	`

	detail := &model.ProfileDetail{}
	err := r.pool.QueryRow(ctx, query, id, viewerProfileID).Scan(
		&detail.ID,
		&detail.Username,
		&detail.FirstName,
		&detail.LastName,
		&detail.Bio,
		&detail.ImagePath,
		&detail.IsFollowedByMe,
		&detail.FollowersCount,
		&detail.FollowingCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile detail: %w", err)
	}

	posts, err := r.listProfilePosts(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Posts = posts

	return detail, nil
}

// listProfilePosts loads the nested post rows for a profile detail, with
// like/comment counters aggregated in the same query.
func (r *postgresProfileRepository) listProfilePosts(ctx context.Context, profileID uuid.UUID) ([]model.ProfilePost, error) {
	query := `
		SELECT
			p.id, p.created_at, p.text, p.image_path,
			(SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id) AS likes_count,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count
		FROM posts p
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile posts: %w", err)
	}
	defer rows.Close()

	var posts []model.ProfilePost
	for rows.Next() {
		var post model.ProfilePost
		if err := rows.Scan(
			&post.ID,
			&post.CreatedAt,
			&post.Text,
			&post.ImagePath,
			&post.LikesCount,
			&post.CommentsCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func (r *postgresProfileRepository) GetMine(ctx context.Context, userID uuid.UUID) (*model.MyProfile, error) {
	query := `
		SELECT
			p.id, p.username, u.email, p.first_name, p.last_name, p.bio, p.image_path,
			(SELECT COUNT(*) FROM follows f WHERE f.following_id = p.id) AS followers_count,
			(SELECT COUNT(*) FROM follows f WHERE f.follower_id = p.id) AS following_count
		FROM profiles p
		INNER JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`

	me := &model.MyProfile{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&me.ID,
		&me.Username,
		&me.UserEmail,
		&me.FirstName,
		&me.LastName,
		&me.Bio,
		&me.ImagePath,
		&me.FollowersCount,
		&me.FollowingCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get own profile: %w", err)
	}

	return me, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresProfileRepository) Update(ctx context.Context, p *model.Profile) error {
	query := `
		UPDATE profiles
		SET username = $2, first_name = $3, last_name = $4, bio = $5, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, p.ID, p.Username, p.FirstName, p.LastName, p.Bio)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrUsernameTaken
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProfileNotFound
	}

	return nil
}

func (r *postgresProfileRepository) UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error {
	query := `UPDATE profiles SET image_path = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, imagePath)
	if err != nil {
		return fmt.Errorf("failed to update profile image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProfileNotFound
	}

	return nil
}

// =====================================================
// FOLLOW EDGES
// =====================================================

func (r *postgresProfileRepository) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	query := `
		INSERT INTO follows (id, follower_id, following_id, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := r.pool.Exec(ctx, query, uuid.New(), followerID, followingID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrAlreadyFollowing
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}

	return nil
}

func (r *postgresProfileRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	result, err := r.pool.Exec(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrNotFollowing
	}

	return nil
}

func (r *postgresProfileRepository) Followers(ctx context.Context, profileID uuid.UUID) ([]model.FollowRow, error) {
	query := `
		SELECT p.id, p.username
		FROM follows f
		INNER JOIN profiles p ON p.id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY f.created_at DESC
	`
	return r.listFollowRows(ctx, query, profileID)
}

func (r *postgresProfileRepository) Following(ctx context.Context, profileID uuid.UUID) ([]model.FollowRow, error) {
	query := `
		SELECT p.id, p.username
		FROM follows f
		INNER JOIN profiles p ON p.id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC
	`
	return r.listFollowRows(ctx, query, profileID)
}

func (r *postgresProfileRepository) listFollowRows(ctx context.Context, query string, profileID uuid.UUID) ([]model.FollowRow, error) {
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	defer rows.Close()

	var result []model.FollowRow
	for rows.Next() {
		var row model.FollowRow
		if err := rows.Scan(&row.ProfileID, &row.Username); err != nil {
			return nil, fmt.Errorf("failed to scan follow row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
