package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	profilemodel "social-backend/internal/domains/profile/model"
	"social-backend/internal/domains/user/model"
	"social-backend/pkg/jwt"
)

// =====================================================
// FAKES
// =====================================================

type fakeUserRepo struct {
	users    map[uuid.UUID]*model.User
	profiles map[uuid.UUID]*profilemodel.Profile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[uuid.UUID]*model.User),
		profiles: make(map[uuid.UUID]*profilemodel.Profile),
	}
}

func (f *fakeUserRepo) CreateWithProfile(ctx context.Context, user *model.User, profile *profilemodel.Profile) error {
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return model.ErrEmailTaken
		}
	}
	for _, existing := range f.profiles {
		if existing.Username == profile.Username {
			return profilemodel.ErrUsernameTaken
		}
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeProfileRepo struct {
	repo *fakeUserRepo
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profilemodel.Profile, error) {
	for _, p := range f.repo.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, profilemodel.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*profilemodel.Profile, error) {
	return nil, profilemodel.ErrProfileNotFound
}

func (f *fakeProfileRepo) List(ctx context.Context, filter profilemodel.ListProfilesFilter, viewerProfileID uuid.UUID) ([]profilemodel.ProfileListItem, error) {
	return nil, nil
}

func (f *fakeProfileRepo) GetDetail(ctx context.Context, id, viewerProfileID uuid.UUID) (*profilemodel.ProfileDetail, error) {
	return nil, profilemodel.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetMine(ctx context.Context, userID uuid.UUID) (*profilemodel.MyProfile, error) {
	return nil, profilemodel.ErrProfileNotFound
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *profilemodel.Profile) error { return nil }

func (f *fakeProfileRepo) UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error {
	return nil
}

func (f *fakeProfileRepo) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return nil
}

func (f *fakeProfileRepo) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return nil
}

func (f *fakeProfileRepo) Followers(ctx context.Context, profileID uuid.UUID) ([]profilemodel.FollowRow, error) {
	return nil, nil
}

func (f *fakeProfileRepo) Following(ctx context.Context, profileID uuid.UUID) ([]profilemodel.FollowRow, error) {
	return nil, nil
}

// =====================================================
// TESTS
// =====================================================

func newService(t *testing.T) (UserService, *fakeUserRepo) {
	t.Helper()

	repo := newFakeUserRepo()
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewUserService(repo, &fakeProfileRepo{repo: repo}, manager), repo
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	svc, repo := newService(t)

	username := "alice"
	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
		Username: &username,
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)

	// Both identities exist, and the password is stored hashed.
	require.Len(t, repo.users, 1)
	require.Len(t, repo.profiles, 1)
	user := repo.users[resp.UserID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
}

func TestRegisterWithoutUsernameGeneratesPlaceholder(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "bob@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Username, "user-"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newService(t)

	req := &model.RegisterRequest{Email: "alice@example.com", Password: "correct horse"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestLoginSuccessAndFailure(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Tokens.AccessToken)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	// Unknown email yields the same error as a wrong password.
	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuthErrorsCarryDomainCodes(t *testing.T) {
	svc, _ := newService(t)

	req := &model.RegisterRequest{Email: "alice@example.com", Password: "correct horse"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	var userErr *model.UserError
	_, err = svc.Register(context.Background(), req)
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, model.ErrCodeEmailTaken, userErr.Code)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, model.ErrCodeInvalidCredentials, userErr.Code)

	_, err = svc.Refresh(context.Background(), &model.RefreshRequest{RefreshToken: "garbage"})
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, model.ErrCodeInvalidToken, userErr.Code)
}

func TestRefreshRoundTrip(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	tokens, err := svc.Refresh(context.Background(), &model.RefreshRequest{
		RefreshToken: resp.Tokens.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	// An access token is not accepted as a refresh token.
	_, err = svc.Refresh(context.Background(), &model.RefreshRequest{
		RefreshToken: resp.Tokens.AccessToken,
	})
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestDeleteUser(t *testing.T) {
	svc, repo := newService(t)

	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), resp.UserID))
	assert.Empty(t, repo.users)

	err = svc.DeleteUser(context.Background(), resp.UserID)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
