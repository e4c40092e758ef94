package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-backend/internal/domains/profile/model"
)

// =====================================================
// FAKES
// =====================================================

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*model.Profile
	follows  map[[2]uuid.UUID]bool
	images   map[uuid.UUID]string
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: make(map[uuid.UUID]*model.Profile),
		follows:  make(map[[2]uuid.UUID]bool),
		images:   make(map[uuid.UUID]string),
	}
}

func (f *fakeProfileRepo) add(userID uuid.UUID, username string) *model.Profile {
	p := &model.Profile{ID: uuid.New(), UserID: userID, Username: username}
	f.profiles[p.ID] = p
	return p
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, model.ErrProfileNotFound
}

func (f *fakeProfileRepo) List(ctx context.Context, filter model.ListProfilesFilter, viewerProfileID uuid.UUID) ([]model.ProfileListItem, error) {
	var items []model.ProfileListItem
	for _, p := range f.profiles {
		if filter.Username != "" && !strings.EqualFold(p.Username, filter.Username) {
			continue
		}
		item := model.ProfileListItem{
			ID:             p.ID,
			Username:       p.Username,
			IsFollowedByMe: f.follows[[2]uuid.UUID{viewerProfileID, p.ID}],
		}
		for key := range f.follows {
			if key[1] == p.ID {
				item.FollowersCount++
			}
			if key[0] == p.ID {
				item.FollowingCount++
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeProfileRepo) GetDetail(ctx context.Context, id, viewerProfileID uuid.UUID) (*model.ProfileDetail, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return &model.ProfileDetail{ID: p.ID, Username: p.Username}, nil
}

func (f *fakeProfileRepo) GetMine(ctx context.Context, userID uuid.UUID) (*model.MyProfile, error) {
	p, err := f.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.MyProfile{ID: p.ID, Username: p.Username}, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *model.Profile) error {
	for _, existing := range f.profiles {
		if existing.ID != p.ID && existing.Username == p.Username {
			return model.ErrUsernameTaken
		}
	}
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error {
	if _, ok := f.profiles[id]; !ok {
		return model.ErrProfileNotFound
	}
	f.images[id] = imagePath
	return nil
}

func (f *fakeProfileRepo) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	key := [2]uuid.UUID{followerID, followingID}
	if f.follows[key] {
		return model.ErrAlreadyFollowing
	}
	f.follows[key] = true
	return nil
}

func (f *fakeProfileRepo) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	key := [2]uuid.UUID{followerID, followingID}
	if !f.follows[key] {
		return model.ErrNotFollowing
	}
	delete(f.follows, key)
	return nil
}

func (f *fakeProfileRepo) Followers(ctx context.Context, profileID uuid.UUID) ([]model.FollowRow, error) {
	return nil, nil
}

func (f *fakeProfileRepo) Following(ctx context.Context, profileID uuid.UUID) ([]model.FollowRow, error) {
	return nil, nil
}

type fakeUploader struct {
	keys []string
}

func (f *fakeUploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.keys = append(f.keys, key)
	return "http://storage.local/bucket/" + key, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error { return nil }

type fakeRemover struct {
	deleted []uuid.UUID
}

func (f *fakeRemover) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	f.deleted = append(f.deleted, userID)
	return nil
}

// =====================================================
// TESTS
// =====================================================

func TestFollowRejectsSelf(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	me := repo.add(userID, "alice")

	svc := NewProfileService(repo, &fakeUploader{}, &fakeRemover{})

	err := svc.Follow(context.Background(), userID, me.ID)
	assert.ErrorIs(t, err, model.ErrSelfFollow)
}

func TestFollowUnknownTarget(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	repo.add(userID, "alice")

	svc := NewProfileService(repo, &fakeUploader{}, &fakeRemover{})

	err := svc.Follow(context.Background(), userID, uuid.New())
	assert.ErrorIs(t, err, model.ErrProfileNotFound)
}

func TestFollowTwiceConflicts(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	repo.add(userID, "alice")
	bob := repo.add(uuid.New(), "bob")

	svc := NewProfileService(repo, &fakeUploader{}, &fakeRemover{})

	require.NoError(t, svc.Follow(context.Background(), userID, bob.ID))

	err := svc.Follow(context.Background(), userID, bob.ID)
	assert.ErrorIs(t, err, model.ErrAlreadyFollowing)
}

func TestUnfollowWithoutFollowing(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	repo.add(userID, "alice")
	bob := repo.add(uuid.New(), "bob")

	svc := NewProfileService(repo, &fakeUploader{}, &fakeRemover{})

	err := svc.Unfollow(context.Background(), userID, bob.ID)
	assert.ErrorIs(t, err, model.ErrNotFollowing)
}

func TestFollowErrorsCarryDomainCodes(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	repo.add(userID, "alice")
	bob := repo.add(uuid.New(), "bob")

	svc := NewProfileService(repo, &fakeUploader{}, &fakeRemover{})
	ctx := context.Background()

	var profileErr *model.ProfileError
	err := svc.Follow(ctx, userID, uuid.New())
	require.ErrorAs(t, err, &profileErr)
	assert.Equal(t, model.ErrCodeProfileNotFound, profileErr.Code)

	require.NoError(t, svc.Follow(ctx, userID, bob.ID))
	err = svc.Follow(ctx, userID, bob.ID)
	require.ErrorAs(t, err, &profileErr)
	assert.Equal(t, model.ErrCodeAlreadyFollowing, profileErr.Code)
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	repo.add(userID, "alice")
	bob := repo.add(uuid.New(), "bob")

	svc := NewProfileService(repo, &fakeUploader{}, &fakeRemover{})

	require.NoError(t, svc.Follow(context.Background(), userID, bob.ID))
	require.NoError(t, svc.Unfollow(context.Background(), userID, bob.ID))

	err := svc.Unfollow(context.Background(), userID, bob.ID)
	assert.ErrorIs(t, err, model.ErrNotFollowing)
}

func TestListAnnotatesFollowCounters(t *testing.T) {
	repo := newFakeProfileRepo()
	viewerUserID := uuid.New()
	viewer := repo.add(viewerUserID, "viewer")
	alice := repo.add(uuid.New(), "alice")
	bob := repo.add(uuid.New(), "bob")
	carol := repo.add(uuid.New(), "carol")
	dave := repo.add(uuid.New(), "dave")

	ctx := context.Background()
	require.NoError(t, repo.Follow(ctx, viewer.ID, alice.ID))
	require.NoError(t, repo.Follow(ctx, bob.ID, alice.ID))
	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Follow(ctx, alice.ID, carol.ID))
	require.NoError(t, repo.Follow(ctx, alice.ID, dave.ID))

	svc := NewProfileService(repo, &fakeUploader{}, &fakeRemover{})

	items, err := svc.List(ctx, viewerUserID, model.ListProfilesFilter{Username: "alice"})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, 2, items[0].FollowersCount)
	assert.Equal(t, 3, items[0].FollowingCount)
	assert.True(t, items[0].IsFollowedByMe)
}

func TestUpdateMineAppliesOnlyProvidedFields(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	me := repo.add(userID, "alice")
	bio := "original bio"
	me.Bio = &bio

	svc := NewProfileService(repo, &fakeUploader{}, &fakeRemover{})

	first := "Alice"
	_, err := svc.UpdateMine(context.Background(), userID, &model.UpdateProfileRequest{
		FirstName: &first,
	})
	require.NoError(t, err)

	updated, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "Alice", *updated.FirstName)
	assert.Equal(t, "original bio", *updated.Bio)
}

func TestUpdateMineUsernameConflict(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	repo.add(userID, "alice")
	repo.add(uuid.New(), "bob")

	svc := NewProfileService(repo, &fakeUploader{}, &fakeRemover{})

	taken := "bob"
	_, err := svc.UpdateMine(context.Background(), userID, &model.UpdateProfileRequest{
		Username: &taken,
	})
	assert.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestDeleteMineDelegatesToRemover(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	repo.add(userID, "alice")
	remover := &fakeRemover{}

	svc := NewProfileService(repo, &fakeUploader{}, remover)

	require.NoError(t, svc.DeleteMine(context.Background(), userID))
	assert.Equal(t, []uuid.UUID{userID}, remover.deleted)
}

func TestSetImageUsesProfilePrefix(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	me := repo.add(userID, "alice")
	uploader := &fakeUploader{}

	svc := NewProfileService(repo, uploader, &fakeRemover{})

	url, err := svc.SetImage(context.Background(), userID, "avatar.png", []byte("data"), "image/png")
	require.NoError(t, err)

	require.Len(t, uploader.keys, 1)
	assert.True(t, strings.HasPrefix(uploader.keys[0], "profile_image/"))
	assert.True(t, strings.HasSuffix(uploader.keys[0], ".png"))
	assert.Equal(t, url, repo.images[me.ID])
}
