package userService

import (
	users "BlogGolang/internal/api/user"
	userRepository "BlogGolang/internal/api/user/repository"
	"BlogGolang/internal/entity"
	"BlogGolang/pkg/bcrypt"
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsersStore struct {
	byID     map[string]entity.User
	commits  int
	inserted []entity.User
}

func newFakeUsersStore() *fakeUsersStore {
	return &fakeUsersStore{byID: make(map[string]entity.User)}
}

func (f *fakeUsersStore) add(user entity.User) {
	f.byID[user.ID] = user
}

func (f *fakeUsersStore) NewClient(tx bool) (userRepository.Client, error) {
	return userRepository.Client{
		Users:    f,
		Commit:   func() error { f.commits++; return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeUsersStore) CreateUser(ctx context.Context, user entity.User) error {
	f.byID[user.ID] = user
	f.inserted = append(f.inserted, user)
	return nil
}

func (f *fakeUsersStore) GetByID(ctx context.Context, id string) (entity.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return entity.User{}, users.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsersStore) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	for _, user := range f.byID {
		if user.Username == username {
			return user, nil
		}
	}
	return entity.User{}, users.ErrUserNotFound
}

func (f *fakeUsersStore) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, users.ErrUserNotFound
}

func (f *fakeUsersStore) UpdateUser(ctx context.Context, user entity.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return users.ErrUserNotFound
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUsersStore) UpdatePassword(ctx context.Context, id string, hashedPassword string) error {
	user, ok := f.byID[id]
	if !ok {
		return users.ErrUserNotFound
	}
	user.Password = hashedPassword
	f.byID[id] = user
	return nil
}

func (f *fakeUsersStore) DeleteUser(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return users.ErrUserNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeGeocoder struct {
	lat, lng float64
	ok       bool
	calls    int
}

func (f *fakeGeocoder) Resolve(ctx context.Context, address string) (float64, float64, bool) {
	f.calls++
	return f.lat, f.lng, f.ok
}

func newTestService(store *fakeUsersStore, geocoder *fakeGeocoder) IUsersService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return New(logger, store, bcrypt.NewWithCost(4), geocoder, utilsStub{})
}

type utilsStub struct{}

func (utilsStub) NewULIDFromTimestamp(_ time.Time) (string, error) {
	return "01K0TESTULID0000000000ID00", nil
}

func TestCreateUserHashesPassword(t *testing.T) {
	store := newFakeUsersStore()
	svc := newTestService(store, &fakeGeocoder{})

	userID, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "plaintext",
	})
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	require.Len(t, store.inserted, 1)
	created := store.inserted[0]

	assert.NotEqual(t, "plaintext", created.Password)
	assert.NoError(t, bcrypt.NewWithCost(4).ComparePassword(created.Password, "plaintext"))
	assert.Equal(t, 1, store.commits)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	store := newFakeUsersStore()
	store.add(entity.User{ID: "u1", Username: "alice", Email: "alice@example.com"})
	svc := newTestService(store, &fakeGeocoder{})

	_, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "plaintext",
	})

	assert.ErrorIs(t, err, users.ErrUsernameOrEmailTaken)
	assert.Empty(t, store.inserted)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newFakeUsersStore()
	store.add(entity.User{ID: "u1", Username: "alice", Email: "alice@example.com"})
	svc := newTestService(store, &fakeGeocoder{})

	_, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "plaintext",
	})

	assert.ErrorIs(t, err, users.ErrUsernameOrEmailTaken)
	assert.Empty(t, store.inserted)
}

func TestCreateUserResolvesAddress(t *testing.T) {
	store := newFakeUsersStore()
	geocoder := &fakeGeocoder{lat: -6.2088, lng: 106.8456, ok: true}
	svc := newTestService(store, geocoder)

	_, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "plaintext",
		Address:  "Jakarta",
	})
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	created := store.inserted[0]

	require.NotNil(t, created.Lat)
	require.NotNil(t, created.Lng)
	assert.InDelta(t, -6.2088, *created.Lat, 0.0001)
	assert.InDelta(t, 106.8456, *created.Lng, 0.0001)
	assert.Equal(t, 1, geocoder.calls)
}

func TestCreateUserGeocodingFailureStillCreates(t *testing.T) {
	store := newFakeUsersStore()
	svc := newTestService(store, &fakeGeocoder{ok: false})

	userID, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "plaintext",
		Address:  "nowhere at all",
	})
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	require.Len(t, store.inserted, 1)
	assert.Nil(t, store.inserted[0].Lat)
	assert.Nil(t, store.inserted[0].Lng)
}

func TestCreateUserWithoutAddressSkipsGeocoding(t *testing.T) {
	store := newFakeUsersStore()
	geocoder := &fakeGeocoder{ok: true}
	svc := newTestService(store, geocoder)

	_, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "plaintext",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, geocoder.calls)
}

func TestUpdateUserPartial(t *testing.T) {
	store := newFakeUsersStore()
	store.add(entity.User{
		ID:       "u1",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "$existinghash",
	})
	geocoder := &fakeGeocoder{ok: true}
	svc := newTestService(store, geocoder)

	newUsername := "alice2"
	err := svc.UpdateUser(context.Background(), "u1", users.UpdateUserRequest{
		Username: &newUsername,
	})
	require.NoError(t, err)

	updated := store.byID["u1"]
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "$existinghash", updated.Password)
	assert.Equal(t, 0, geocoder.calls)
}

func TestUpdateUserNotFound(t *testing.T) {
	store := newFakeUsersStore()
	svc := newTestService(store, &fakeGeocoder{})

	newUsername := "ghost"
	err := svc.UpdateUser(context.Background(), "missing", users.UpdateUserRequest{
		Username: &newUsername,
	})

	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.NewWithCost(4).HashPassword("plaintext")
	require.NoError(t, err)

	store := newFakeUsersStore()
	store.add(entity.User{ID: "u1", Username: "alice", Password: hash})
	svc := newTestService(store, &fakeGeocoder{})

	userID, err := svc.Login(context.Background(), users.LoginRequest{
		Username: "alice",
		Password: "plaintext",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.NewWithCost(4).HashPassword("plaintext")
	require.NoError(t, err)

	store := newFakeUsersStore()
	store.add(entity.User{ID: "u1", Username: "alice", Password: hash})
	svc := newTestService(store, &fakeGeocoder{})

	_, err = svc.Login(context.Background(), users.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, users.ErrInvalidUsernameOrPassword)
}

func TestLoginUnknownUsername(t *testing.T) {
	store := newFakeUsersStore()
	svc := newTestService(store, &fakeGeocoder{})

	_, err := svc.Login(context.Background(), users.LoginRequest{
		Username: "nobody",
		Password: "plaintext",
	})

	assert.ErrorIs(t, err, users.ErrInvalidUsernameOrPassword)
}

func TestChangePassword(t *testing.T) {
	hasher := bcrypt.NewWithCost(4)
	hash, err := hasher.HashPassword("old-password")
	require.NoError(t, err)

	store := newFakeUsersStore()
	store.add(entity.User{ID: "u1", Username: "alice", Password: hash})
	svc := newTestService(store, &fakeGeocoder{})

	err = svc.ChangePassword(context.Background(), "u1", users.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})
	require.NoError(t, err)

	assert.NoError(t, hasher.ComparePassword(store.byID["u1"].Password, "new-password"))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	hasher := bcrypt.NewWithCost(4)
	hash, err := hasher.HashPassword("old-password")
	require.NoError(t, err)

	store := newFakeUsersStore()
	store.add(entity.User{ID: "u1", Username: "alice", Password: hash})
	svc := newTestService(store, &fakeGeocoder{})

	err = svc.ChangePassword(context.Background(), "u1", users.ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "new-password",
	})

	assert.ErrorIs(t, err, users.ErrCurrentPasswordMismatch)
	assert.Equal(t, hash, store.byID["u1"].Password)
}

func TestChangePasswordUserNotFound(t *testing.T) {
	store := newFakeUsersStore()
	svc := newTestService(store, &fakeGeocoder{})

	err := svc.ChangePassword(context.Background(), "missing", users.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})

	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
