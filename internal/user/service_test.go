package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/healthtrackapp/healthtrack/internal/user"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so the in-memory database is shared across all queries.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&user.User{}))
	return db
}

func newService(t *testing.T) user.Service {
	t.Helper()
	return user.NewService(user.NewRepository(newTestDB(t)))
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.Create(ctx, user.CreateUserDTO{Name: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Name)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", created.ID.String())

	fetched, err := svc.GetByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestCreateDuplicateName(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Create(ctx, user.CreateUserDTO{Name: "alice"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, user.CreateUserDTO{Name: "alice"})
	assert.ErrorIs(t, err, user.ErrNameTaken)
}

func TestCreateEmptyName(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), user.CreateUserDTO{Name: "   "})
	assert.ErrorIs(t, err, user.ErrEmptyName)
}

func TestGetByNameNotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := svc.Create(ctx, user.CreateUserDTO{Name: name})
		require.NoError(t, err)
	}

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Name)
	assert.Equal(t, "bob", users[1].Name)
	assert.Equal(t, "carol", users[2].Name)
}
