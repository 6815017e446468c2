//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
	repo "github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "bookmarks_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/bookmarks_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *repo.Connection {
	t.Helper()
	conn, err := repo.NewConnection(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	require.NoError(t, conn.Ping(ctx))

	ur := repo.NewUserRepository(conn)
	br := repo.NewBookmarkRepository(conn)

	t.Run("user_repository", func(t *testing.T) {
		first := "Ada"
		saved, err := ur.Create(ctx, model.User{Email: "user@example.com", PasswordHash: "$argon2id$x", FirstName: &first})
		require.NoError(t, err)
		require.NotZero(t, saved.ID)
		require.False(t, saved.CreatedAt.IsZero())

		byEmail, err := ur.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		require.Equal(t, saved.ID, byEmail.ID)
		require.Equal(t, "Ada", *byEmail.FirstName)
		require.Nil(t, byEmail.LastName)

		byID, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, "$argon2id$x", byID.PasswordHash)

		_, err = ur.Create(ctx, model.User{Email: "user@example.com", PasswordHash: "other"})
		require.ErrorIs(t, err, model.ErrAlreadyExists)

		_, err = ur.GetByEmail(ctx, "missing@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)
		_, err = ur.GetByID(ctx, 999999)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("bookmark_repository", func(t *testing.T) {
		owner, err := ur.Create(ctx, model.User{Email: "owner@example.com", PasswordHash: "h"})
		require.NoError(t, err)

		empty, err := br.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.NotNil(t, empty)
		require.Empty(t, empty)

		desc := "docs"
		saved, err := br.Create(ctx, model.Bookmark{UserID: owner.ID, Title: "Go", Description: &desc, Link: "https://go.dev"})
		require.NoError(t, err)

		got, err := br.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, owner.ID, got.UserID)
		require.Equal(t, "docs", *got.Description)

		list, err := br.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)

		_, err = br.GetByID(ctx, 999999)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestUserRepository_ConcurrentDuplicateSignup(t *testing.T) {
	ctx := context.Background()
	ur := repo.NewUserRepository(connect(t))

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ur.Create(ctx, model.User{Email: "race@example.com", PasswordHash: "h"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case assert.ErrorIs(t, err, model.ErrAlreadyExists):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)
}
