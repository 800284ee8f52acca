package firestore

import (
	"context"
	"os"
	"testing"

	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "mapbook-test-"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestAddressRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := NewAddressRepository(client, true)

	mine := &entity.Address{Name: "Home", Latitude: 1, Longitude: 2, User: "me@example.com"}
	shared := &entity.Address{Name: "Cafe", Latitude: 3, Longitude: 4, IsPublic: true, User: "me@example.com"}
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, shared))
	require.NotEmpty(t, mine.ID)

	found, err := repo.FindByID(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home", found.Name)

	private, err := repo.FindWhere(ctx, repository.Filter{
		repository.Eq(repository.FieldUser, "me@example.com"),
		repository.Eq(repository.FieldIsPublic, false),
	})
	require.NoError(t, err)
	require.Len(t, private, 1)
	assert.Equal(t, mine.ID, private[0].ID)

	require.NoError(t, repo.Delete(ctx, mine.ID))
	_, err = repo.FindByID(ctx, mine.ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, mine.ID), repository.ErrAddressNotFound)
}

func TestCommentAndProfileRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()

	comments := NewCommentRepository(client)
	require.NoError(t, comments.Create(ctx, "addr-1", &entity.Comment{Text: "first", Rating: 4, User: "a@example.com"}))
	require.NoError(t, comments.Create(ctx, "addr-1", &entity.Comment{Text: "second", Rating: 2, User: "b@example.com"}))

	list, err := comments.FindByAddress(ctx, "addr-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)

	profiles := NewProfileRepository(client)
	_, err = profiles.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	require.NoError(t, profiles.Upsert(ctx, &entity.Profile{Email: "A@Example.com", AvatarURL: "https://cdn/a.jpg"}))
	profile, err := profiles.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/a.jpg", profile.AvatarURL)
}
