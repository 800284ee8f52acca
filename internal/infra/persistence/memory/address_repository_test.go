package memory

import (
	"context"
	"testing"
	"time"

	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAddresses() []*entity.Address {
	return []*entity.Address{
		{ID: "p1", Name: "Cafe", Latitude: 1, Longitude: 1, IsPublic: true, User: "a@x.com"},
		{ID: "q1", Name: "Home", Latitude: 2, Longitude: 2, IsPublic: false, User: "A@X.com"},
		{ID: "q2", Name: "Office", Latitude: 3, Longitude: 3, IsPublic: false, User: "b@x.com"},
		{ID: "p2", Name: "Park", Latitude: 4, Longitude: 4, IsPublic: true, User: "b@x.com"},
	}
}

func ids(addresses []*entity.Address) []string {
	out := make([]string, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, a.ID)
	}

	return out
}

func TestAddressRepository_FindWhere(t *testing.T) {
	store := NewStore()
	store.Seed(seedAddresses()...)
	repo := NewAddressRepository(store)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter repository.Filter
		want   []string
	}{
		{name: "all", filter: repository.Filter{}, want: []string{"p1", "q1", "q2", "p2"}},
		{name: "public", filter: repository.Filter{repository.Eq(repository.FieldIsPublic, true)}, want: []string{"p1", "p2"}},
		{name: "owner ignores case", filter: repository.Filter{repository.Eq(repository.FieldUser, "a@x.com")}, want: []string{"p1", "q1"}},
		{
			name: "owner private",
			filter: repository.Filter{
				repository.Eq(repository.FieldUser, "a@x.com"),
				repository.Eq(repository.FieldIsPublic, false),
			},
			want: []string{"q1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindWhere(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestAddressRepository_FindWhere_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected compound filter", func(t *testing.T) {
		repo := NewAddressRepository(NewStore(WithRejectedCompoundFilters()))
		assert.True(t, repo.Capabilities().CompoundFilter)

		_, err := repo.FindWhere(ctx, repository.Filter{
			repository.Eq(repository.FieldUser, "a@x.com"),
			repository.Eq(repository.FieldIsPublic, false),
		})
		assert.ErrorIs(t, err, repository.ErrUnsupportedQuery)
	})

	t.Run("compound filters disabled", func(t *testing.T) {
		repo := NewAddressRepository(NewStore(WithCompoundFilters(false)))
		assert.False(t, repo.Capabilities().CompoundFilter)
	})

	t.Run("unknown field", func(t *testing.T) {
		store := NewStore()
		store.Seed(seedAddresses()...)
		repo := NewAddressRepository(store)

		_, err := repo.FindWhere(ctx, repository.Filter{repository.Eq("rating", 5)})
		assert.ErrorIs(t, err, repository.ErrUnsupportedQuery)
	})
}

func TestAddressRepository_Lifecycle(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := NewAddressRepository(NewStore(WithClock(func() time.Time { return now })))
	ctx := context.Background()

	address := &entity.Address{Name: "Bakery", Latitude: 10, Longitude: 20, User: "c@x.com"}
	require.NoError(t, repo.Create(ctx, address))
	assert.NotEmpty(t, address.ID)
	assert.Equal(t, now, address.CreatedAt)

	found, err := repo.FindByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bakery", found.Name)

	// Returned records are copies.
	found.Name = "changed"
	again, err := repo.FindByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bakery", again.Name)

	require.NoError(t, repo.SetOwner(ctx, address.ID, "d@x.com"))
	again, err = repo.FindByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "d@x.com", again.User)

	require.NoError(t, repo.Delete(ctx, address.ID))
	_, err = repo.FindByID(ctx, address.ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, address.ID), repository.ErrAddressNotFound)
	assert.ErrorIs(t, repo.SetOwner(ctx, address.ID, "e@x.com"), repository.ErrAddressNotFound)
}
