package main

import (
	"bytes"
	"context"
	"testing"

	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"
	"mapbook/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOwners(t *testing.T, owners ...string) repository.AddressRepository {
	t.Helper()

	repo := memory.NewAddressRepository(memory.NewStore())
	for i, owner := range owners {
		require.NoError(t, repo.Create(context.Background(), &entity.Address{
			Name:      "Spot",
			Latitude:  float64(i),
			Longitude: float64(i),
			User:      owner,
		}))
	}

	return repo
}

func TestNormalizeOwners(t *testing.T) {
	ctx := context.Background()
	repo := seedOwners(t, "Alice@Example.com", "bob@example.com", " CAROL@example.com ")

	var out bytes.Buffer
	changed, err := normalizeOwners(ctx, repo, false, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, changed)
	assert.Contains(t, out.String(), "updated 2 of 3 address(es)")

	all, err := repo.FindWhere(ctx, repository.Filter{})
	require.NoError(t, err)

	owners := make([]string, 0, len(all))
	for _, address := range all {
		owners = append(owners, address.User)
	}
	assert.Equal(t, []string{"alice@example.com", "bob@example.com", "carol@example.com"}, owners)
}

func TestNormalizeOwners_DryRun(t *testing.T) {
	ctx := context.Background()
	repo := seedOwners(t, "Alice@Example.com")

	var out bytes.Buffer
	changed, err := normalizeOwners(ctx, repo, true, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Contains(t, out.String(), "would update 1 of 1 address(es)")

	all, err := repo.FindWhere(ctx, repository.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Alice@Example.com", all[0].User)
}

func TestPrintAddresses(t *testing.T) {
	var out bytes.Buffer
	err := printAddresses(&out, []*entity.Address{
		{ID: "a1", Name: "Home", User: "alice@example.com", Latitude: 25.03, Longitude: 121.56},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "a1")
	assert.Contains(t, out.String(), "25.030000")
	assert.Contains(t, out.String(), "1 address(es)")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"resolve", "normalize-owners", "token"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
