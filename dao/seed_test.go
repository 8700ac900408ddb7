package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcurti/falegnameria-backend/dao/model"
)

func TestSeedPopulatesEmptyTables(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))

	projects, err := ListProjects(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, projects)

	listings, err := ListListings(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, listings)
	for _, l := range listings {
		assert.True(t, l.ListingType.Valid())
		assert.NotEmpty(t, l.Bullets)
		assert.NotEmpty(t, l.Images)
	}
}

func TestSeedSkipsNonEmptyTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := CreateProject(ctx, &model.Project{Title: "mine", Location: "x", Goal: "x", Solution: "x", Materials: "x"})
	require.NoError(t, err)

	require.NoError(t, Seed(db))

	projects, err := ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "mine", projects[0].Title)

	// the listings table was still empty, so it does get seeded
	listings, err := ListListings(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, listings)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))
	first, err := ListListings(context.Background())
	require.NoError(t, err)

	require.NoError(t, Seed(db))
	second, err := ListListings(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, len(first))
}
