package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcurti/falegnameria-backend/dao/model"
)

func TestProjectCreateGetRoundTrip(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()

	project := model.Project{
		Title:     "Cucina su misura",
		Location:  "Lugano",
		Goal:      "Ottimizzare lo spazio",
		Solution:  "Isola centrale e boiserie",
		Materials: "Rovere selezionato",
		Image:     "uploads/abc.jpg",
	}
	id, err := CreateProject(ctx, &project)
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := GetProject(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Cucina su misura", got.Title)
	assert.Equal(t, "Lugano", got.Location)
	assert.Equal(t, "Ottimizzare lo spazio", got.Goal)
	assert.Equal(t, "Isola centrale e boiserie", got.Solution)
	assert.Equal(t, "Rovere selezionato", got.Materials)
	assert.Equal(t, "uploads/abc.jpg", got.Image)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetProjectMissingReturnsNil(t *testing.T) {
	newTestDB(t)

	got, err := GetProject(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateProjectOverwritesAllFields(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()

	project := model.Project{Title: "a", Location: "b", Goal: "c", Solution: "d", Materials: "e", Image: "f"}
	id, err := CreateProject(ctx, &project)
	require.NoError(t, err)

	err = UpdateProject(ctx, &model.Project{
		ID: id, Title: "A", Location: "B", Goal: "C", Solution: "D", Materials: "E", Image: "",
	})
	require.NoError(t, err)

	got, err := GetProject(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, "B", got.Location)
	// blank image must overwrite too (full-field overwrite)
	assert.Equal(t, "", got.Image)
}

func TestDeleteProjectMissingIsNoop(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()

	_, err := CreateProject(ctx, &model.Project{Title: "a", Location: "b", Goal: "c", Solution: "d", Materials: "e"})
	require.NoError(t, err)

	require.NoError(t, DeleteProject(ctx, 9999))

	projects, err := ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestRecentProjectsOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third", "fourth"} {
		p := model.Project{Title: title, Location: "x", Goal: "x", Solution: "x", Materials: "x",
			CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, db.Create(&p).Error)
	}

	recent, err := RecentProjects(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "fourth", recent[0].Title)
	assert.Equal(t, "third", recent[1].Title)
	assert.Equal(t, "second", recent[2].Title)
}
