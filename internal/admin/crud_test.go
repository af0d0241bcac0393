package admin

import (
	"context"
	"testing"

	"portfolio-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillLocalList(draft *[]models.Skill) *ListController[models.Skill] {
	return NewLocalList(
		func(item models.Skill) string { return item.ID },
		func(item *models.Skill, id string) { item.ID = id },
		draft,
	)
}

func TestLocalSubmitMintsDraftID(t *testing.T) {
	draft := []models.Skill{}
	ctl := newSkillLocalList(&draft)

	form := ctl.BeginCreate()
	form.Name = "Security Testing"
	items, err := ctl.Submit(context.Background(), *form)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, parseErr := uuid.Parse(items[0].ID)
	assert.NoError(t, parseErr)
	assert.True(t, ctl.IsDraftID(items[0].ID))
	assert.False(t, ctl.Editing())
}

func TestLocalSubmitEditReplacesInPlace(t *testing.T) {
	draft := []models.Skill{}
	ctl := newSkillLocalList(&draft)

	first, err := ctl.Submit(context.Background(), models.Skill{Name: "v1"})
	require.NoError(t, err)
	require.Len(t, first, 1)

	form := ctl.BeginEdit(first[0])
	form.Name = "v2"
	second, err := ctl.Submit(context.Background(), *form)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, "v2", second[0].Name)
}

func TestLocalSubmitPersistedIDNotTreatedAsDraft(t *testing.T) {
	draft := []models.Skill{{ID: "persisted-1", Name: "from store"}}
	ctl := newSkillLocalList(&draft)

	items, err := ctl.Submit(context.Background(), models.Skill{ID: "persisted-1", Name: "edited"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "persisted-1", items[0].ID)
	assert.False(t, ctl.IsDraftID("persisted-1"))
}

func TestLocalRemoveDropsDraftID(t *testing.T) {
	draft := []models.Skill{}
	ctl := newSkillLocalList(&draft)

	items, err := ctl.Submit(context.Background(), models.Skill{Name: "temp"})
	require.NoError(t, err)
	id := items[0].ID

	items, err = ctl.Remove(context.Background(), id, true)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, ctl.IsDraftID(id))
}

func TestSetItemsClearsDraftIDs(t *testing.T) {
	draft := []models.Skill{}
	ctl := newSkillLocalList(&draft)

	items, err := ctl.Submit(context.Background(), models.Skill{Name: "temp"})
	require.NoError(t, err)
	id := items[0].ID

	ctl.SetItems([]models.Skill{{ID: "canonical-1", Name: "temp"}})
	assert.False(t, ctl.IsDraftID(id))
	assert.Equal(t, []models.Skill{{ID: "canonical-1", Name: "temp"}}, ctl.Items(context.Background()))
}

func TestRemoteSubmitRefetchesAfterUpsert(t *testing.T) {
	stored := []models.Skill{}
	ops := RemoteOps[models.Skill]{
		FetchAll: func(context.Context) []models.Skill { return stored },
		Upsert: func(_ context.Context, item models.Skill) *models.Skill {
			item.ID = "db-1"
			stored = append(stored, item)
			return &item
		},
		Delete: func(context.Context, string) bool { return true },
	}
	ctl := NewRemoteList(
		func(item models.Skill) string { return item.ID },
		func(item *models.Skill, id string) { item.ID = id },
		ops,
	)

	form := ctl.BeginCreate()
	form.Name = "Regression Testing"
	items, err := ctl.Submit(context.Background(), *form)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "db-1", items[0].ID)
	assert.False(t, ctl.Editing())
}

func TestRemoteSubmitFailureKeepsFormOpen(t *testing.T) {
	ops := RemoteOps[models.Skill]{
		FetchAll: func(context.Context) []models.Skill { return nil },
		Upsert:   func(context.Context, models.Skill) *models.Skill { return nil },
		Delete:   func(context.Context, string) bool { return false },
	}
	ctl := NewRemoteList(
		func(item models.Skill) string { return item.ID },
		func(item *models.Skill, id string) { item.ID = id },
		ops,
	)

	form := ctl.BeginCreate()
	form.Name = "unsaved input"
	_, err := ctl.Submit(context.Background(), *form)
	assert.ErrorIs(t, err, ErrSaveFailed)
	assert.True(t, ctl.Editing())
	require.NotNil(t, ctl.Form())
	assert.Equal(t, "unsaved input", ctl.Form().Name)
}

func TestRemoteRemoveRequiresConfirmation(t *testing.T) {
	deleted := false
	ops := RemoteOps[models.Skill]{
		FetchAll: func(context.Context) []models.Skill { return nil },
		Upsert:   func(context.Context, models.Skill) *models.Skill { return nil },
		Delete: func(context.Context, string) bool {
			deleted = true
			return true
		},
	}
	ctl := NewRemoteList(
		func(item models.Skill) string { return item.ID },
		func(item *models.Skill, id string) { item.ID = id },
		ops,
	)

	_, err := ctl.Remove(context.Background(), "id-1", false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.False(t, deleted)

	_, err = ctl.Remove(context.Background(), "id-1", true)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestRemoteRemoveReportsSentinelFailure(t *testing.T) {
	ops := RemoteOps[models.Skill]{
		FetchAll: func(context.Context) []models.Skill { return nil },
		Upsert:   func(context.Context, models.Skill) *models.Skill { return nil },
		Delete:   func(context.Context, string) bool { return false },
	}
	ctl := NewRemoteList(
		func(item models.Skill) string { return item.ID },
		func(item *models.Skill, id string) { item.ID = id },
		ops,
	)

	_, err := ctl.Remove(context.Background(), "id-1", true)
	assert.ErrorIs(t, err, ErrSaveFailed)
}
