package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/swaraj-shubh/notebook/internal/entity"
	"github.com/swaraj-shubh/notebook/internal/pkg/serverutils"
)

// newOfflineRepository builds a repository on a client that never dials out.
// Only code paths that return before the first store call are exercised here.
func newOfflineRepository(t *testing.T) INotebookRepository {
	t.Helper()
	client, err := mongo.Connect(options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})
	return NewNotebookRepository(client.Database("notebook_test"))
}

func TestGetByIdMalformedIdIsNotFound(t *testing.T) {
	repo := newOfflineRepository(t)

	_, err := repo.GetById(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestDeleteMalformedIdDeletesNothing(t *testing.T) {
	repo := newOfflineRepository(t)

	deleted, err := repo.Delete(context.Background(), "zzzz")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestAddNoteMalformedNotebookIdFails(t *testing.T) {
	repo := newOfflineRepository(t)

	note := entity.Note{Title: "Day1", Content: "hike"}
	appended, err := repo.AddNote(context.Background(), "nope", &note)
	assert.NoError(t, err)
	assert.False(t, appended)
	assert.Empty(t, note.Id, "note must not be stamped when the append never ran")
}

func TestUpdateNoteEmptyPatchNeverTouchesStore(t *testing.T) {
	repo := newOfflineRepository(t)

	modified, err := repo.UpdateNote(context.Background(), "irrelevant", "irrelevant", &entity.NotePatch{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	assert.Equal(t, int64(0), modified)
}

func TestUpdateNoteMalformedIdsModifyNothing(t *testing.T) {
	repo := newOfflineRepository(t)
	title := "renamed"

	modified, err := repo.UpdateNote(context.Background(), "bad", bson.NewObjectID().Hex(), &entity.NotePatch{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), modified)

	modified, err = repo.UpdateNote(context.Background(), bson.NewObjectID().Hex(), "bad", &entity.NotePatch{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}

func TestDeleteNoteMalformedIdsModifyNothing(t *testing.T) {
	repo := newOfflineRepository(t)

	modified, err := repo.DeleteNote(context.Background(), "bad", bson.NewObjectID().Hex())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}

func TestBuildNoteSetFields(t *testing.T) {
	title := "Day1"
	content := "hike"
	tags := []string{"outdoors"}

	t.Run("empty patch selects nothing", func(t *testing.T) {
		fields := buildNoteSetFields(&entity.NotePatch{})
		assert.Empty(t, fields)
	})

	t.Run("only supplied fields are set", func(t *testing.T) {
		fields := buildNoteSetFields(&entity.NotePatch{Tags: &tags})
		require.Len(t, fields, 1)
		assert.Equal(t, "notes.$.tags", fields[0].Key)
		assert.Equal(t, tags, fields[0].Value)
	})

	t.Run("full patch sets every field positionally", func(t *testing.T) {
		fields := buildNoteSetFields(&entity.NotePatch{Title: &title, Content: &content, Tags: &tags})
		keys := make([]string, 0, len(fields))
		for _, f := range fields {
			keys = append(keys, f.Key)
		}
		assert.Equal(t, []string{"notes.$.title", "notes.$.content", "notes.$.tags"}, keys)
	})

	t.Run("explicit empty tag list is a real change", func(t *testing.T) {
		empty := []string{}
		fields := buildNoteSetFields(&entity.NotePatch{Tags: &empty})
		require.Len(t, fields, 1)
		assert.Equal(t, []string{}, fields[0].Value)
	})
}

func TestDocumentToEntityRendersStringIds(t *testing.T) {
	noteId := bson.NewObjectID()
	nbId := bson.NewObjectID()
	updated := time.Now().UTC()

	doc := notebookDocument{
		Id:          nbId,
		Title:       "Trip",
		Description: "",
		CreatedAt:   time.Now().UTC(),
		Notes: []noteDocument{
			{
				Id:        noteId,
				Title:     "Day1",
				Content:   "hike",
				Tags:      []string{"outdoors"},
				CreatedAt: time.Now().UTC(),
				UpdatedAt: &updated,
			},
		},
	}

	nb := doc.toEntity()
	assert.Equal(t, nbId.Hex(), nb.Id)
	require.Len(t, nb.Notes, 1)
	assert.Equal(t, noteId.Hex(), nb.Notes[0].Id)
	assert.Equal(t, []string{"outdoors"}, nb.Notes[0].Tags)
	require.NotNil(t, nb.Notes[0].UpdatedAt)
	assert.Equal(t, updated, *nb.Notes[0].UpdatedAt)
}
