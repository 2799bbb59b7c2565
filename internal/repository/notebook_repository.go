package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/swaraj-shubh/notebook/internal/entity"
	"github.com/swaraj-shubh/notebook/internal/pkg/serverutils"
)

// ErrNoFieldsToUpdate reports a partial update whose payload selected no
// fields. The store is never touched in that case. Callers collapse it into
// a not-found outcome at the boundary, but it stays distinct here.
var ErrNoFieldsToUpdate = errors.New("update payload has no fields to apply")

type INotebookRepository interface {
	Create(ctx context.Context, notebook *entity.Notebook) error
	GetAll(ctx context.Context, limit int64) ([]*entity.Notebook, error)
	GetById(ctx context.Context, id string) (*entity.Notebook, error)
	Delete(ctx context.Context, id string) (int64, error)
	AddNote(ctx context.Context, notebookId string, note *entity.Note) (bool, error)
	UpdateNote(ctx context.Context, notebookId, noteId string, patch *entity.NotePatch) (int64, error)
	DeleteNote(ctx context.Context, notebookId, noteId string) (int64, error)
}

// Documents keep the store's ObjectID representation. It never crosses this
// package boundary: entities carry hex strings only.
type noteDocument struct {
	Id        bson.ObjectID `bson:"_id"`
	Title     string        `bson:"title"`
	Content   string        `bson:"content"`
	Tags      []string      `bson:"tags"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt *time.Time    `bson:"updated_at"`
}

type notebookDocument struct {
	Id          bson.ObjectID  `bson:"_id"`
	Title       string         `bson:"title"`
	Description string         `bson:"description"`
	CreatedAt   time.Time      `bson:"created_at"`
	Notes       []noteDocument `bson:"notes"`
}

func (d *noteDocument) toEntity() *entity.Note {
	return &entity.Note{
		Id:        d.Id.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		Tags:      d.Tags,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (d *notebookDocument) toEntity() *entity.Notebook {
	notes := make([]entity.Note, 0, len(d.Notes))
	for i := range d.Notes {
		notes = append(notes, *d.Notes[i].toEntity())
	}
	return &entity.Notebook{
		Id:          d.Id.Hex(),
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		Notes:       notes,
	}
}

// buildNoteSetFields translates a patch into the positional "$set" document.
// An empty result means the update is a no-op.
func buildNoteSetFields(patch *entity.NotePatch) bson.D {
	fields := bson.D{}
	if patch.Title != nil {
		fields = append(fields, bson.E{Key: "notes.$.title", Value: *patch.Title})
	}
	if patch.Content != nil {
		fields = append(fields, bson.E{Key: "notes.$.content", Value: *patch.Content})
	}
	if patch.Tags != nil {
		fields = append(fields, bson.E{Key: "notes.$.tags", Value: *patch.Tags})
	}
	return fields
}

type notebookRepository struct {
	collection *mongo.Collection
}

func NewNotebookRepository(db *mongo.Database) INotebookRepository {
	return &notebookRepository{collection: db.Collection("notebooks")}
}

func (r *notebookRepository) Create(ctx context.Context, notebook *entity.Notebook) error {
	doc := notebookDocument{
		Id:          bson.NewObjectID(),
		Title:       notebook.Title,
		Description: notebook.Description,
		CreatedAt:   time.Now().UTC(),
		Notes:       []noteDocument{},
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}

	*notebook = *doc.toEntity()
	return nil
}

func (r *notebookRepository) GetAll(ctx context.Context, limit int64) ([]*entity.Notebook, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []notebookDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	notebooks := make([]*entity.Notebook, 0, len(docs))
	for i := range docs {
		notebooks = append(notebooks, docs[i].toEntity())
	}
	return notebooks, nil
}

func (r *notebookRepository) GetById(ctx context.Context, id string) (*entity.Notebook, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids behave like missing ones.
		return nil, serverutils.ErrNotFound
	}

	var doc notebookDocument
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, serverutils.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *notebookRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *notebookRepository) AddNote(ctx context.Context, notebookId string, note *entity.Note) (bool, error) {
	oid, err := bson.ObjectIDFromHex(notebookId)
	if err != nil {
		return false, nil
	}

	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}

	doc := noteDocument{
		Id:        bson.NewObjectID(),
		Title:     note.Title,
		Content:   note.Content,
		Tags:      tags,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: nil,
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$push", Value: bson.D{{Key: "notes", Value: doc}}}},
	)
	if err != nil {
		return false, err
	}
	if res.ModifiedCount == 0 {
		return false, nil
	}

	*note = *doc.toEntity()
	return true, nil
}

func (r *notebookRepository) UpdateNote(ctx context.Context, notebookId, noteId string, patch *entity.NotePatch) (int64, error) {
	fields := buildNoteSetFields(patch)
	if len(fields) == 0 {
		return 0, ErrNoFieldsToUpdate
	}

	nbId, err := bson.ObjectIDFromHex(notebookId)
	if err != nil {
		return 0, nil
	}
	nId, err := bson.ObjectIDFromHex(noteId)
	if err != nil {
		return 0, nil
	}

	fields = append(fields, bson.E{Key: "notes.$.updated_at", Value: time.Now().UTC()})

	res, err := r.collection.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: nbId},
			{Key: "notes._id", Value: nId},
		},
		bson.D{{Key: "$set", Value: fields}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *notebookRepository) DeleteNote(ctx context.Context, notebookId, noteId string) (int64, error) {
	nbId, err := bson.ObjectIDFromHex(notebookId)
	if err != nil {
		return 0, nil
	}
	nId, err := bson.ObjectIDFromHex(noteId)
	if err != nil {
		return 0, nil
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: nbId}},
		bson.D{{Key: "$pull", Value: bson.D{
			{Key: "notes", Value: bson.D{{Key: "_id", Value: nId}}},
		}}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
