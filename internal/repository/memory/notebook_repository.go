// Package memory holds an in-process notebook store with the same observable
// behavior as the MongoDB-backed repository. It backs the hermetic test
// suites; nothing in the server wires it.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/swaraj-shubh/notebook/internal/entity"
	"github.com/swaraj-shubh/notebook/internal/pkg/serverutils"
	"github.com/swaraj-shubh/notebook/internal/repository"
)

type NotebookRepository struct {
	mu        sync.RWMutex
	notebooks map[string]*entity.Notebook
}

func NewNotebookRepository() *NotebookRepository {
	return &NotebookRepository{
		notebooks: make(map[string]*entity.Notebook),
	}
}

func (r *NotebookRepository) Create(_ context.Context, notebook *entity.Notebook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &entity.Notebook{
		Id:          bson.NewObjectID().Hex(),
		Title:       notebook.Title,
		Description: notebook.Description,
		CreatedAt:   time.Now().UTC(),
		Notes:       []entity.Note{},
	}
	r.notebooks[stored.Id] = stored

	*notebook = cloneNotebook(stored)
	return nil
}

func (r *NotebookRepository) GetAll(_ context.Context, limit int64) ([]*entity.Notebook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entity.Notebook, 0, len(r.notebooks))
	for _, nb := range r.notebooks {
		all = append(all, nb)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if limit > 0 && int64(len(all)) > limit {
		all = all[:limit]
	}

	result := make([]*entity.Notebook, 0, len(all))
	for _, nb := range all {
		clone := cloneNotebook(nb)
		result = append(result, &clone)
	}
	return result, nil
}

func (r *NotebookRepository) GetById(_ context.Context, id string) (*entity.Notebook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nb, ok := r.notebooks[id]
	if !ok {
		return nil, serverutils.ErrNotFound
	}
	clone := cloneNotebook(nb)
	return &clone, nil
}

func (r *NotebookRepository) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notebooks[id]; !ok {
		return 0, nil
	}
	delete(r.notebooks, id)
	return 1, nil
}

func (r *NotebookRepository) AddNote(_ context.Context, notebookId string, note *entity.Note) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nb, ok := r.notebooks[notebookId]
	if !ok {
		return false, nil
	}

	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}

	stored := entity.Note{
		Id:        bson.NewObjectID().Hex(),
		Title:     note.Title,
		Content:   note.Content,
		Tags:      tags,
		CreatedAt: time.Now().UTC(),
	}
	nb.Notes = append(nb.Notes, stored)

	*note = cloneNote(&stored)
	return true, nil
}

func (r *NotebookRepository) UpdateNote(_ context.Context, notebookId, noteId string, patch *entity.NotePatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, repository.ErrNoFieldsToUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	nb, ok := r.notebooks[notebookId]
	if !ok {
		return 0, nil
	}

	for i := range nb.Notes {
		if nb.Notes[i].Id != noteId {
			continue
		}
		if patch.Title != nil {
			nb.Notes[i].Title = *patch.Title
		}
		if patch.Content != nil {
			nb.Notes[i].Content = *patch.Content
		}
		if patch.Tags != nil {
			nb.Notes[i].Tags = append([]string{}, (*patch.Tags)...)
		}
		now := time.Now().UTC()
		nb.Notes[i].UpdatedAt = &now
		return 1, nil
	}
	return 0, nil
}

func (r *NotebookRepository) DeleteNote(_ context.Context, notebookId, noteId string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nb, ok := r.notebooks[notebookId]
	if !ok {
		return 0, nil
	}

	for i := range nb.Notes {
		if nb.Notes[i].Id == noteId {
			nb.Notes = append(nb.Notes[:i], nb.Notes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func cloneNote(n *entity.Note) entity.Note {
	clone := *n
	clone.Tags = append([]string{}, n.Tags...)
	if n.UpdatedAt != nil {
		t := *n.UpdatedAt
		clone.UpdatedAt = &t
	}
	return clone
}

func cloneNotebook(nb *entity.Notebook) entity.Notebook {
	clone := *nb
	clone.Notes = make([]entity.Note, 0, len(nb.Notes))
	for i := range nb.Notes {
		clone.Notes = append(clone.Notes, cloneNote(&nb.Notes[i]))
	}
	return clone
}
