package service

import (
	"context"
	"errors"

	"github.com/swaraj-shubh/notebook/internal/dto"
	"github.com/swaraj-shubh/notebook/internal/entity"
	"github.com/swaraj-shubh/notebook/internal/pkg/serverutils"
	"github.com/swaraj-shubh/notebook/internal/repository"
)

type INoteService interface {
	Create(ctx context.Context, notebookId string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, notebookId, noteId string, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error)
	Delete(ctx context.Context, notebookId, noteId string) error
}

type noteService struct {
	notebookRepository repository.INotebookRepository
}

func NewNoteService(notebookRepository repository.INotebookRepository) INoteService {
	return &noteService{notebookRepository: notebookRepository}
}

func (s *noteService) Create(ctx context.Context, notebookId string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	// A missing parent is a 404; a failed append on an existing parent is a
	// 400. The lookup keeps the two apart.
	_, err := s.notebookRepository.GetById(ctx, notebookId)
	if err != nil {
		return nil, err
	}

	note := entity.Note{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}

	appended, err := s.notebookRepository.AddNote(ctx, notebookId, &note)
	if err != nil {
		return nil, err
	}
	if !appended {
		return nil, serverutils.ErrBadRequest
	}

	return toNoteResponse(&note), nil
}

func (s *noteService) Update(ctx context.Context, notebookId, noteId string, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error) {
	patch := entity.NotePatch{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}

	modified, err := s.notebookRepository.UpdateNote(ctx, notebookId, noteId, &patch)
	if err != nil {
		if errors.Is(err, repository.ErrNoFieldsToUpdate) {
			// Empty payloads surface exactly like a missing target.
			return nil, serverutils.ErrNotFound
		}
		return nil, err
	}
	if modified == 0 {
		return nil, serverutils.ErrNotFound
	}

	return &dto.UpdateNoteResponse{Updated: true}, nil
}

func (s *noteService) Delete(ctx context.Context, notebookId, noteId string) error {
	modified, err := s.notebookRepository.DeleteNote(ctx, notebookId, noteId)
	if err != nil {
		return err
	}
	if modified == 0 {
		return serverutils.ErrNotFound
	}
	return nil
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      note.Tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
