package service

import (
	"context"

	"github.com/swaraj-shubh/notebook/internal/dto"
	"github.com/swaraj-shubh/notebook/internal/entity"
	"github.com/swaraj-shubh/notebook/internal/pkg/serverutils"
	"github.com/swaraj-shubh/notebook/internal/repository"
)

type INotebookService interface {
	Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	GetAll(ctx context.Context, limit int64) ([]*dto.NotebookResponse, error)
	Show(ctx context.Context, id string) (*dto.NotebookResponse, error)
	Delete(ctx context.Context, id string) error
}

type notebookService struct {
	notebookRepository repository.INotebookRepository
}

func NewNotebookService(notebookRepository repository.INotebookRepository) INotebookService {
	return &notebookService{notebookRepository: notebookRepository}
}

func (s *notebookService) Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	notebook := entity.Notebook{
		Title:       req.Title,
		Description: req.Description,
	}

	err := s.notebookRepository.Create(ctx, &notebook)
	if err != nil {
		return nil, err
	}

	return toNotebookResponse(&notebook), nil
}

func (s *notebookService) GetAll(ctx context.Context, limit int64) ([]*dto.NotebookResponse, error) {
	notebooks, err := s.notebookRepository.GetAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotebookResponse, 0, len(notebooks))
	for _, notebook := range notebooks {
		result = append(result, toNotebookResponse(notebook))
	}
	return result, nil
}

func (s *notebookService) Show(ctx context.Context, id string) (*dto.NotebookResponse, error) {
	notebook, err := s.notebookRepository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	return toNotebookResponse(notebook), nil
}

func (s *notebookService) Delete(ctx context.Context, id string) error {
	deleted, err := s.notebookRepository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return serverutils.ErrNotFound
	}
	return nil
}

func toNotebookResponse(notebook *entity.Notebook) *dto.NotebookResponse {
	notes := make([]dto.NoteResponse, 0, len(notebook.Notes))
	for i := range notebook.Notes {
		notes = append(notes, *toNoteResponse(&notebook.Notes[i]))
	}
	return &dto.NotebookResponse{
		Id:          notebook.Id,
		Title:       notebook.Title,
		Description: notebook.Description,
		CreatedAt:   notebook.CreatedAt,
		Notes:       notes,
	}
}
