package dto

import (
	"time"
)

type CreateNotebookRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type NotebookResponse struct {
	Id          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	Notes       []NoteResponse `json:"notes"`
}
