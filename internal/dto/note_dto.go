package dto

import (
	"time"
)

type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

// UpdateNoteRequest is a partial update: absent fields stay untouched.
// Tags is a pointer to a slice so "tags omitted" and "tags: []" differ.
type UpdateNoteRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

type NoteResponse struct {
	Id        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UpdateNoteResponse struct {
	Updated bool `json:"updated"`
}
