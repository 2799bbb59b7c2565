package entity

import (
	"time"
)

// Notebook is the aggregate root: its notes have no lifecycle of their own.
type Notebook struct {
	Id          string
	Title       string
	Description string
	CreatedAt   time.Time
	Notes       []Note
}
