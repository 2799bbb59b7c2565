package entity

import (
	"time"
)

type Note struct {
	Id        string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NotePatch carries the fields of a partial note update. Nil means
// "leave the stored value alone".
type NotePatch struct {
	Title   *string
	Content *string
	Tags    *[]string
}

func (p *NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil
}
