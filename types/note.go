package types

import (
	"time"
)

// AnonymousAuthor is shown for public notes whose owner cannot be resolved.
const AnonymousAuthor = "Anonymous"

type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    string    `gorm:"type:text;not null;index" json:"user_id"`
	IsPublic  bool      `gorm:"not null;default:false;index" json:"is_public"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	AuthorLabel string `gorm:"-" json:"author_label,omitempty"`
}

func (Note) TableName() string {
	return "notes"
}

// NoteInput is what a user submits to create a note.
type NoteInput struct {
	Title    string `form:"title" validate:"required,notblank"`
	Content  string `form:"content" validate:"required,notblank"`
	IsPublic bool   `form:"is_public"`
}

// NewNote builds the row to insert for in, owned by the session user.
func (in NoteInput) NewNote(s Session) Note {
	return Note{
		Title:    in.Title,
		Content:  in.Content,
		UserID:   s.UserID,
		IsPublic: in.IsPublic,
	}
}
