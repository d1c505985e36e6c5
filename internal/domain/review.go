package domain

import "github.com/google/uuid"

// Review is a third-party review attached to an Entry by SubjectID.
// Every field except SubjectID may be absent.
type Review struct {
	ID              int64     `json:"id,omitempty"`
	SubjectID       uuid.UUID `json:"subjectId"`
	AuthorName      *string   `json:"authorName,omitempty"`
	Rating          *float64  `json:"rating,omitempty"`
	Text            *string   `json:"text,omitempty"`
	RelativeDate    *string   `json:"relativeDate,omitempty"`
	Time            *int64    `json:"time,omitempty"`
	Source          *string   `json:"source,omitempty"`
	AuthorURL       *string   `json:"authorUrl,omitempty"`
	ProfilePhotoURL *string   `json:"profilePhotoUrl,omitempty"`
}
