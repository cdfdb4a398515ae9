package domain

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Status messages reported on /data responses.
const (
	StatusMatched  = "Here are elearning matching your interest & level"
	StatusFallback = "No elearnings matching your criteria. Listing all learnings"
)

// Elearning is one catalog entry: a course, workshop or guide. Field names
// follow the Dutch column names of the source catalog.
type Elearning struct {
	ID               string
	Titel            string
	Niveau           int
	Onderwerp        string
	Type             string
	Tijdsinvestering float64
	Taal             string
	Organisatie      string
	Beschrijving     string
	Link             string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks the fields required for an entry to be listed.
func (e *Elearning) Validate() error {
	if e.Titel == "" {
		return NewInvalidInputError("titel is required")
	}
	if e.Niveau < 0 {
		return NewInvalidInputError("niveau must not be negative")
	}
	if e.Onderwerp != "" && !ValidTopic(e.Onderwerp) {
		return NewInvalidInputError("onderwerp must not contain commas or control characters")
	}
	if e.Tijdsinvestering < 0 {
		return NewInvalidInputError("tijdsinvestering must not be negative")
	}
	if e.Status != "" && !ValidStatus(e.Status) {
		return NewInvalidInputError("status must be active or inactive")
	}
	return nil
}

// ValidStatus reports whether s is StatusActive or StatusInactive.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}

// MaxTopicLength bounds an Onderwerp value, in characters.
const MaxTopicLength = 100

// ValidTopic reports whether s can travel in a comma-joined topic list:
// non-empty, at most MaxTopicLength characters, no commas and no control
// characters.
func ValidTopic(s string) bool {
	if s == "" || utf8.RuneCountInString(s) > MaxTopicLength || strings.ContainsRune(s, ',') {
		return false
	}
	return strings.IndexFunc(s, unicode.IsControl) < 0
}

// FilterRequest is the normalized /data query.
type FilterRequest struct {
	Score  float64
	Topics []string
	Time   float64
	Type   string
}

// FilterResult is what /data returns: a status line and the matching items.
type FilterResult struct {
	Status string
	Items  []*Elearning
}

// ElearningQuery is the storage-level filter. Zero values disable a clause,
// except MaxLevel which only applies when LimitLevel is set. MaxLevel is
// inclusive.
type ElearningQuery struct {
	Type       string
	Topics     []string
	MaxTime    float64
	LimitLevel bool
	MaxLevel   int
}

// ElearningRepository is the catalog port. Save inserts an entry without an
// ID and updates the one with the given ID otherwise; Save and SetStatus
// return a NOT_FOUND DomainError for an unknown ID.
type ElearningRepository interface {
	Find(ctx context.Context, q ElearningQuery) ([]*Elearning, error)
	ListActive(ctx context.Context) ([]*Elearning, error)
	ListAll(ctx context.Context) ([]*Elearning, error)
	ReplaceAll(ctx context.Context, items []*Elearning) error
	Save(ctx context.Context, item *Elearning) error
	SetStatus(ctx context.Context, id, status string) error
}

// QuestionRepository is the quiz bank port. GetByPosition returns nil, nil
// when no question exists at that position.
type QuestionRepository interface {
	GetByPosition(ctx context.Context, position int) (*Question, error)
	Count(ctx context.Context) (int, error)
}
