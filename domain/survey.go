package domain

import (
	"context"
	"time"
)

// SurveyStatus is the explicit lifecycle state of a survey.
type SurveyStatus string

const (
	SurveyStatusDraft  SurveyStatus = "DRAFT"
	SurveyStatusActive SurveyStatus = "ACTIVE"
	SurveyStatusClosed SurveyStatus = "CLOSED"
	SurveyStatusPaused SurveyStatus = "PAUSED"
)

// IsValid reports whether the status is one of the known enum values.
func (s SurveyStatus) IsValid() bool {
	switch s {
	case SurveyStatusDraft, SurveyStatusActive, SurveyStatusClosed, SurveyStatusPaused:
		return true
	}
	return false
}

// Survey is a capacity-bound questionnaire, optionally tied to a book.
type Survey struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	CreatorID     int64        `json:"creator_id"`
	CreatorName   string       `json:"creator_name"`
	Status        SurveyStatus `json:"status"`
	BookID        *int64       `json:"book_id,omitempty"`
	StartDate     *time.Time   `json:"start_date,omitempty"`
	EndDate       *time.Time   `json:"end_date,omitempty"`
	MaxResponses  *int64       `json:"max_responses,omitempty"`
	ResponseCount int64        `json:"response_count"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// IsAvailable reports whether the survey accepts responses: it must be
// ACTIVE and under its response ceiling when one is set. Derived per call,
// never stored.
func (s Survey) IsAvailable() bool {
	if s.Status != SurveyStatusActive {
		return false
	}
	return s.MaxResponses == nil || s.ResponseCount < *s.MaxResponses
}

// IsCurrentlyActive reports whether the survey is ACTIVE and now lies
// strictly inside its start/end window. Both bounds are exclusive.
func (s Survey) IsCurrentlyActive(now time.Time) bool {
	if s.Status != SurveyStatusActive {
		return false
	}
	if s.StartDate == nil || s.EndDate == nil {
		return false
	}
	return s.StartDate.Before(now) && s.EndDate.After(now)
}

// SurveyRepository defines the contract for survey data persistence
type SurveyRepository interface {
	Fetch(ctx context.Context) ([]Survey, error)

	// GetByID returns a NotFoundError if the survey doesn't exist.
	GetByID(ctx context.Context, id int64) (Survey, error)

	FetchByStatus(ctx context.Context, status SurveyStatus) ([]Survey, error)
	FetchByCreator(ctx context.Context, creatorID int64) ([]Survey, error)
	FetchByBook(ctx context.Context, bookID int64) ([]Survey, error)
	SearchByTitle(ctx context.Context, title string) ([]Survey, error)
	CountByStatus(ctx context.Context, status SurveyStatus) (int64, error)

	// FetchAvailable retrieves surveys with the given status that are still
	// under their response ceiling, or have none.
	FetchAvailable(ctx context.Context, status SurveyStatus) ([]Survey, error)

	// FetchActiveWithin retrieves surveys with the given status whose
	// start/end window strictly contains now.
	FetchActiveWithin(ctx context.Context, status SurveyStatus, now time.Time) ([]Survey, error)

	Store(ctx context.Context, s *Survey) error

	// Update modifies an existing survey, never its response_count.
	// A missing row is a no-op; callers resolve existence with GetByID first.
	Update(ctx context.Context, s *Survey) error

	// UpdateStatus changes only the status column. A missing row is a
	// no-op; callers resolve existence with GetByID first.
	UpdateStatus(ctx context.Context, id int64, status SurveyStatus) error

	// IncrementResponseCount adds exactly one response as a single atomic
	// check-and-increment: it must fail with ErrCapacityExceeded when the
	// ceiling is already reached and never push the counter above it,
	// regardless of concurrent callers.
	IncrementResponseCount(ctx context.Context, id int64) error

	// Delete returns a NotFoundError if the survey doesn't exist.
	Delete(ctx context.Context, id int64) error
}

// SurveyUsecase owns the survey lifecycle: status transitions, capacity
// enforcement and the derived availability views.
type SurveyUsecase interface {
	Fetch(ctx context.Context) ([]Survey, error)
	GetByID(ctx context.Context, id int64) (Survey, error)
	FetchByStatus(ctx context.Context, status SurveyStatus) ([]Survey, error)
	FetchByCreator(ctx context.Context, creatorID int64) ([]Survey, error)
	FetchByBook(ctx context.Context, bookID int64) ([]Survey, error)
	SearchByTitle(ctx context.Context, title string) ([]Survey, error)
	CountByStatus(ctx context.Context, status SurveyStatus) (int64, error)
	FetchAvailable(ctx context.Context) ([]Survey, error)
	FetchCurrentlyActive(ctx context.Context, now time.Time) ([]Survey, error)
	Store(ctx context.Context, s *Survey) error
	Update(ctx context.Context, s *Survey) error
	Transition(ctx context.Context, id int64, status SurveyStatus) (Survey, error)
	RecordResponse(ctx context.Context, id int64) (Survey, error)
	Delete(ctx context.Context, id int64) error
}
