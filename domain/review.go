package domain

import (
	"context"
	"time"
)

// Review is representing a user's review of a book
type Review struct {
	ID           int64     `json:"id"`
	BookID       int64     `json:"book_id"`
	UserID       int64     `json:"user_id"`
	Rating       int       `json:"rating"` // 1..5 inclusive
	Comment      string    `json:"comment"`
	ReviewerName string    `json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RatingSummary is the recomputed-on-demand aggregate over a book's reviews.
// Average is nil when the book has no reviews; it is never reported as zero.
type RatingSummary struct {
	BookID  int64    `json:"book_id"`
	Average *float64 `json:"average_rating"`
	Count   int64    `json:"review_count"`
}

// ReviewRepository defines the contract for review data persistence
type ReviewRepository interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Review, error)

	// GetByID returns a NotFoundError if the review doesn't exist.
	GetByID(ctx context.Context, id int64) (Review, error)

	// FetchByBook retrieves all reviews of one book, oldest first.
	FetchByBook(ctx context.Context, bookID int64) ([]Review, error)

	// FetchByUser retrieves all reviews written by one user.
	FetchByUser(ctx context.Context, userID int64) ([]Review, error)

	// FetchByRating retrieves all reviews carrying the exact rating value.
	FetchByRating(ctx context.Context, rating int) ([]Review, error)

	// Aggregate recomputes the average rating and review count of a book
	// from the current review rows in a single statement.
	Aggregate(ctx context.Context, bookID int64) (RatingSummary, error)

	Store(ctx context.Context, r *Review) error

	// Update modifies rating, comment and reviewer name only.
	// A missing row is a no-op; callers resolve existence with GetByID first.
	Update(ctx context.Context, r *Review) error

	// Delete returns a NotFoundError if the review doesn't exist.
	Delete(ctx context.Context, id int64) error
}

// ReviewUsecase defines the business logic contract for review operations,
// including the rating aggregation over a book's review set.
type ReviewUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Review, string, error)
	GetByID(ctx context.Context, id int64) (Review, error)
	FetchByBook(ctx context.Context, bookID int64) ([]Review, error)
	FetchByUser(ctx context.Context, userID int64) ([]Review, error)
	FetchByRating(ctx context.Context, rating int) ([]Review, error)
	RatingSummary(ctx context.Context, bookID int64) (RatingSummary, error)
	Store(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id int64) error
}
