package domain

import (
	"context"
	"time"
)

// MaxCommentLength bounds the content of a single comment.
const MaxCommentLength = 1000

// Comment domain model. A nil ParentCommentID means a top-level comment,
// otherwise the comment is a reply to another comment on the same review.
type Comment struct {
	ID              int64     `json:"id"`
	ReviewID        int64     `json:"review_id"`
	UserID          int64     `json:"user_id"`
	Content         string    `json:"content"`
	CommenterName   string    `json:"commenter_name"`
	ParentCommentID *int64    `json:"parent_comment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsReply reports whether the comment has a parent.
func (c Comment) IsReply() bool {
	return c.ParentCommentID != nil
}

// CommentRepository defines the contract for comment data persistence
type CommentRepository interface {
	Fetch(ctx context.Context) ([]Comment, error)

	// GetByID returns a NotFoundError if the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (Comment, error)

	// FetchByReview retrieves every comment attached to a review,
	// top-level and replies alike, in creation order.
	FetchByReview(ctx context.Context, reviewID int64) ([]Comment, error)

	// FetchByUser retrieves every comment written by one user.
	FetchByUser(ctx context.Context, userID int64) ([]Comment, error)

	// FetchTopLevel retrieves comments without a parent, in creation order.
	// reviewID narrows the result to one review when non-nil.
	FetchTopLevel(ctx context.Context, reviewID *int64) ([]Comment, error)

	// FetchReplies retrieves the immediate children of a comment, one level only.
	FetchReplies(ctx context.Context, parentID int64) ([]Comment, error)

	// CountByReview counts all comments of a review, replies included.
	CountByReview(ctx context.Context, reviewID int64) (int64, error)

	Store(ctx context.Context, c *Comment) error

	// Update modifies an existing comment. A missing row is a no-op;
	// callers resolve existence with GetByID first.
	Update(ctx context.Context, c *Comment) error

	// Delete returns a NotFoundError if the comment doesn't exist.
	// Replies of the deleted comment are left in place, orphaned.
	Delete(ctx context.Context, id int64) error
}

// CommentUsecase defines the business logic contract for the comment thread,
// including parent/cycle validation on create and update.
type CommentUsecase interface {
	Fetch(ctx context.Context) ([]Comment, error)
	GetByID(ctx context.Context, id int64) (Comment, error)
	FetchByReview(ctx context.Context, reviewID int64) ([]Comment, error)
	FetchByUser(ctx context.Context, userID int64) ([]Comment, error)
	FetchTopLevel(ctx context.Context, reviewID *int64) ([]Comment, error)
	FetchReplies(ctx context.Context, parentID int64) ([]Comment, error)
	CountByReview(ctx context.Context, reviewID int64) (int64, error)
	Store(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
}
