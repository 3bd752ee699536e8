package request

import "github.com/pageturn/pageturn/domain"

type Comment struct {
	ReviewID        int64  `json:"review_id" binding:"required"`
	UserID          int64  `json:"user_id" binding:"required"`
	Content         string `json:"content" binding:"required,max=1000"`
	CommenterName   string `json:"commenter_name"`
	ParentCommentID *int64 `json:"parent_comment_id"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ReviewID:        r.ReviewID,
		UserID:          r.UserID,
		Content:         r.Content,
		CommenterName:   r.CommenterName,
		ParentCommentID: r.ParentCommentID,
	}
}

// CommentUpdate carries the mutable comment fields. A non-nil
// ParentCommentID re-parents the comment, subject to thread validation.
type CommentUpdate struct {
	Content         string `json:"content" binding:"required,max=1000"`
	CommenterName   string `json:"commenter_name"`
	ParentCommentID *int64 `json:"parent_comment_id"`
}

func (r *CommentUpdate) ToDomain(id int64) domain.Comment {
	return domain.Comment{
		ID:              id,
		Content:         r.Content,
		CommenterName:   r.CommenterName,
		ParentCommentID: r.ParentCommentID,
	}
}
