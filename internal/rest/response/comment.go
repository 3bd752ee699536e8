package response

import "github.com/pageturn/pageturn/domain"

type Comment struct {
	ID              int64  `json:"id"`
	ReviewID        int64  `json:"review_id"`
	UserID          int64  `json:"user_id"`
	Content         string `json:"content"`
	CommenterName   string `json:"commenter_name"`
	ParentCommentID *int64 `json:"parent_comment_id,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:              c.ID,
		ReviewID:        c.ReviewID,
		UserID:          c.UserID,
		Content:         c.Content,
		CommenterName:   c.CommenterName,
		ParentCommentID: c.ParentCommentID,
		CreatedAt:       c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:       c.UpdatedAt.Format(DateTimeFormat),
	}
}

func NewCommentsFromDomain(comments []domain.Comment) []Comment {
	res := make([]Comment, len(comments))
	for i := range comments {
		res[i] = NewCommentFromDomain(&comments[i])
	}
	return res
}
