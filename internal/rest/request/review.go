package request

import "github.com/pageturn/pageturn/domain"

type Review struct {
	BookID       int64  `json:"book_id" binding:"required"`
	UserID       int64  `json:"user_id" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment" binding:"omitempty,max=2000"`
	ReviewerName string `json:"reviewer_name"`
}

// ToDomain: Request -> Domain
func (r *Review) ToDomain() domain.Review {
	return domain.Review{
		BookID:       r.BookID,
		UserID:       r.UserID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		ReviewerName: r.ReviewerName,
	}
}

// ReviewUpdate carries the mutable review fields only.
type ReviewUpdate struct {
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment" binding:"omitempty,max=2000"`
	ReviewerName string `json:"reviewer_name"`
}

func (r *ReviewUpdate) ToDomain(id int64) domain.Review {
	return domain.Review{
		ID:           id,
		Rating:       r.Rating,
		Comment:      r.Comment,
		ReviewerName: r.ReviewerName,
	}
}
