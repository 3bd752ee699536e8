package response

import "github.com/pageturn/pageturn/domain"

type Review struct {
	ID           int64  `json:"id"`
	BookID       int64  `json:"book_id"`
	UserID       int64  `json:"user_id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ReviewerName string `json:"reviewer_name"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// NewReviewFromDomain: Domain -> Response
func NewReviewFromDomain(r *domain.Review) Review {
	return Review{
		ID:           r.ID,
		BookID:       r.BookID,
		UserID:       r.UserID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		ReviewerName: r.ReviewerName,
		CreatedAt:    r.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:    r.UpdatedAt.Format(DateTimeFormat),
	}
}

func NewReviewsFromDomain(reviews []domain.Review) []Review {
	res := make([]Review, len(reviews))
	for i := range reviews {
		res[i] = NewReviewFromDomain(&reviews[i])
	}
	return res
}
