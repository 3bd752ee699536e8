package response

import (
	"github.com/pageturn/pageturn/domain"
)

// DateTimeFormat is the wire format of every timestamp field.
const DateTimeFormat = "2006-01-02 15:04:05"

type Book struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Author        string         `json:"author"`
	ISBN          string         `json:"isbn,omitempty"`
	Description   string         `json:"description"`
	PublishedYear int            `json:"published_year"`
	Genre         string         `json:"genre"`
	PageCount     int            `json:"page_count"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
	Rating        *RatingSummary `json:"rating,omitempty"`
}

type RatingSummary struct {
	AverageRating *float64 `json:"average_rating"`
	ReviewCount   int64    `json:"review_count"`
}

// NewBookFromDomain: Domain -> Response
func NewBookFromDomain(b *domain.Book) Book {
	res := Book{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		Description:   b.Description,
		PublishedYear: b.PublishedYear,
		Genre:         b.Genre,
		PageCount:     b.PageCount,
		CreatedAt:     b.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:     b.UpdatedAt.Format(DateTimeFormat),
	}
	if b.Rating != nil {
		res.Rating = NewRatingSummaryFromDomain(b.Rating)
	}
	return res
}

func NewRatingSummaryFromDomain(s *domain.RatingSummary) *RatingSummary {
	return &RatingSummary{
		AverageRating: s.Average,
		ReviewCount:   s.Count,
	}
}
