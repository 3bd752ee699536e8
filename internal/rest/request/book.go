package request

import "github.com/pageturn/pageturn/domain"

type Book struct {
	Title         string `json:"title" binding:"required"`
	Author        string `json:"author" binding:"required"`
	ISBN          string `json:"isbn" binding:"omitempty,max=20"`
	Description   string `json:"description"`
	PublishedYear int    `json:"published_year" binding:"omitempty,gte=0"`
	Genre         string `json:"genre"`
	PageCount     int    `json:"page_count" binding:"omitempty,gte=0"`
}

// ToDomain: Request -> Domain
func (r *Book) ToDomain() domain.Book {
	return domain.Book{
		Title:         r.Title,
		Author:        r.Author,
		ISBN:          r.ISBN,
		Description:   r.Description,
		PublishedYear: r.PublishedYear,
		Genre:         r.Genre,
		PageCount:     r.PageCount,
	}
}
