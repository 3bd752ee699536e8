package model

import (
	"time"

	"github.com/pageturn/pageturn/domain"
)

type Book struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Author        string    `gorm:"type:varchar(255);not null"`
	ISBN          *string   `gorm:"column:isbn;type:varchar(20);uniqueIndex"`
	Description   string    `gorm:"type:text"`
	PublishedYear int       `gorm:"column:published_year"`
	Genre         string    `gorm:"type:varchar(100)"`
	PageCount     int       `gorm:"column:page_count"`
	CreatedAt     time.Time `gorm:"type:datetime"`
	UpdatedAt     time.Time `gorm:"type:datetime"`
}

func (Book) TableName() string {
	return "book"
}

// ISBN is stored as a nullable column so the unique index ignores books
// without one.
func NewBookFromDomain(b *domain.Book) *Book {
	var isbn *string
	if b.ISBN != "" {
		isbn = &b.ISBN
	}
	return &Book{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          isbn,
		Description:   b.Description,
		PublishedYear: b.PublishedYear,
		Genre:         b.Genre,
		PageCount:     b.PageCount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (m *Book) ToDomain() domain.Book {
	var isbn string
	if m.ISBN != nil {
		isbn = *m.ISBN
	}
	return domain.Book{
		ID:            m.ID,
		Title:         m.Title,
		Author:        m.Author,
		ISBN:          isbn,
		Description:   m.Description,
		PublishedYear: m.PublishedYear,
		Genre:         m.Genre,
		PageCount:     m.PageCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
