package model

import (
	"time"

	"github.com/pageturn/pageturn/domain"
)

type Review struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	BookID       int64     `gorm:"column:book_id;not null;index"`
	UserID       int64     `gorm:"column:user_id;not null;index"`
	Rating       int       `gorm:"not null"`
	Comment      string    `gorm:"type:text"`
	ReviewerName string    `gorm:"column:reviewer_name;type:varchar(255)"`
	CreatedAt    time.Time `gorm:"type:datetime"`
	UpdatedAt    time.Time `gorm:"type:datetime"`
}

func (Review) TableName() string {
	return "review"
}

func NewReviewFromDomain(r *domain.Review) *Review {
	return &Review{
		ID:           r.ID,
		BookID:       r.BookID,
		UserID:       r.UserID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		ReviewerName: r.ReviewerName,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (m *Review) ToDomain() domain.Review {
	return domain.Review{
		ID:           m.ID,
		BookID:       m.BookID,
		UserID:       m.UserID,
		Rating:       m.Rating,
		Comment:      m.Comment,
		ReviewerName: m.ReviewerName,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
