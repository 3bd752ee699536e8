package model

import (
	"time"

	"github.com/pageturn/pageturn/domain"
)

type Comment struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	ReviewID        int64     `gorm:"column:review_id;not null;index"`
	UserID          int64     `gorm:"column:user_id;not null;index"`
	Content         string    `gorm:"type:varchar(1000);not null"`
	CommenterName   string    `gorm:"column:commenter_name;type:varchar(255)"`
	ParentCommentID *int64    `gorm:"column:parent_comment_id;index"`
	CreatedAt       time.Time `gorm:"type:datetime"`
	UpdatedAt       time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:              c.ID,
		ReviewID:        c.ReviewID,
		UserID:          c.UserID,
		Content:         c.Content,
		CommenterName:   c.CommenterName,
		ParentCommentID: c.ParentCommentID,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:              m.ID,
		ReviewID:        m.ReviewID,
		UserID:          m.UserID,
		Content:         m.Content,
		CommenterName:   m.CommenterName,
		ParentCommentID: m.ParentCommentID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
