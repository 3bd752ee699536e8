package model

import (
	"time"

	"github.com/pageturn/pageturn/domain"
)

type Survey struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Description   string     `gorm:"type:varchar(1000)"`
	CreatorID     int64      `gorm:"column:creator_id;not null;index"`
	CreatorName   string     `gorm:"column:creator_name;type:varchar(255)"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	BookID        *int64     `gorm:"column:book_id;index"`
	StartDate     *time.Time `gorm:"column:start_date;type:datetime"`
	EndDate       *time.Time `gorm:"column:end_date;type:datetime"`
	MaxResponses  *int64     `gorm:"column:max_responses"`
	ResponseCount int64      `gorm:"column:response_count;not null;default:0"`
	CreatedAt     time.Time  `gorm:"type:datetime"`
	UpdatedAt     time.Time  `gorm:"type:datetime"`
}

func (Survey) TableName() string {
	return "survey"
}

func NewSurveyFromDomain(s *domain.Survey) *Survey {
	return &Survey{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		CreatorID:     s.CreatorID,
		CreatorName:   s.CreatorName,
		Status:        string(s.Status),
		BookID:        s.BookID,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		MaxResponses:  s.MaxResponses,
		ResponseCount: s.ResponseCount,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *Survey) ToDomain() domain.Survey {
	return domain.Survey{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		CreatorID:     m.CreatorID,
		CreatorName:   m.CreatorName,
		Status:        domain.SurveyStatus(m.Status),
		BookID:        m.BookID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		MaxResponses:  m.MaxResponses,
		ResponseCount: m.ResponseCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
