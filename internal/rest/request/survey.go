package request

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pageturn/pageturn/domain"
)

type Survey struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description" binding:"omitempty,max=1000"`
	CreatorID    int64      `json:"creator_id" binding:"required"`
	CreatorName  string     `json:"creator_name"`
	Status       string     `json:"status" binding:"omitempty,surveystatus"`
	BookID       *int64     `json:"book_id"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	MaxResponses *int64     `json:"max_responses" binding:"omitempty,gte=0"`
}

// ToDomain: Request -> Domain
func (r *Survey) ToDomain() domain.Survey {
	return domain.Survey{
		Title:        r.Title,
		Description:  r.Description,
		CreatorID:    r.CreatorID,
		CreatorName:  r.CreatorName,
		Status:       domain.SurveyStatus(r.Status),
		BookID:       r.BookID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		MaxResponses: r.MaxResponses,
	}
}

// SurveyStatusUpdate is the body of the status transition endpoint.
type SurveyStatusUpdate struct {
	Status string `json:"status" binding:"required,surveystatus"`
}

// RegisterValidations wires the custom binding validations onto gin's
// validator engine. Call once during startup.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("surveystatus", func(fl validator.FieldLevel) bool {
			return domain.SurveyStatus(fl.Field().String()).IsValid()
		})
	}
}
