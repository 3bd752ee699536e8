package response

import "github.com/pageturn/pageturn/domain"

type Survey struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	CreatorID     int64   `json:"creator_id"`
	CreatorName   string  `json:"creator_name"`
	Status        string  `json:"status"`
	BookID        *int64  `json:"book_id,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	MaxResponses  *int64  `json:"max_responses,omitempty"`
	ResponseCount int64   `json:"response_count"`
	Available     bool    `json:"available"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// NewSurveyFromDomain: Domain -> Response
func NewSurveyFromDomain(s *domain.Survey) Survey {
	res := Survey{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		CreatorID:     s.CreatorID,
		CreatorName:   s.CreatorName,
		Status:        string(s.Status),
		BookID:        s.BookID,
		MaxResponses:  s.MaxResponses,
		ResponseCount: s.ResponseCount,
		Available:     s.IsAvailable(),
		CreatedAt:     s.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:     s.UpdatedAt.Format(DateTimeFormat),
	}
	if s.StartDate != nil {
		start := s.StartDate.Format(DateTimeFormat)
		res.StartDate = &start
	}
	if s.EndDate != nil {
		end := s.EndDate.Format(DateTimeFormat)
		res.EndDate = &end
	}
	return res
}

func NewSurveysFromDomain(surveys []domain.Survey) []Survey {
	res := make([]Survey, len(surveys))
	for i := range surveys {
		res[i] = NewSurveyFromDomain(&surveys[i])
	}
	return res
}
