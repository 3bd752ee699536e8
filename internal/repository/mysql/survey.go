package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pageturn/pageturn/domain"
	"github.com/pageturn/pageturn/internal/repository/mysql/model"
)

type surveyRepository struct {
	DB *gorm.DB
}

var _ domain.SurveyRepository = (*surveyRepository)(nil)

func NewSurveyRepository(db *gorm.DB) *surveyRepository {
	return &surveyRepository{db}
}

func (m *surveyRepository) Fetch(ctx context.Context) ([]domain.Survey, error) {
	var surveys []model.Survey
	err := m.DB.WithContext(ctx).
		Order("created_at").
		Find(&surveys).
		Error
	if err != nil {
		return nil, err
	}
	return toDomainSurveys(surveys), nil
}

func (m *surveyRepository) GetByID(ctx context.Context, id int64) (res domain.Survey, err error) {
	var survey model.Survey
	err = m.DB.WithContext(ctx).First(&survey, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, domain.NewNotFoundError("survey", id)
		}
		return res, err
	}
	res = survey.ToDomain()
	return
}

func (m *surveyRepository) FetchByStatus(ctx context.Context, status domain.SurveyStatus) ([]domain.Survey, error) {
	return m.fetchWhere(ctx, "status = ?", string(status))
}

func (m *surveyRepository) FetchByCreator(ctx context.Context, creatorID int64) ([]domain.Survey, error) {
	return m.fetchWhere(ctx, "creator_id = ?", creatorID)
}

func (m *surveyRepository) FetchByBook(ctx context.Context, bookID int64) ([]domain.Survey, error) {
	return m.fetchWhere(ctx, "book_id = ?", bookID)
}

func (m *surveyRepository) SearchByTitle(ctx context.Context, title string) ([]domain.Survey, error) {
	return m.fetchWhere(ctx, "title LIKE ?", "%"+title+"%")
}

func (m *surveyRepository) fetchWhere(ctx context.Context, query string, arg any) ([]domain.Survey, error) {
	var surveys []model.Survey
	err := m.DB.WithContext(ctx).
		Where(query, arg).
		Order("created_at").
		Find(&surveys).
		Error
	if err != nil {
		return nil, err
	}
	return toDomainSurveys(surveys), nil
}

func (m *surveyRepository) CountByStatus(ctx context.Context, status domain.SurveyStatus) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Survey{}).
		Where("status = ?", string(status)).
		Count(&count).
		Error
	return count, err
}

func (m *surveyRepository) FetchAvailable(ctx context.Context, status domain.SurveyStatus) ([]domain.Survey, error) {
	var surveys []model.Survey
	err := m.DB.WithContext(ctx).
		Where("status = ? AND (max_responses IS NULL OR response_count < max_responses)", string(status)).
		Order("created_at").
		Find(&surveys).
		Error
	if err != nil {
		return nil, err
	}
	return toDomainSurveys(surveys), nil
}

// FetchActiveWithin uses strict bounds on both ends of the window.
func (m *surveyRepository) FetchActiveWithin(ctx context.Context, status domain.SurveyStatus, now time.Time) ([]domain.Survey, error) {
	var surveys []model.Survey
	err := m.DB.WithContext(ctx).
		Where("status = ? AND start_date < ? AND end_date > ?", string(status), now, now).
		Order("created_at").
		Find(&surveys).
		Error
	if err != nil {
		return nil, err
	}
	return toDomainSurveys(surveys), nil
}

func (m *surveyRepository) Store(ctx context.Context, s *domain.Survey) error {
	surveyModel := model.NewSurveyFromDomain(s)
	result := m.DB.WithContext(ctx).Create(surveyModel)
	if result.Error != nil {
		return result.Error
	}
	s.ID = surveyModel.ID
	s.CreatedAt = surveyModel.CreatedAt
	s.UpdatedAt = surveyModel.UpdatedAt
	return nil
}

// Update never touches response_count; the counter only moves through
// IncrementResponseCount.
func (m *surveyRepository) Update(ctx context.Context, s *domain.Survey) error {
	surveyModel := model.NewSurveyFromDomain(s)
	result := m.DB.WithContext(ctx).Model(&model.Survey{ID: s.ID}).Updates(map[string]any{
		"title":         surveyModel.Title,
		"description":   surveyModel.Description,
		"creator_name":  surveyModel.CreatorName,
		"status":        surveyModel.Status,
		"book_id":       surveyModel.BookID,
		"start_date":    surveyModel.StartDate,
		"end_date":      surveyModel.EndDate,
		"max_responses": surveyModel.MaxResponses,
	})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (m *surveyRepository) UpdateStatus(ctx context.Context, id int64, status domain.SurveyStatus) error {
	result := m.DB.WithContext(ctx).Model(&model.Survey{ID: id}).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// IncrementResponseCount performs the capacity check and the increment in a
// single conditional UPDATE so concurrent callers can never push the counter
// past max_responses.
func (m *surveyRepository) IncrementResponseCount(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Survey{}).
		Where("id = ? AND (max_responses IS NULL OR response_count < max_responses)", id).
		Update("response_count", gorm.Expr("response_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the survey is missing or it is full.
		if _, err := m.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrCapacityExceeded
	}
	return nil
}

func (m *surveyRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Survey{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("survey", id)
	}
	return nil
}

func toDomainSurveys(surveys []model.Survey) []domain.Survey {
	res := make([]domain.Survey, 0, len(surveys))
	for _, survey := range surveys {
		res = append(res, survey.ToDomain())
	}
	return res
}
