package survey

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pageturn/pageturn/domain"
)

type Service struct {
	surveyRepo domain.SurveyRepository
}

var _ domain.SurveyUsecase = (*Service)(nil)

// NewService will create a new survey service object
func NewService(r domain.SurveyRepository) *Service {
	return &Service{surveyRepo: r}
}

func (s *Service) Fetch(ctx context.Context) ([]domain.Survey, error) {
	return s.surveyRepo.Fetch(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Survey, error) {
	return s.surveyRepo.GetByID(ctx, id)
}

func (s *Service) FetchByStatus(ctx context.Context, status domain.SurveyStatus) ([]domain.Survey, error) {
	if !status.IsValid() {
		return nil, domain.ErrBadParamInput
	}
	return s.surveyRepo.FetchByStatus(ctx, status)
}

func (s *Service) FetchByCreator(ctx context.Context, creatorID int64) ([]domain.Survey, error) {
	return s.surveyRepo.FetchByCreator(ctx, creatorID)
}

func (s *Service) FetchByBook(ctx context.Context, bookID int64) ([]domain.Survey, error) {
	return s.surveyRepo.FetchByBook(ctx, bookID)
}

func (s *Service) SearchByTitle(ctx context.Context, title string) ([]domain.Survey, error) {
	return s.surveyRepo.SearchByTitle(ctx, title)
}

func (s *Service) CountByStatus(ctx context.Context, status domain.SurveyStatus) (int64, error) {
	if !status.IsValid() {
		return 0, domain.ErrBadParamInput
	}
	return s.surveyRepo.CountByStatus(ctx, status)
}

// FetchAvailable lists ACTIVE surveys still accepting responses. The SQL
// filter and the domain predicate agree; the predicate is re-checked so the
// contract holds even if a row moved between the two reads.
func (s *Service) FetchAvailable(ctx context.Context) ([]domain.Survey, error) {
	surveys, err := s.surveyRepo.FetchAvailable(ctx, domain.SurveyStatusActive)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Survey, 0, len(surveys))
	for _, sv := range surveys {
		if sv.IsAvailable() {
			res = append(res, sv)
		}
	}
	return res, nil
}

// FetchCurrentlyActive lists ACTIVE surveys whose window strictly contains
// now. The instant is caller-supplied, never read from ambient clock state.
func (s *Service) FetchCurrentlyActive(ctx context.Context, now time.Time) ([]domain.Survey, error) {
	surveys, err := s.surveyRepo.FetchActiveWithin(ctx, domain.SurveyStatusActive, now)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Survey, 0, len(surveys))
	for _, sv := range surveys {
		if sv.IsCurrentlyActive(now) {
			res = append(res, sv)
		}
	}
	return res, nil
}

// Store creates a survey. An unset status defaults to DRAFT.
func (s *Service) Store(ctx context.Context, sv *domain.Survey) error {
	if sv.Status == "" {
		sv.Status = domain.SurveyStatusDraft
	}
	if !sv.Status.IsValid() {
		return domain.ErrBadParamInput
	}
	if sv.MaxResponses != nil && *sv.MaxResponses < 0 {
		return domain.ErrBadParamInput
	}
	sv.ResponseCount = 0
	return s.surveyRepo.Store(ctx, sv)
}

func (s *Service) Update(ctx context.Context, sv *domain.Survey) error {
	if !sv.Status.IsValid() {
		return domain.ErrBadParamInput
	}

	existing, err := s.surveyRepo.GetByID(ctx, sv.ID)
	if err != nil {
		return err
	}
	// The counter only moves through RecordResponse.
	sv.ResponseCount = existing.ResponseCount
	sv.CreatorID = existing.CreatorID

	return s.surveyRepo.Update(ctx, sv)
}

// Transition moves a survey to the target status. Every move between the
// four states is currently permitted; any future restriction belongs here.
func (s *Service) Transition(ctx context.Context, id int64, status domain.SurveyStatus) (domain.Survey, error) {
	if !status.IsValid() {
		return domain.Survey{}, domain.ErrBadParamInput
	}

	existing, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Survey{}, err
	}

	if err := s.surveyRepo.UpdateStatus(ctx, id, status); err != nil {
		return domain.Survey{}, err
	}

	logrus.Infof("survey %d transitioned %s -> %s", id, existing.Status, status)
	existing.Status = status
	return existing, nil
}

// RecordResponse adds exactly one response. The capacity check and the
// increment happen in one atomic store operation; a full survey fails with
// ErrCapacityExceeded and the counter is never pushed past the ceiling.
func (s *Service) RecordResponse(ctx context.Context, id int64) (domain.Survey, error) {
	if err := s.surveyRepo.IncrementResponseCount(ctx, id); err != nil {
		return domain.Survey{}, err
	}
	return s.surveyRepo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.surveyRepo.Delete(ctx, id)
}
