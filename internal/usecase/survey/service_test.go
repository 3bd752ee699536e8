package survey_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageturn/pageturn/domain"
	ucase "github.com/pageturn/pageturn/internal/usecase/survey"
)

// memorySurveyRepo implements the store contract, including the atomic
// check-and-increment, under a mutex.
type memorySurveyRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Survey
}

func newMemorySurveyRepo() *memorySurveyRepo {
	return &memorySurveyRepo{rows: map[int64]domain.Survey{}}
}

func (m *memorySurveyRepo) Fetch(_ context.Context) ([]domain.Survey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]domain.Survey, 0, len(m.rows))
	for _, s := range m.rows {
		res = append(res, s)
	}
	return res, nil
}

func (m *memorySurveyRepo) GetByID(_ context.Context, id int64) (domain.Survey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return domain.Survey{}, domain.NewNotFoundError("survey", id)
	}
	return s, nil
}

func (m *memorySurveyRepo) FetchByStatus(_ context.Context, status domain.SurveyStatus) ([]domain.Survey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Survey
	for _, s := range m.rows {
		if s.Status == status {
			res = append(res, s)
		}
	}
	return res, nil
}

func (m *memorySurveyRepo) FetchByCreator(_ context.Context, creatorID int64) ([]domain.Survey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Survey
	for _, s := range m.rows {
		if s.CreatorID == creatorID {
			res = append(res, s)
		}
	}
	return res, nil
}

func (m *memorySurveyRepo) FetchByBook(_ context.Context, bookID int64) ([]domain.Survey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Survey
	for _, s := range m.rows {
		if s.BookID != nil && *s.BookID == bookID {
			res = append(res, s)
		}
	}
	return res, nil
}

func (m *memorySurveyRepo) SearchByTitle(_ context.Context, _ string) ([]domain.Survey, error) {
	return nil, nil
}

func (m *memorySurveyRepo) CountByStatus(_ context.Context, status domain.SurveyStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, s := range m.rows {
		if s.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *memorySurveyRepo) FetchAvailable(_ context.Context, status domain.SurveyStatus) ([]domain.Survey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Survey
	for _, s := range m.rows {
		if s.Status == status && (s.MaxResponses == nil || s.ResponseCount < *s.MaxResponses) {
			res = append(res, s)
		}
	}
	return res, nil
}

func (m *memorySurveyRepo) FetchActiveWithin(_ context.Context, status domain.SurveyStatus, now time.Time) ([]domain.Survey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Survey
	for _, s := range m.rows {
		if s.Status != status || s.StartDate == nil || s.EndDate == nil {
			continue
		}
		if s.StartDate.Before(now) && s.EndDate.After(now) {
			res = append(res, s)
		}
	}
	return res, nil
}

func (m *memorySurveyRepo) Store(_ context.Context, s *domain.Survey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = m.nextID
	m.rows[s.ID] = *s
	return nil
}

func (m *memorySurveyRepo) Update(_ context.Context, s *domain.Survey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.rows[s.ID]
	if !ok {
		return domain.NewNotFoundError("survey", s.ID)
	}
	count := existing.ResponseCount
	existing = *s
	existing.ResponseCount = count
	m.rows[s.ID] = existing
	return nil
}

func (m *memorySurveyRepo) UpdateStatus(_ context.Context, id int64, status domain.SurveyStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return domain.NewNotFoundError("survey", id)
	}
	s.Status = status
	m.rows[id] = s
	return nil
}

func (m *memorySurveyRepo) IncrementResponseCount(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return domain.NewNotFoundError("survey", id)
	}
	if s.MaxResponses != nil && s.ResponseCount >= *s.MaxResponses {
		return domain.ErrCapacityExceeded
	}
	s.ResponseCount++
	m.rows[id] = s
	return nil
}

func (m *memorySurveyRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return domain.NewNotFoundError("survey", id)
	}
	delete(m.rows, id)
	return nil
}

func int64Ptr(v int64) *int64 { return &v }

func TestStoreDefaultsToDraft(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	s := domain.Survey{Title: "reader feedback", CreatorID: 1}
	require.NoError(t, svc.Store(ctx, &s))

	got, err := svc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SurveyStatusDraft, got.Status)
	assert.Equal(t, int64(0), got.ResponseCount)
}

func TestStoreRejectsUnknownStatus(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)

	err := svc.Store(context.Background(), &domain.Survey{
		Title:     "bad status",
		CreatorID: 1,
		Status:    domain.SurveyStatus("ARCHIVED"),
	})

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestTransitionMovesBetweenAnyStates(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	s := domain.Survey{Title: "lifecycle", CreatorID: 1, Status: domain.SurveyStatusClosed}
	require.NoError(t, svc.Store(ctx, &s))

	// No transition table restricts moves, CLOSED -> DRAFT included.
	got, err := svc.Transition(ctx, s.ID, domain.SurveyStatusDraft)
	require.NoError(t, err)
	assert.Equal(t, domain.SurveyStatusDraft, got.Status)

	got, err = svc.Transition(ctx, s.ID, domain.SurveyStatusActive)
	require.NoError(t, err)
	assert.Equal(t, domain.SurveyStatusActive, got.Status)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)

	_, err := svc.Transition(context.Background(), 1, domain.SurveyStatus("GONE"))

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestTransitionMissingSurveyPropagatesNotFound(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)

	_, err := svc.Transition(context.Background(), 404, domain.SurveyStatusActive)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "survey", nf.Kind)
	assert.Equal(t, int64(404), nf.ID)
}

func TestRecordResponseIncrementsByOne(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	s := domain.Survey{
		Title:        "counted",
		CreatorID:    1,
		Status:       domain.SurveyStatusActive,
		MaxResponses: int64Ptr(2),
	}
	require.NoError(t, svc.Store(ctx, &s))

	got, err := svc.RecordResponse(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ResponseCount)

	got, err = svc.RecordResponse(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ResponseCount)
}

func TestRecordResponseAtCapacityFails(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	s := domain.Survey{
		Title:        "full",
		CreatorID:    1,
		Status:       domain.SurveyStatusActive,
		MaxResponses: int64Ptr(2),
	}
	require.NoError(t, svc.Store(ctx, &s))
	_, err := svc.RecordResponse(ctx, s.ID)
	require.NoError(t, err)
	_, err = svc.RecordResponse(ctx, s.ID)
	require.NoError(t, err)

	_, err = svc.RecordResponse(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	got, err := svc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ResponseCount)
}

func TestRecordResponseConcurrentStopsExactlyAtCeiling(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	s := domain.Survey{
		Title:        "hot survey",
		CreatorID:    1,
		Status:       domain.SurveyStatusActive,
		MaxResponses: int64Ptr(10),
	}
	require.NoError(t, svc.Store(ctx, &s))

	const callers = 100
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordResponse(ctx, s.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case assert.ErrorIs(t, err, domain.ErrCapacityExceeded):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, accepted)
	assert.Equal(t, 90, rejected)

	got, err := svc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ResponseCount)
}

func TestRecordResponseMissingSurveyPropagatesNotFound(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)

	_, err := svc.RecordResponse(context.Background(), 42)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "survey", nf.Kind)
	assert.Equal(t, int64(42), nf.ID)
}

func TestFetchAvailableExcludesFullAndInactive(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	open := domain.Survey{Title: "open", CreatorID: 1, Status: domain.SurveyStatusActive, MaxResponses: int64Ptr(5)}
	unbounded := domain.Survey{Title: "unbounded", CreatorID: 1, Status: domain.SurveyStatusActive}
	paused := domain.Survey{Title: "paused", CreatorID: 1, Status: domain.SurveyStatusPaused}
	require.NoError(t, svc.Store(ctx, &open))
	require.NoError(t, svc.Store(ctx, &unbounded))
	require.NoError(t, svc.Store(ctx, &paused))

	full := domain.Survey{Title: "full", CreatorID: 1, Status: domain.SurveyStatusActive, MaxResponses: int64Ptr(1)}
	require.NoError(t, svc.Store(ctx, &full))
	_, err := svc.RecordResponse(ctx, full.ID)
	require.NoError(t, err)

	surveys, err := svc.FetchAvailable(ctx)
	require.NoError(t, err)

	ids := make([]int64, 0, len(surveys))
	for _, s := range surveys {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []int64{open.ID, unbounded.ID}, ids)
}

func TestFetchCurrentlyActiveUsesInjectedInstant(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	running := domain.Survey{
		Title:     "running",
		CreatorID: 1,
		Status:    domain.SurveyStatusActive,
		StartDate: &start,
		EndDate:   &end,
	}
	require.NoError(t, svc.Store(ctx, &running))

	inside, err := svc.FetchCurrentlyActive(ctx, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, inside, 1)

	atStart, err := svc.FetchCurrentlyActive(ctx, start)
	require.NoError(t, err)
	assert.Empty(t, atStart)

	atEnd, err := svc.FetchCurrentlyActive(ctx, end)
	require.NoError(t, err)
	assert.Empty(t, atEnd)
}

func TestUpdateNeverTouchesResponseCount(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	s := domain.Survey{Title: "counter safety", CreatorID: 1, Status: domain.SurveyStatusActive}
	require.NoError(t, svc.Store(ctx, &s))
	_, err := svc.RecordResponse(ctx, s.ID)
	require.NoError(t, err)

	update := s
	update.Title = "renamed"
	update.ResponseCount = 999
	require.NoError(t, svc.Update(ctx, &update))

	got, err := svc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, int64(1), got.ResponseCount)
}

func TestFetchByStatusValidatesEnum(t *testing.T) {
	repo := newMemorySurveyRepo()
	svc := ucase.NewService(repo)

	_, err := svc.FetchByStatus(context.Background(), domain.SurveyStatus("nope"))

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}
