package review_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageturn/pageturn/domain"
	ucase "github.com/pageturn/pageturn/internal/usecase/review"
)

// memoryReviewRepo keeps review rows in memory and recomputes the aggregate
// from them, so the aggregate semantics can be checked end to end.
type memoryReviewRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Review
}

func newMemoryReviewRepo() *memoryReviewRepo {
	return &memoryReviewRepo{rows: map[int64]domain.Review{}}
}

func (m *memoryReviewRepo) Fetch(_ context.Context, _ string, _ int64) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]domain.Review, 0, len(m.rows))
	for _, r := range m.rows {
		res = append(res, r)
	}
	return res, nil
}

func (m *memoryReviewRepo) GetByID(_ context.Context, id int64) (domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return domain.Review{}, domain.NewNotFoundError("review", id)
	}
	return r, nil
}

func (m *memoryReviewRepo) FetchByBook(_ context.Context, bookID int64) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Review
	for _, r := range m.rows {
		if r.BookID == bookID {
			res = append(res, r)
		}
	}
	return res, nil
}

func (m *memoryReviewRepo) FetchByUser(_ context.Context, userID int64) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Review
	for _, r := range m.rows {
		if r.UserID == userID {
			res = append(res, r)
		}
	}
	return res, nil
}

func (m *memoryReviewRepo) FetchByRating(_ context.Context, rating int) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Review
	for _, r := range m.rows {
		if r.Rating == rating {
			res = append(res, r)
		}
	}
	return res, nil
}

func (m *memoryReviewRepo) Aggregate(_ context.Context, bookID int64) (domain.RatingSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sum, count int64
	for _, r := range m.rows {
		if r.BookID == bookID {
			sum += int64(r.Rating)
			count++
		}
	}
	summary := domain.RatingSummary{BookID: bookID, Count: count}
	if count > 0 {
		avg := float64(sum) / float64(count)
		summary.Average = &avg
	}
	return summary, nil
}

func (m *memoryReviewRepo) Store(_ context.Context, r *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	m.rows[r.ID] = *r
	return nil
}

func (m *memoryReviewRepo) Update(_ context.Context, r *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.rows[r.ID]
	if !ok {
		return domain.NewNotFoundError("review", r.ID)
	}
	existing.Rating = r.Rating
	existing.Comment = r.Comment
	existing.ReviewerName = r.ReviewerName
	m.rows[r.ID] = existing
	return nil
}

func (m *memoryReviewRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return domain.NewNotFoundError("review", id)
	}
	delete(m.rows, id)
	return nil
}

func TestRatingSummaryTracksLiveReviews(t *testing.T) {
	repo := newMemoryReviewRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	first := domain.Review{BookID: 1, UserID: 10, Rating: 5}
	second := domain.Review{BookID: 1, UserID: 11, Rating: 3}
	require.NoError(t, svc.Store(ctx, &first))
	require.NoError(t, svc.Store(ctx, &second))

	summary, err := svc.RatingSummary(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, summary.Average)
	assert.Equal(t, 4.0, *summary.Average)
	assert.Equal(t, int64(2), summary.Count)

	// Deleting the 5 pulls the mean down to the remaining row.
	require.NoError(t, svc.Delete(ctx, first.ID))
	summary, err = svc.RatingSummary(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, summary.Average)
	assert.Equal(t, 3.0, *summary.Average)
	assert.Equal(t, int64(1), summary.Count)

	// No reviews left: nil average, never zero.
	require.NoError(t, svc.Delete(ctx, second.ID))
	summary, err = svc.RatingSummary(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, summary.Average)
	assert.Equal(t, int64(0), summary.Count)
}

func TestRatingSummaryScopedToBook(t *testing.T) {
	repo := newMemoryReviewRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	for _, r := range []domain.Review{
		{BookID: 1, UserID: 1, Rating: 2},
		{BookID: 1, UserID: 2, Rating: 4},
		{BookID: 2, UserID: 3, Rating: 5},
	} {
		review := r
		require.NoError(t, svc.Store(ctx, &review))
	}

	summary, err := svc.RatingSummary(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, summary.Average)
	assert.Equal(t, 3.0, *summary.Average)
	assert.Equal(t, int64(2), summary.Count)
}

func TestStoreRejectsOutOfRangeRating(t *testing.T) {
	repo := newMemoryReviewRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		err := svc.Store(ctx, &domain.Review{BookID: 1, UserID: 1, Rating: rating})
		assert.ErrorIs(t, err, domain.ErrBadParamInput, "rating %d", rating)
	}
}

func TestUpdateKeepsBookAndUserImmutable(t *testing.T) {
	repo := newMemoryReviewRepo()
	svc := ucase.NewService(repo)
	ctx := context.Background()

	review := domain.Review{BookID: 1, UserID: 10, Rating: 4, Comment: "solid"}
	require.NoError(t, svc.Store(ctx, &review))

	update := domain.Review{ID: review.ID, BookID: 99, UserID: 99, Rating: 2, Comment: "changed my mind"}
	require.NoError(t, svc.Update(ctx, &update))

	got, err := svc.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.BookID)
	assert.Equal(t, int64(10), got.UserID)
	assert.Equal(t, 2, got.Rating)
	assert.Equal(t, "changed my mind", got.Comment)
}

func TestUpdateMissingReviewPropagatesNotFound(t *testing.T) {
	repo := newMemoryReviewRepo()
	svc := ucase.NewService(repo)

	err := svc.Update(context.Background(), &domain.Review{ID: 77, Rating: 3})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "review", nf.Kind)
	assert.Equal(t, int64(77), nf.ID)
}

func TestDeleteMissingReviewPropagatesNotFound(t *testing.T) {
	repo := newMemoryReviewRepo()
	svc := ucase.NewService(repo)

	err := svc.Delete(context.Background(), 123)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// mockReviewRepo is used where only call delegation matters.
type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Review, error) {
	args := m.Called(ctx, cursor, num)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *mockReviewRepo) FetchByBook(ctx context.Context, bookID int64) ([]domain.Review, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) FetchByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) FetchByRating(ctx context.Context, rating int) ([]domain.Review, error) {
	args := m.Called(ctx, rating)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) Aggregate(ctx context.Context, bookID int64) (domain.RatingSummary, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).(domain.RatingSummary), args.Error(1)
}

func (m *mockReviewRepo) Store(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockReviewRepo) Update(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestFetchByRatingValidatesRange(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := ucase.NewService(repo)

	_, err := svc.FetchByRating(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	repo.AssertNotCalled(t, "FetchByRating")
}

func TestFetchByRatingDelegates(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := ucase.NewService(repo)
	ctx := context.Background()

	expected := []domain.Review{{ID: 1, BookID: 2, Rating: 5}}
	repo.On("FetchByRating", ctx, 5).Return(expected, nil)

	got, err := svc.FetchByRating(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
	repo.AssertExpectations(t)
}
