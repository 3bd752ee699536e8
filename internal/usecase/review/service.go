package review

import (
	"context"

	"github.com/pageturn/pageturn/domain"
	"github.com/pageturn/pageturn/internal/repository"
)

type Service struct {
	reviewRepo domain.ReviewRepository
}

var _ domain.ReviewUsecase = (*Service)(nil)

// NewService will create a new review service object
func NewService(r domain.ReviewRepository) *Service {
	return &Service{reviewRepo: r}
}

func (s *Service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Review, string, error) {
	res, err := s.reviewRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []domain.Review{}, "", nil
	}
	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

func (s *Service) FetchByBook(ctx context.Context, bookID int64) ([]domain.Review, error) {
	return s.reviewRepo.FetchByBook(ctx, bookID)
}

func (s *Service) FetchByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	return s.reviewRepo.FetchByUser(ctx, userID)
}

func (s *Service) FetchByRating(ctx context.Context, rating int) ([]domain.Review, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	return s.reviewRepo.FetchByRating(ctx, rating)
}

// RatingSummary recomputes the aggregate from the current review rows on
// every call. A book without reviews yields a nil average and a zero count,
// never an error.
func (s *Service) RatingSummary(ctx context.Context, bookID int64) (domain.RatingSummary, error) {
	return s.reviewRepo.Aggregate(ctx, bookID)
}

func (s *Service) Store(ctx context.Context, r *domain.Review) error {
	if err := validateRating(r.Rating); err != nil {
		return err
	}
	return s.reviewRepo.Store(ctx, r)
}

// Update modifies rating, comment and reviewer name; book and user
// references are immutable after creation.
func (s *Service) Update(ctx context.Context, r *domain.Review) error {
	if err := validateRating(r.Rating); err != nil {
		return err
	}

	existing, err := s.reviewRepo.GetByID(ctx, r.ID)
	if err != nil {
		return err
	}
	r.BookID = existing.BookID
	r.UserID = existing.UserID

	return s.reviewRepo.Update(ctx, r)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.reviewRepo.Delete(ctx, id)
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return domain.ErrBadParamInput
	}
	return nil
}
