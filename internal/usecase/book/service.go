package book

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pageturn/pageturn/domain"
	"github.com/pageturn/pageturn/internal/repository"
)

type Service struct {
	bookRepo   domain.BookRepository
	reviewRepo domain.ReviewRepository
}

var _ domain.BookUsecase = (*Service)(nil)

// NewService will create a new book service object
func NewService(b domain.BookRepository, r domain.ReviewRepository) *Service {
	return &Service{
		bookRepo:   b,
		reviewRepo: r,
	}
}

// fillRatingSummaries recomputes and attaches the review aggregate of every
// book in the slice, fanning the per-book aggregation out over goroutines.
func (s *Service) fillRatingSummaries(ctx context.Context, books []domain.Book) error {
	g, ctx := errgroup.WithContext(ctx)

	for i := range books {
		g.Go(func() error {
			summary, err := s.reviewRepo.Aggregate(ctx, books[i].ID)
			if err != nil {
				return err
			}
			books[i].Rating = &summary
			return nil
		})
	}

	return g.Wait()
}

func (s *Service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Book, string, error) {
	res, err := s.bookRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []domain.Book{}, "", nil
	}

	if err := s.fillRatingSummaries(ctx, res); err != nil {
		logrus.Warnf("failed to fill rating summaries: %v", err)
	}

	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Book, error) {
	res, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}

	summary, err := s.reviewRepo.Aggregate(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}
	res.Rating = &summary
	return res, nil
}

func (s *Service) GetByISBN(ctx context.Context, isbn string) (domain.Book, error) {
	return s.bookRepo.GetByISBN(ctx, isbn)
}

func (s *Service) SearchByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	return s.bookRepo.SearchByTitle(ctx, title)
}

func (s *Service) SearchByAuthor(ctx context.Context, author string) ([]domain.Book, error) {
	return s.bookRepo.SearchByAuthor(ctx, author)
}

func (s *Service) FetchByGenre(ctx context.Context, genre string) ([]domain.Book, error) {
	return s.bookRepo.FetchByGenre(ctx, genre)
}

// Store creates a book, rejecting a duplicate ISBN with ErrConflict.
func (s *Service) Store(ctx context.Context, b *domain.Book) error {
	if b.ISBN != "" {
		existing, err := s.bookRepo.GetByISBN(ctx, b.ISBN)
		if err == nil && existing.ID != 0 {
			return domain.ErrConflict
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}
	return s.bookRepo.Store(ctx, b)
}

func (s *Service) Update(ctx context.Context, b *domain.Book) error {
	existing, err := s.bookRepo.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}

	if b.ISBN != "" && b.ISBN != existing.ISBN {
		other, err := s.bookRepo.GetByISBN(ctx, b.ISBN)
		if err == nil && other.ID != b.ID {
			return domain.ErrConflict
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}

	return s.bookRepo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.bookRepo.Delete(ctx, id)
}
