package mysql

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/pageturn/pageturn/domain"
	"github.com/pageturn/pageturn/internal/repository"
	"github.com/pageturn/pageturn/internal/repository/mysql/model"
)

type reviewRepository struct {
	DB *gorm.DB
}

var _ domain.ReviewRepository = (*reviewRepository)(nil)

func NewReviewRepository(db *gorm.DB) *reviewRepository {
	return &reviewRepository{db}
}

func (m *reviewRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Review, error) {
	var reviews []model.Review
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	err = m.DB.WithContext(ctx).
		Where("created_at > ?", decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&reviews).
		Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Review, 0, len(reviews))
	for _, review := range reviews {
		res = append(res, review.ToDomain())
	}
	return res, nil
}

func (m *reviewRepository) GetByID(ctx context.Context, id int64) (res domain.Review, err error) {
	var review model.Review
	err = m.DB.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, domain.NewNotFoundError("review", id)
		}
		return res, err
	}
	res = review.ToDomain()
	return
}

func (m *reviewRepository) FetchByBook(ctx context.Context, bookID int64) ([]domain.Review, error) {
	return m.fetchWhere(ctx, "book_id = ?", bookID)
}

func (m *reviewRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	return m.fetchWhere(ctx, "user_id = ?", userID)
}

func (m *reviewRepository) FetchByRating(ctx context.Context, rating int) ([]domain.Review, error) {
	return m.fetchWhere(ctx, "rating = ?", rating)
}

func (m *reviewRepository) fetchWhere(ctx context.Context, query string, arg any) ([]domain.Review, error) {
	var reviews []model.Review
	err := m.DB.WithContext(ctx).
		Where(query, arg).
		Order("created_at").
		Find(&reviews).
		Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Review, 0, len(reviews))
	for _, review := range reviews {
		res = append(res, review.ToDomain())
	}
	return res, nil
}

// Aggregate recomputes the average and count from the live review rows in a
// single statement so the result is a consistent snapshot.
func (m *reviewRepository) Aggregate(ctx context.Context, bookID int64) (domain.RatingSummary, error) {
	var row struct {
		Average sql.NullFloat64
		Count   int64
	}
	err := m.DB.WithContext(ctx).
		Model(&model.Review{}).
		Select("AVG(rating) AS average, COUNT(*) AS count").
		Where("book_id = ?", bookID).
		Scan(&row).
		Error
	if err != nil {
		return domain.RatingSummary{}, err
	}

	summary := domain.RatingSummary{BookID: bookID, Count: row.Count}
	if row.Average.Valid {
		summary.Average = &row.Average.Float64
	}
	return summary, nil
}

func (m *reviewRepository) Store(ctx context.Context, r *domain.Review) error {
	reviewModel := model.NewReviewFromDomain(r)
	result := m.DB.WithContext(ctx).Create(reviewModel)
	if result.Error != nil {
		return result.Error
	}
	r.ID = reviewModel.ID
	r.CreatedAt = reviewModel.CreatedAt
	r.UpdatedAt = reviewModel.UpdatedAt
	return nil
}

// Update touches only the mutable review fields.
func (m *reviewRepository) Update(ctx context.Context, r *domain.Review) error {
	result := m.DB.WithContext(ctx).Model(&model.Review{ID: r.ID}).Updates(map[string]any{
		"rating":        r.Rating,
		"comment":       r.Comment,
		"reviewer_name": r.ReviewerName,
	})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (m *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("review", id)
	}
	return nil
}
