package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pageturn/pageturn/domain"
	"github.com/pageturn/pageturn/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{db}
}

func (c *commentRepository) Fetch(ctx context.Context) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Order("created_at").
		Find(&comments).
		Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (res domain.Comment, err error) {
	var comment model.Comment
	err = c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, domain.NewNotFoundError("comment", id)
		}
		return res, err
	}
	res = comment.ToDomain()
	return
}

func (c *commentRepository) FetchByReview(ctx context.Context, reviewID int64) ([]domain.Comment, error) {
	return c.fetchWhere(ctx, "review_id = ?", reviewID)
}

func (c *commentRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Comment, error) {
	return c.fetchWhere(ctx, "user_id = ?", userID)
}

func (c *commentRepository) FetchTopLevel(ctx context.Context, reviewID *int64) ([]domain.Comment, error) {
	query := c.DB.WithContext(ctx).Where("parent_comment_id IS NULL")
	if reviewID != nil {
		query = query.Where("review_id = ?", *reviewID)
	}

	var comments []model.Comment
	err := query.Order("created_at").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func (c *commentRepository) FetchReplies(ctx context.Context, parentID int64) ([]domain.Comment, error) {
	return c.fetchWhere(ctx, "parent_comment_id = ?", parentID)
}

func (c *commentRepository) CountByReview(ctx context.Context, reviewID int64) (int64, error) {
	var count int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("review_id = ?", reviewID).
		Count(&count).
		Error
	return count, err
}

func (c *commentRepository) fetchWhere(ctx context.Context, query string, arg any) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where(query, arg).
		Order("created_at").
		Find(&comments).
		Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	result := c.DB.WithContext(ctx).Create(commentModel)
	if result.Error != nil {
		return result.Error
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	comment.UpdatedAt = commentModel.UpdatedAt
	return nil
}

func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	result := c.DB.WithContext(ctx).Model(&model.Comment{ID: comment.ID}).Updates(map[string]any{
		"content":           comment.Content,
		"commenter_name":    comment.CommenterName,
		"parent_comment_id": comment.ParentCommentID,
	})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes only the addressed comment. Replies keep their
// parent_comment_id and become orphans.
func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("comment", id)
	}
	return nil
}

func toDomainComments(comments []model.Comment) []domain.Comment {
	res := make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		res = append(res, comment.ToDomain())
	}
	return res
}
