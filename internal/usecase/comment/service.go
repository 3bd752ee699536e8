package comment

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pageturn/pageturn/domain"
)

type Service struct {
	commentRepo domain.CommentRepository
	reviewRepo  domain.ReviewRepository
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(c domain.CommentRepository, r domain.ReviewRepository) *Service {
	return &Service{
		commentRepo: c,
		reviewRepo:  r,
	}
}

func (s *Service) Fetch(ctx context.Context) ([]domain.Comment, error) {
	return s.commentRepo.Fetch(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *Service) FetchByReview(ctx context.Context, reviewID int64) ([]domain.Comment, error) {
	return s.commentRepo.FetchByReview(ctx, reviewID)
}

func (s *Service) FetchByUser(ctx context.Context, userID int64) ([]domain.Comment, error) {
	return s.commentRepo.FetchByUser(ctx, userID)
}

func (s *Service) FetchTopLevel(ctx context.Context, reviewID *int64) ([]domain.Comment, error) {
	return s.commentRepo.FetchTopLevel(ctx, reviewID)
}

func (s *Service) FetchReplies(ctx context.Context, parentID int64) ([]domain.Comment, error) {
	if _, err := s.commentRepo.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	return s.commentRepo.FetchReplies(ctx, parentID)
}

func (s *Service) CountByReview(ctx context.Context, reviewID int64) (int64, error) {
	return s.commentRepo.CountByReview(ctx, reviewID)
}

// Store creates a comment. The target review must exist; a reply must point
// at an existing parent on the same review.
func (s *Service) Store(ctx context.Context, c *domain.Comment) error {
	if c.Content == "" || len(c.Content) > domain.MaxCommentLength {
		return domain.ErrBadParamInput
	}

	if _, err := s.reviewRepo.GetByID(ctx, c.ReviewID); err != nil {
		return err
	}

	if c.ParentCommentID != nil {
		if err := s.validateParent(ctx, c, *c.ParentCommentID); err != nil {
			return err
		}
	}

	return s.commentRepo.Store(ctx, c)
}

// Update modifies content, commenter name and, when re-parenting, the parent
// reference. A new parent must exist, live on the same review, and must not
// be the comment itself or one of its descendants.
func (s *Service) Update(ctx context.Context, c *domain.Comment) error {
	if c.Content == "" || len(c.Content) > domain.MaxCommentLength {
		return domain.ErrBadParamInput
	}

	existing, err := s.commentRepo.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}
	c.ReviewID = existing.ReviewID
	c.UserID = existing.UserID

	if reparented(existing.ParentCommentID, c.ParentCommentID) && c.ParentCommentID != nil {
		if err := s.validateParent(ctx, c, *c.ParentCommentID); err != nil {
			return err
		}
	}

	return s.commentRepo.Update(ctx, c)
}

// Delete removes a single comment. Existing replies are orphaned, not
// cascaded.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.commentRepo.Delete(ctx, id)
}

// validateParent rejects a parent reference that is missing, sits on another
// review, or would close a cycle through the comment's ancestor chain.
func (s *Service) validateParent(ctx context.Context, c *domain.Comment, parentID int64) error {
	if c.ID != 0 && parentID == c.ID {
		return domain.ErrBadParamInput
	}

	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logrus.Warnf("comment parent %d does not exist", parentID)
			return domain.ErrBadParamInput
		}
		return err
	}

	if parent.ReviewID != c.ReviewID {
		return domain.ErrBadParamInput
	}

	if c.ID == 0 {
		// A comment that is not stored yet cannot be anyone's ancestor.
		return nil
	}

	return s.checkAncestors(ctx, c.ID, parent)
}

// checkAncestors walks up from the candidate parent. Hitting the comment
// itself means the new parent is one of its descendants. The walk is bounded
// by the total comment count of the review, so an orphaned chain terminates.
func (s *Service) checkAncestors(ctx context.Context, id int64, parent domain.Comment) error {
	bound, err := s.commentRepo.CountByReview(ctx, parent.ReviewID)
	if err != nil {
		return err
	}

	current := parent
	for range bound + 1 {
		if current.ID == id {
			return domain.ErrBadParamInput
		}
		if current.ParentCommentID == nil {
			return nil
		}

		next, err := s.commentRepo.GetByID(ctx, *current.ParentCommentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Orphaned ancestor, the chain ends here.
				return nil
			}
			return err
		}
		current = next
	}

	return domain.ErrBadParamInput
}

func reparented(old, new *int64) bool {
	if old == nil && new == nil {
		return false
	}
	if old == nil || new == nil {
		return true
	}
	return *old != *new
}
