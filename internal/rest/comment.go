package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageturn/pageturn/domain"
	"github.com/pageturn/pageturn/internal/rest/request"
	"github.com/pageturn/pageturn/internal/rest/response"
)

// CommentHandler represent the httphandler for comment
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) FetchComment(c *gin.Context) {
	comments, err := h.Service.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentsFromDomain(comments))
}

func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	comment, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

// FetchByReview lists all comments attached to a review, replies included
func (h *CommentHandler) FetchByReview(c *gin.Context) {
	reviewID, ok := paramReviewID(c)
	if !ok {
		return
	}

	comments, err := h.Service.FetchByReview(c.Request.Context(), reviewID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentsFromDomain(comments))
}

func (h *CommentHandler) FetchByUser(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	comments, err := h.Service.FetchByUser(c.Request.Context(), int64(idP))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentsFromDomain(comments))
}

// FetchTopLevel lists parentless comments across all reviews
func (h *CommentHandler) FetchTopLevel(c *gin.Context) {
	comments, err := h.Service.FetchTopLevel(c.Request.Context(), nil)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentsFromDomain(comments))
}

// FetchTopLevelByReview lists parentless comments of one review
func (h *CommentHandler) FetchTopLevelByReview(c *gin.Context) {
	reviewID, ok := paramReviewID(c)
	if !ok {
		return
	}

	comments, err := h.Service.FetchTopLevel(c.Request.Context(), &reviewID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentsFromDomain(comments))
}

// FetchReplies lists the immediate children of a comment, one level only
func (h *CommentHandler) FetchReplies(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	replies, err := h.Service.FetchReplies(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentsFromDomain(replies))
}

// CountByReview returns the total comment count of a review
func (h *CommentHandler) CountByReview(c *gin.Context) {
	reviewID, ok := paramReviewID(c)
	if !ok {
		return
	}

	count, err := h.Service.CountByReview(c.Request.Context(), reviewID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *CommentHandler) Store(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req request.CommentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := req.ToDomain(id)
	if err := h.Service.Update(c.Request.Context(), &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func paramReviewID(c *gin.Context) (int64, bool) {
	idP, err := strconv.Atoi(c.Param("reviewId"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return int64(idP), true
}
