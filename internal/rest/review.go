package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageturn/pageturn/domain"
	"github.com/pageturn/pageturn/internal/rest/request"
	"github.com/pageturn/pageturn/internal/rest/response"
)

// ReviewHandler represent the httphandler for review
type ReviewHandler struct {
	Service domain.ReviewUsecase
}

func NewReviewHandler(svc domain.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{
		Service: svc,
	}
}

func (h *ReviewHandler) FetchReview(c *gin.Context) {
	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}
	cursor := c.Query("cursor")

	reviews, nextCursor, err := h.Service.Fetch(c.Request.Context(), cursor, int64(num))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, response.NewReviewsFromDomain(reviews))
}

func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	review, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewReviewFromDomain(&review))
}

// FetchByBook lists every review of a book, oldest first
func (h *ReviewHandler) FetchByBook(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	reviews, err := h.Service.FetchByBook(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewReviewsFromDomain(reviews))
}

func (h *ReviewHandler) FetchByUser(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	reviews, err := h.Service.FetchByUser(c.Request.Context(), int64(idP))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewReviewsFromDomain(reviews))
}

func (h *ReviewHandler) FetchByRating(c *gin.Context) {
	rating, err := strconv.Atoi(c.Param("rating"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	reviews, err := h.Service.FetchByRating(c.Request.Context(), rating)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewReviewsFromDomain(reviews))
}

// GetRating returns the recomputed rating aggregate of a book
func (h *ReviewHandler) GetRating(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	summary, err := h.Service.RatingSummary(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewRatingSummaryFromDomain(&summary))
}

func (h *ReviewHandler) Store(c *gin.Context) {
	var req request.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), &review); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewReviewFromDomain(&review))
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req request.ReviewUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := req.ToDomain(id)
	if err := h.Service.Update(c.Request.Context(), &review); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewReviewFromDomain(&review))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
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

// paramID parses the :id path param, writing the not-found response itself
// when the param is not numeric.
func paramID(c *gin.Context) (int64, bool) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return int64(idP), true
}
