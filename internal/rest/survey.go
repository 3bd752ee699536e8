package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageturn/pageturn/domain"
	"github.com/pageturn/pageturn/internal/rest/request"
	"github.com/pageturn/pageturn/internal/rest/response"
)

// SurveyHandler represent the httphandler for survey
type SurveyHandler struct {
	Service domain.SurveyUsecase
}

func NewSurveyHandler(svc domain.SurveyUsecase) *SurveyHandler {
	return &SurveyHandler{
		Service: svc,
	}
}

func (h *SurveyHandler) FetchSurvey(c *gin.Context) {
	ctx := c.Request.Context()

	if title := c.Query("title"); title != "" {
		surveys, err := h.Service.SearchByTitle(ctx, title)
		if err != nil {
			c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, response.NewSurveysFromDomain(surveys))
		return
	}

	surveys, err := h.Service.Fetch(ctx)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewSurveysFromDomain(surveys))
}

func (h *SurveyHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	survey, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewSurveyFromDomain(&survey))
}

func (h *SurveyHandler) FetchByStatus(c *gin.Context) {
	status := domain.SurveyStatus(c.Param("status"))

	surveys, err := h.Service.FetchByStatus(c.Request.Context(), status)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewSurveysFromDomain(surveys))
}

func (h *SurveyHandler) CountByStatus(c *gin.Context) {
	status := domain.SurveyStatus(c.Param("status"))

	count, err := h.Service.CountByStatus(c.Request.Context(), status)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *SurveyHandler) FetchByCreator(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("creatorId"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	surveys, err := h.Service.FetchByCreator(c.Request.Context(), int64(idP))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewSurveysFromDomain(surveys))
}

func (h *SurveyHandler) FetchByBook(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	surveys, err := h.Service.FetchByBook(c.Request.Context(), int64(idP))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewSurveysFromDomain(surveys))
}

// FetchAvailable lists ACTIVE surveys that still accept responses
func (h *SurveyHandler) FetchAvailable(c *gin.Context) {
	surveys, err := h.Service.FetchAvailable(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewSurveysFromDomain(surveys))
}

// FetchCurrentlyActive lists ACTIVE surveys whose window contains the
// current instant
func (h *SurveyHandler) FetchCurrentlyActive(c *gin.Context) {
	surveys, err := h.Service.FetchCurrentlyActive(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewSurveysFromDomain(surveys))
}

func (h *SurveyHandler) Store(c *gin.Context) {
	var req request.Survey
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	survey := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), &survey); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewSurveyFromDomain(&survey))
}

func (h *SurveyHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req request.Survey
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	survey := req.ToDomain()
	survey.ID = id
	if survey.Status == "" {
		survey.Status = domain.SurveyStatusDraft
	}
	if err := h.Service.Update(c.Request.Context(), &survey); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewSurveyFromDomain(&survey))
}

// UpdateStatus moves the survey to the requested lifecycle state
func (h *SurveyHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req request.SurveyStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	survey, err := h.Service.Transition(c.Request.Context(), id, domain.SurveyStatus(req.Status))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewSurveyFromDomain(&survey))
}

// RecordResponse registers one survey response, honoring the capacity
// ceiling
func (h *SurveyHandler) RecordResponse(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	survey, err := h.Service.RecordResponse(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewSurveyFromDomain(&survey))
}

func (h *SurveyHandler) Delete(c *gin.Context) {
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
