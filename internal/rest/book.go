package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageturn/pageturn/domain"
	"github.com/pageturn/pageturn/internal/rest/request"
	"github.com/pageturn/pageturn/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPageNum = 10
	PageMinNum     = 5
	PageMaxNum     = 30
)

// BookHandler represent the httphandler for book
type BookHandler struct {
	Service domain.BookUsecase
}

func NewBookHandler(svc domain.BookUsecase) *BookHandler {
	return &BookHandler{
		Service: svc,
	}
}

// FetchBook will fetch books: paginated by default, filtered when a search
// query param is present.
func (h *BookHandler) FetchBook(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		books []domain.Book
		err   error
	)
	switch {
	case c.Query("title") != "":
		books, err = h.Service.SearchByTitle(ctx, c.Query("title"))
	case c.Query("author") != "":
		books, err = h.Service.SearchByAuthor(ctx, c.Query("author"))
	case c.Query("genre") != "":
		books, err = h.Service.FetchByGenre(ctx, c.Query("genre"))
	case c.Query("isbn") != "":
		var book domain.Book
		book, err = h.Service.GetByISBN(ctx, c.Query("isbn"))
		books = []domain.Book{book}
	default:
		h.fetchPage(c)
		return
	}
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Book, len(books))
	for i := range books {
		res[i] = response.NewBookFromDomain(&books[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *BookHandler) fetchPage(c *gin.Context) {
	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}
	cursor := c.Query("cursor")

	listBk, nextCursor, err := h.Service.Fetch(c.Request.Context(), cursor, int64(num))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Book, len(listBk))
	for i := range listBk {
		res[i] = response.NewBookFromDomain(&listBk[i])
	}
	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}

// GetByID will get book by given id, with its rating aggregate attached
func (h *BookHandler) GetByID(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	book, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewBookFromDomain(&book))
}

// Store will store the book by given request body
func (h *BookHandler) Store(c *gin.Context) {
	var req request.Book
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), &book); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewBookFromDomain(&book))
}

// Update will update the book identified by the id param
func (h *BookHandler) Update(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	var req request.Book
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := req.ToDomain()
	book.ID = id
	if err := h.Service.Update(c.Request.Context(), &book); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewBookFromDomain(&book))
}

// Delete will delete the book by given param
func (h *BookHandler) Delete(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getStatusCode will get the http status code of the given domain error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrInternalServerError):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
