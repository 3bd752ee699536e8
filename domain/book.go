package domain

import (
	"context"
	"time"
)

// Book is representing the Book data struct
type Book struct {
	ID            int64     // Unique identifier for the book
	Title         string    // Book title
	Author        string    // Author name
	ISBN          string    // Unique ISBN, optional (empty means unset)
	Description   string    // Book description
	PublishedYear int       // Year of publication
	Genre         string    // Genre label
	PageCount     int       // Number of pages
	CreatedAt     time.Time // Creation timestamp
	UpdatedAt     time.Time // Last update timestamp

	// Rating is the on-demand aggregate over this book's reviews,
	// filled by the usecase layer, never persisted.
	Rating *RatingSummary
}

// BookRepository defines the contract for book data persistence
type BookRepository interface {
	// Fetch retrieves a paginated list of books.
	// cursor: pass the encoded cursor of the previous page or empty string for the first page.
	Fetch(ctx context.Context, cursor string, num int64) (res []Book, err error)

	// GetByID retrieves a single book by its ID.
	// Returns a NotFoundError if the book doesn't exist.
	GetByID(ctx context.Context, id int64) (Book, error)

	// GetByISBN retrieves a book by its exact ISBN.
	GetByISBN(ctx context.Context, isbn string) (Book, error)

	// SearchByTitle retrieves books whose title contains the given substring.
	SearchByTitle(ctx context.Context, title string) ([]Book, error)

	// SearchByAuthor retrieves books whose author contains the given substring.
	SearchByAuthor(ctx context.Context, author string) ([]Book, error)

	// FetchByGenre retrieves books with the exact genre.
	FetchByGenre(ctx context.Context, genre string) ([]Book, error)

	// Store creates a new book and backfills ID and timestamps.
	Store(ctx context.Context, b *Book) error

	// Update modifies an existing book. A missing row is a no-op;
	// callers resolve existence with GetByID first.
	Update(ctx context.Context, b *Book) error

	// Delete removes a book by its ID.
	// Returns a NotFoundError if the book doesn't exist.
	Delete(ctx context.Context, id int64) error
}

// BookUsecase defines the business logic contract for book operations.
type BookUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Book, string, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	SearchByTitle(ctx context.Context, title string) ([]Book, error)
	SearchByAuthor(ctx context.Context, author string) ([]Book, error)
	FetchByGenre(ctx context.Context, genre string) ([]Book, error)
	Store(ctx context.Context, b *Book) error
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id int64) error
}
