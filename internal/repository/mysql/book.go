package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pageturn/pageturn/domain"
	"github.com/pageturn/pageturn/internal/repository"
	"github.com/pageturn/pageturn/internal/repository/mysql/model"
)

type bookRepository struct {
	DB *gorm.DB
}

var _ domain.BookRepository = (*bookRepository)(nil)

func NewBookRepository(db *gorm.DB) *bookRepository {
	return &bookRepository{db}
}

func (m *bookRepository) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Book, err error) {
	var books []model.Book
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	err = m.DB.WithContext(ctx).
		Where("created_at > ?", decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&books).
		Error
	if err != nil {
		return
	}

	for _, book := range books {
		res = append(res, book.ToDomain())
	}

	return
}

func (m *bookRepository) GetByID(ctx context.Context, id int64) (res domain.Book, err error) {
	var book model.Book
	err = m.DB.WithContext(ctx).First(&book, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, domain.NewNotFoundError("book", id)
		}
		return res, err
	}
	res = book.ToDomain()
	return
}

func (m *bookRepository) GetByISBN(ctx context.Context, isbn string) (res domain.Book, err error) {
	var book model.Book
	err = m.DB.WithContext(ctx).First(&book, "isbn = ?", isbn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, domain.ErrNotFound
		}
		return res, err
	}
	res = book.ToDomain()
	return
}

func (m *bookRepository) SearchByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	return m.fetchWhere(ctx, "title LIKE ?", "%"+title+"%")
}

func (m *bookRepository) SearchByAuthor(ctx context.Context, author string) ([]domain.Book, error) {
	return m.fetchWhere(ctx, "author LIKE ?", "%"+author+"%")
}

func (m *bookRepository) FetchByGenre(ctx context.Context, genre string) ([]domain.Book, error) {
	return m.fetchWhere(ctx, "genre = ?", genre)
}

func (m *bookRepository) fetchWhere(ctx context.Context, query string, arg any) ([]domain.Book, error) {
	var books []model.Book
	err := m.DB.WithContext(ctx).
		Where(query, arg).
		Order("created_at").
		Find(&books).
		Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Book, 0, len(books))
	for _, book := range books {
		res = append(res, book.ToDomain())
	}
	return res, nil
}

func (m *bookRepository) Store(ctx context.Context, b *domain.Book) error {
	bookModel := model.NewBookFromDomain(b)
	result := m.DB.WithContext(ctx).Create(bookModel)
	if result.Error != nil {
		return result.Error
	}
	b.ID = bookModel.ID
	b.CreatedAt = bookModel.CreatedAt
	b.UpdatedAt = bookModel.UpdatedAt
	return nil
}

func (m *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	bookModel := model.NewBookFromDomain(b)
	result := m.DB.WithContext(ctx).Model(&model.Book{ID: b.ID}).Updates(map[string]any{
		"title":          bookModel.Title,
		"author":         bookModel.Author,
		"isbn":           bookModel.ISBN,
		"description":    bookModel.Description,
		"published_year": bookModel.PublishedYear,
		"genre":          bookModel.Genre,
		"page_count":     bookModel.PageCount,
	})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (m *bookRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("book", id)
	}
	return nil
}
