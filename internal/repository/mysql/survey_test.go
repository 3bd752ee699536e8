package mysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/pageturn/pageturn/domain"
	mysqlRepo "github.com/pageturn/pageturn/internal/repository/mysql"
)

func TestIncrementResponseCountSucceedsUnderCapacity(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewSurveyRepository(gdb)

	mock.ExpectExec("UPDATE `survey` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementResponseCount(context.Background(), 1)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementResponseCountAtCapacity(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewSurveyRepository(gdb)

	// The conditional update matches no row, the follow-up read shows the
	// survey exists, so the survey is full.
	mock.ExpectExec("UPDATE `survey` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	rows := sqlmock.NewRows([]string{"id", "title", "status", "max_responses", "response_count"}).
		AddRow(1, "full survey", "ACTIVE", 10, 10)
	mock.ExpectQuery("SELECT (.+) FROM `survey`").
		WillReturnRows(rows)

	err := repo.IncrementResponseCount(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementResponseCountMissingSurvey(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewSurveyRepository(gdb)

	mock.ExpectExec("UPDATE `survey` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM `survey`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.IncrementResponseCount(context.Background(), 404)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "survey", nf.Kind)
	assert.Equal(t, int64(404), nf.ID)
}

func TestFetchAvailableFiltersAtStore(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewSurveyRepository(gdb)

	rows := sqlmock.NewRows([]string{"id", "title", "status", "max_responses", "response_count"}).
		AddRow(1, "open", "ACTIVE", 10, 3).
		AddRow(2, "unbounded", "ACTIVE", nil, 50)
	mock.ExpectQuery("SELECT (.+) FROM `survey`").
		WillReturnRows(rows)

	surveys, err := repo.FetchAvailable(context.Background(), domain.SurveyStatusActive)

	require.NoError(t, err)
	require.Len(t, surveys, 2)
	assert.True(t, surveys[0].IsAvailable())
	assert.True(t, surveys[1].IsAvailable())
}

func TestFetchByStatusReturnsMatchingRows(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewSurveyRepository(gdb)

	rows := sqlmock.NewRows([]string{"id", "title", "status", "response_count"}).
		AddRow(1, "draft one", "DRAFT", 0).
		AddRow(2, "draft two", "DRAFT", 0)
	mock.ExpectQuery("SELECT (.+) FROM `survey`").
		WillReturnRows(rows)

	surveys, err := repo.FetchByStatus(context.Background(), domain.SurveyStatusDraft)

	require.NoError(t, err)
	require.Len(t, surveys, 2)
	assert.Equal(t, domain.SurveyStatusDraft, surveys[0].Status)
	assert.Equal(t, int64(2), surveys[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchSurveysByTitleEmptyResult(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewSurveyRepository(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `survey`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "status"}))

	surveys, err := repo.SearchByTitle(context.Background(), "nosuch")

	require.NoError(t, err)
	assert.Empty(t, surveys)
}

func TestSurveyUpdateMissingRowIsNoOp(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewSurveyRepository(gdb)

	mock.ExpectExec("UPDATE `survey` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Survey{ID: 9, Title: "gone"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSurveyDeleteNotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewSurveyRepository(gdb)

	mock.ExpectExec("DELETE FROM `survey`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
