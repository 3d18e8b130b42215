// AngelaMos | 2026
// repository_test.go

package logentry

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fisherfans/backend/internal/core"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestRepositoryCreateFillsTimestamps(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	caught := now.Add(-48 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO log_entries")).
		WithArgs("e1", "u1", "Bar", nil, nil, 62.0, 2.8, "Brest", caught, true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	entry := &LogEntry{
		ID:         "e1",
		OwnerID:    "u1",
		PoissonNom: "Bar",
		TailleCm:   62,
		PoidsKg:    2.8,
		Lieu:       "Brest",
		DatePeche:  caught,
		Relache:    true,
	}
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.Equal(t, now, entry.CreatedAt)
}

func TestRepositoryGetByIDMissingIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM log_entries")).
		WithArgs("gone").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "gone")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepositorySoftDeleteRecordsActor(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE log_entries")).
		WithArgs("e1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SoftDelete(context.Background(), "e1", "u1"))
}
