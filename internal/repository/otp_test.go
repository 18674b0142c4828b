package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rumahpeduli/cms-api/internal/model"
)

func TestOTPConsume_ReportsWhetherRowExisted(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewOTPRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "one_time_passcodes" WHERE user_id = \$1`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	consumed, err := repo.ConsumeByUserID(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, consumed)

	// Second delete finds nothing, the caller must not mint a token
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "one_time_passcodes" WHERE user_id = \$1`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	consumed, err = repo.ConsumeByUserID(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, consumed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPReplace_DeletesBeforeInsert(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewOTPRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "one_time_passcodes" WHERE user_id = \$1`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "one_time_passcodes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Replace(context.Background(), &model.OneTimePasscode{
		UserID:    7,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
