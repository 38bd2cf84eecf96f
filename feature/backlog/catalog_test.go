package backlog

import (
	"context"
	"testing"

	"backlog-manager/feature/backlog/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func gameRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "steam_id"})
}

func TestCatalog_ResolveOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("HitReturnsExistingID", func(t *testing.T) {
		db, mock := setupMockDB(t)
		catalog := NewCatalog(db)

		mock.ExpectQuery("SELECT \\* FROM `games` WHERE steam_id = ").
			WillReturnRows(gameRows().AddRow(42, "Title-X", 10))

		// Different remote name must not touch the stored one: dedup is
		// by app id and the name policy is keep-first.
		id, err := catalog.ResolveOrCreate(ctx, 10, "Title-X Remastered")
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissCreates", func(t *testing.T) {
		db, mock := setupMockDB(t)
		catalog := NewCatalog(db)

		mock.ExpectQuery("SELECT \\* FROM `games` WHERE steam_id = ").
			WillReturnRows(gameRows())
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `games`").
			WithArgs("Title-X", int64(10)).
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectCommit()

		id, err := catalog.ResolveOrCreate(ctx, 10, "Title-X")
		require.NoError(t, err)
		assert.Equal(t, uint(7), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateRaceReResolves", func(t *testing.T) {
		db, mock := setupMockDB(t)
		catalog := NewCatalog(db)

		mock.ExpectQuery("SELECT \\* FROM `games` WHERE steam_id = ").
			WillReturnRows(gameRows())
		mock.ExpectBegin()
		// Another pass inserted the same app id first; the unique index
		// on steam_id rejects ours.
		mock.ExpectExec("INSERT INTO `games`").
			WillReturnError(&mysqlDuplicateErr{})
		mock.ExpectRollback()
		mock.ExpectQuery("SELECT \\* FROM `games` WHERE steam_id = ").
			WillReturnRows(gameRows().AddRow(9, "Title-X", 10))

		id, err := catalog.ResolveOrCreate(ctx, 10, "Title-X")
		require.NoError(t, err)
		assert.Equal(t, uint(9), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalog_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("MissIsNotFoundKind", func(t *testing.T) {
		db, mock := setupMockDB(t)
		catalog := NewCatalog(db)

		mock.ExpectQuery("SELECT \\* FROM `games` WHERE steam_id = ").
			WillReturnRows(gameRows())

		game, err := catalog.Resolve(ctx, ByAppID(99))
		assert.Nil(t, game)
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("ByNameIsByteExact", func(t *testing.T) {
		db, mock := setupMockDB(t)
		catalog := NewCatalog(db)

		// BINARY comparison keeps differently-cased names distinct even
		// under MySQL's case-folding default collation
		mock.ExpectQuery("SELECT \\* FROM `games` WHERE steam_id IS NULL AND BINARY name = ").
			WithArgs("Title-X", 1).
			WillReturnRows(gameRows().AddRow(3, "Title-X", nil))

		game, err := catalog.Resolve(ctx, ByName("Title-X"))
		require.NoError(t, err)
		assert.Equal(t, uint(3), game.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// mysqlDuplicateErr mimics MySQL error 1062 on a unique index violation.
type mysqlDuplicateErr struct{}

func (e *mysqlDuplicateErr) Error() string {
	return "Error 1062 (23000): Duplicate entry '10' for key 'games.idx_games_steam_id'"
}
