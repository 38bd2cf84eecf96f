package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
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

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "BIGINT UNSIGNED", "NO", "PRI", nil, "auto_increment").
		AddRow("Name", "VARCHAR(255)", "YES", "", nil, "")

	mock.ExpectQuery("SHOW COLUMNS FROM `games`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "games")
	assert.NoError(t, err)
	assert.Len(t, columns, 2)

	// Field and Type are normalized to lowercase
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "bigint unsigned", columns[0].Type)
	assert.Equal(t, "name", columns[1].Field)
}

func TestHasUniqueIndex(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		db, mock := setupMockDB(t)

		rows := sqlmock.NewRows([]string{"Key_name", "Column_name", "Non_unique"}).
			AddRow("PRIMARY", "id", 0).
			AddRow("idx_games_steam_id", "steam_id", 0)

		mock.ExpectQuery("SHOW INDEX FROM `games`").WillReturnRows(rows)

		ok, err := HasUniqueIndex(db, "games", "steam_id")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("NonUniqueOnly", func(t *testing.T) {
		db, mock := setupMockDB(t)

		rows := sqlmock.NewRows([]string{"Key_name", "Column_name", "Non_unique"}).
			AddRow("PRIMARY", "id", 0).
			AddRow("idx_games_steam_id", "steam_id", 1)

		mock.ExpectQuery("SHOW INDEX FROM `games`").WillReturnRows(rows)

		ok, err := HasUniqueIndex(db, "games", "steam_id")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Missing", func(t *testing.T) {
		db, mock := setupMockDB(t)

		rows := sqlmock.NewRows([]string{"Key_name", "Column_name", "Non_unique"}).
			AddRow("PRIMARY", "id", 0)

		mock.ExpectQuery("SHOW INDEX FROM `games`").WillReturnRows(rows)

		ok, err := HasUniqueIndex(db, "games", "steam_id")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
