package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// IndexInfo matches the columns of SHOW INDEX we care about.
type IndexInfo struct {
	KeyName    string `gorm:"column:Key_name"`
	ColumnName string `gorm:"column:Column_name"`
	NonUnique  int    `gorm:"column:Non_unique"`
}

// GetTableColumns retrieves the column definitions for a given table.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	// Normalize to lowercase for comparisons
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// HasUniqueIndex reports whether the table carries a unique index on the
// given column. The game catalog relies on the database enforcing
// uniqueness on games.steam_id, so callers use this as a startup check
// rather than trusting the migration silently.
func HasUniqueIndex(db *gorm.DB, tableName, columnName string) (bool, error) {
	var indexes []IndexInfo
	err := db.Raw(fmt.Sprintf("SHOW INDEX FROM `%s`", tableName)).Scan(&indexes).Error
	if err != nil {
		return false, fmt.Errorf("failed to get indexes for table %s: %w", tableName, err)
	}
	for _, idx := range indexes {
		if strings.EqualFold(idx.ColumnName, columnName) && idx.NonUnique == 0 {
			return true, nil
		}
	}
	return false, nil
}
