package tracker

import (
	"errors"
	"fmt"
	"io/fs"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// stateRecord is the single-table schema of the SQLite storage.
type stateRecord struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

func (stateRecord) TableName() string { return "state" }

// SQLiteStorage persists keys in a SQLite database, for setups where a single
// file database is preferable to loose JSON files.
type SQLiteStorage struct {
	db *gorm.DB
}

// OpenSQLiteStorage opens (creating if needed) the database at path and
// ensures the schema exists.
func OpenSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	if err := db.AutoMigrate(&stateRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Get(key string) ([]byte, error) {
	var record stateRecord
	err := s.db.First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return record.Value, nil
}

func (s *SQLiteStorage) Set(key string, value []byte) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&stateRecord{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}
