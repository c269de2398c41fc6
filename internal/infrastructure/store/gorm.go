package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is the single table backing the GORM store: one row per module
// key, holding the module's JSON-serialized collection.
type Entry struct {
	Key       string `gorm:"primaryKey;column:key;size:128"`
	Value     string `gorm:"column:value;type:text"`
	UpdatedAt time.Time
}

// TableName returns the table name for the KV entries
func (Entry) TableName() string {
	return "kv_entries"
}

// GormStore implements Store over a relational database through GORM.
// SQLite backs the local-first default; PostgreSQL backs hosted
// deployments. The schema is one upserted row per key.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a GormStore and migrates the KV table
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// Get returns the value under key or ErrKeyNotFound
func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	var entry Entry
	if err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return entry.Value, nil
}

// Set upserts the value under key
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

// Delete removes the row under key; deleting an absent key is a no-op
func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error
}
