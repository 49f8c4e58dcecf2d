// Package store is a thin persistence façade over a key-value table: one
// key per entity collection, each value a single JSON-serialized array.
// There is no locking and no cross-key transaction; concurrent writers to
// the same key overwrite one another, last write wins.
package store

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rex-dinner-api/models"
)

// Persisted collection keys. Review records live under a site-prefixed key
// for historical reasons; the others are named after their entity.
const (
	KeyMenuItems     = "menuItems"
	KeyMenuBackup    = "menuItems_backup"
	KeyUsers         = "users"
	KeyReservations  = "reservations"
	KeyOrders        = "orders"
	KeyReviews       = "rex_dinner_reviews"
	KeyWebsiteConfig = "websiteConfig"
)

type record struct {
	Key       string         `gorm:"primaryKey;column:key"`
	Value     datatypes.JSON `gorm:"column:value"`
	UpdatedAt time.Time
}

func (record) TableName() string { return "records" }

// Store owns the record table. Pages and handlers receive it explicitly
// instead of reaching for ambient global state.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Load returns the parsed collection stored under key, or the given
// defaults when the key is absent or its value does not parse. Parse
// failures are logged and swallowed, never surfaced.
func Load[T any](s *Store, key string, defaults []T) []T {
	var rec record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		return defaults
	}
	var items []T
	if err := json.Unmarshal(rec.Value, &items); err != nil {
		log.Printf("WARN: stored collection %q is unreadable, using defaults: %v", key, err)
		return defaults
	}
	return items
}

// Save serializes the collection and overwrites the stored value.
func Save[T any](s *Store, key string, items []T) error {
	value, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.upsert(key, value)
}

// LoadOne is the singleton-record variant of Load.
func LoadOne[T any](s *Store, key string, defaults T) T {
	var rec record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		return defaults
	}
	var v T
	if err := json.Unmarshal(rec.Value, &v); err != nil {
		log.Printf("WARN: stored record %q is unreadable, using defaults: %v", key, err)
		return defaults
	}
	return v
}

// SaveOne is the singleton-record variant of Save.
func SaveOne[T any](s *Store, key string, v T) error {
	value, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.upsert(key, value)
}

func (s *Store) upsert(key string, value []byte) error {
	rec := record{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

// SaveMenu persists the menu collection and writes the timestamped,
// versioned shadow copy the restore endpoint reads back.
func (s *Store) SaveMenu(items []models.MenuItem) error {
	if err := Save(s, KeyMenuItems, items); err != nil {
		return err
	}
	backup := models.MenuBackup{
		Items:     items,
		Timestamp: time.Now().UnixMilli(),
		Version:   "1.0",
	}
	if err := SaveOne(s, KeyMenuBackup, backup); err != nil {
		log.Printf("WARN: failed to write menu backup: %v", err)
	}
	return nil
}

// LoadMenuBackup returns the shadow copy of the menu, or ok=false when no
// backup has been written yet.
func (s *Store) LoadMenuBackup() (models.MenuBackup, bool) {
	var rec record
	if err := s.db.First(&rec, "key = ?", KeyMenuBackup).Error; err != nil {
		return models.MenuBackup{}, false
	}
	var backup models.MenuBackup
	if err := json.Unmarshal(rec.Value, &backup); err != nil {
		log.Printf("WARN: menu backup is unreadable: %v", err)
		return models.MenuBackup{}, false
	}
	return backup, true
}
