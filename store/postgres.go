package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the single table backing the Postgres store.
type KVEntry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

// Postgres implements Store on a shared database. It is the
// network-backed alternative to the local pebble store; the storefront
// logic is identical under either.
type Postgres struct {
	db *gorm.DB
}

func OpenPostgres(dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(key string) ([]byte, error) {
	var entry KVEntry
	if err := p.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry.Value, nil
}

func (p *Postgres) Set(key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value}
	return p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

func (p *Postgres) Delete(key string) error {
	return p.db.Delete(&KVEntry{}, "key = ?", key).Error
}

func (p *Postgres) Keys(prefix string) ([]string, error) {
	var keys []string
	err := p.db.Model(&KVEntry{}).
		Where("key LIKE ?", prefix+"%").
		Order("key").
		Pluck("key", &keys).Error
	return keys, err
}

func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
