package repository

import (
	"context"
	"errors"

	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/fault"
	domainRepo "github.com/swapnilsborase/blooddonor-service/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postgresKVStore is the durable key-value namespace on a flat kv_entries
// table. Each Set is a single upsert, committed before return.
type postgresKVStore struct {
	db *gorm.DB
}

func NewPostgresKVStore(db *gorm.DB) domainRepo.KVStore {
	return &postgresKVStore{db: db}
}

func (s *postgresKVStore) Set(ctx context.Context, key, value string) error {
	entry := entity.KVEntry{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entry).Error
	if err != nil {
		return &fault.StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (s *postgresKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry entity.KVEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &fault.StorageError{Op: "get", Key: key, Err: err}
	}
	return entry.Value, true, nil
}

func (s *postgresKVStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&entity.KVEntry{}).Error
	if err != nil {
		return &fault.StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *postgresKVStore) List(ctx context.Context) ([]domainRepo.KVPair, error) {
	var entries []entity.KVEntry
	if err := s.db.WithContext(ctx).Order("key").Find(&entries).Error; err != nil {
		return nil, &fault.StorageError{Op: "list", Err: err}
	}
	pairs := make([]domainRepo.KVPair, len(entries))
	for i, e := range entries {
		pairs[i] = domainRepo.KVPair{Key: e.Key, Value: e.Value}
	}
	return pairs, nil
}
