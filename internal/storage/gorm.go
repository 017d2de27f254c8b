package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kv_entries テーブルの1行
type KVEntry struct {
	Key   string `gorm:"primaryKey;type:varchar(64);column:key"`
	Value string `gorm:"type:text;not null"`
}

func (KVEntry) TableName() string { return "kv_entries" }

// GormStorage はPostgres上のキーバリュー実装（STORAGE_DRIVER=postgres）。
type GormStorage struct {
	db *gorm.DB
}

// DI
func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return &GormStorage{db: db}, nil
}

func (s *GormStorage) Get(key string) (string, bool, error) {
	var e KVEntry

	err := s.db.Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

// Set は同一キーがあれば値だけ更新する（upsert）。
func (s *GormStorage) Set(key string, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&KVEntry{Key: key, Value: value}).Error
}

func (s *GormStorage) Remove(key string) error {
	return s.db.Where("key = ?", key).Delete(&KVEntry{}).Error
}
