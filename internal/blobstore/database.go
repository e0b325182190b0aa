package blobstore

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is the single-row-per-key table backing DatabaseStore.
type Blob struct {
	Key     string         `gorm:"column:key;primaryKey" json:"key"`
	Payload datatypes.JSON `gorm:"column:payload" json:"payload"`
}

func (Blob) TableName() string {
	return "blobs"
}

// DatabaseStore keeps blobs in a GORM-managed table, one row per key.
// Payloads are JSON snapshots, so the column is datatypes.JSON.
type DatabaseStore struct {
	DB *gorm.DB
}

// NewDatabaseStore migrates the blobs table and returns the store.
func NewDatabaseStore(db *gorm.DB) (*DatabaseStore, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &DatabaseStore{DB: db}, nil
}

func (s *DatabaseStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var row Blob
	err := s.DB.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(row.Payload), true, nil
}

func (s *DatabaseStore) Save(ctx context.Context, key string, blob []byte) error {
	row := Blob{Key: key, Payload: datatypes.JSON(blob)}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload"}),
	}).Create(&row).Error
}
