package store

import (
	"context"
	"errors"
	"time"

	"github.com/Greenoni119/k2.0/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists cart records in the cart_records table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context, clientID string) ([]models.CartLine, error) {
	var record models.CartRecord
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.CartLine{}, nil
		}
		return []models.CartLine{}, err
	}
	return decodeLines(record.Items), nil
}

func (s *GormStore) Save(ctx context.Context, clientID string, lines []models.CartLine) error {
	payload, err := encodeLines(lines)
	if err != nil {
		return err
	}
	record := models.CartRecord{
		ClientID:  clientID,
		Items:     payload,
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&record).Error
}

func (s *GormStore) Erase(ctx context.Context, clientID string) error {
	return s.db.WithContext(ctx).Where("client_id = ?", clientID).Delete(&models.CartRecord{}).Error
}
