package catalog

import (
	"context"
	"errors"

	"github.com/Greenoni119/k2.0/models"
	"gorm.io/gorm"
)

// GormService reads the catalog tables directly.
type GormService struct {
	db *gorm.DB
}

func NewGormService(db *gorm.DB) *GormService {
	return &GormService{db: db}
}

func (s *GormService) Product(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Preload("Categories").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *GormService) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Preload("Categories").
		Order("created_at desc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormService) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Preload("Products").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
