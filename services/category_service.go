package services

import (
	"gorm.io/gorm"

	"stayhub-backend/models"
)

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	err := s.DB.Order("name ASC").Find(&categories).Error
	return categories, err
}
