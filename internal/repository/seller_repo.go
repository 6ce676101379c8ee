package repository

import (
	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SellerRepository interface {
	Create(tx *gorm.DB, seller *model.Seller) error
	FindByID(id uuid.UUID) (*model.Seller, error)
	FindByUserID(userID uuid.UUID) (*model.Seller, error)
	FindActive() ([]model.Seller, error)
	FindActiveByLocation(locationID uuid.UUID) ([]model.Seller, error)
	CountActiveByLocation(locationID uuid.UUID) (int64, error)
}

type sellerRepo struct {
	db *gorm.DB
}

func NewSellerRepo(db *gorm.DB) SellerRepository {
	return &sellerRepo{db}
}

func (r *sellerRepo) Create(tx *gorm.DB, seller *model.Seller) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(seller).Error
}

func (r *sellerRepo) FindByID(id uuid.UUID) (*model.Seller, error) {
	var seller model.Seller
	if err := r.db.Preload("Location").Preload("User").First(&seller, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepo) FindByUserID(userID uuid.UUID) (*model.Seller, error) {
	var seller model.Seller
	if err := r.db.Preload("Location").First(&seller, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepo) FindActive() ([]model.Seller, error) {
	var sellers []model.Seller
	err := r.db.Preload("Location").Where("is_active = ?", true).Find(&sellers).Error
	return sellers, err
}

func (r *sellerRepo) FindActiveByLocation(locationID uuid.UUID) ([]model.Seller, error) {
	var sellers []model.Seller
	err := r.db.Where("location_id = ? AND is_active = ?", locationID, true).Find(&sellers).Error
	return sellers, err
}

func (r *sellerRepo) CountActiveByLocation(locationID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Seller{}).Where("location_id = ? AND is_active = ?", locationID, true).Count(&count).Error
	return count, err
}
