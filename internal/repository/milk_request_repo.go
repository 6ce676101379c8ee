package repository

import (
	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MilkRequestRepository interface {
	Create(request *model.MilkRequest) error
	FindByID(id uuid.UUID) (*model.MilkRequest, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.MilkRequest, error)
	// TransitionStatus performs the conditional compare-and-set on the status
	// column. Zero rows affected means another caller won the transition.
	TransitionStatus(tx *gorm.DB, id uuid.UUID, from, to model.RequestStatus, assign map[string]interface{}) (int64, error)
	ListPendingExcluding(sellerID uuid.UUID) ([]model.MilkRequest, error)
	ListByRequester(sellerID uuid.UUID) ([]model.MilkRequest, error)
}

type milkRequestRepo struct {
	db *gorm.DB
}

func NewMilkRequestRepo(db *gorm.DB) MilkRequestRepository {
	return &milkRequestRepo{db}
}

func (r *milkRequestRepo) Create(request *model.MilkRequest) error {
	return r.db.Create(request).Error
}

func (r *milkRequestRepo) FindByID(id uuid.UUID) (*model.MilkRequest, error) {
	return r.FindByIDTx(r.db, id)
}

func (r *milkRequestRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.MilkRequest, error) {
	var request model.MilkRequest
	err := tx.Preload("FromSeller").Preload("FromSeller.Location").
		Preload("ToSeller").Preload("ToSeller.Location").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *milkRequestRepo) TransitionStatus(tx *gorm.DB, id uuid.UUID, from, to model.RequestStatus, assign map[string]interface{}) (int64, error) {
	if tx == nil {
		tx = r.db
	}
	if assign == nil {
		assign = map[string]interface{}{}
	}
	assign["status"] = to
	res := tx.Model(&model.MilkRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(assign)
	return res.RowsAffected, res.Error
}

func (r *milkRequestRepo) ListPendingExcluding(sellerID uuid.UUID) ([]model.MilkRequest, error) {
	var requests []model.MilkRequest
	err := r.db.Preload("FromSeller").Preload("FromSeller.Location").
		Where("status = ? AND from_seller_id <> ?", model.RequestPending, sellerID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *milkRequestRepo) ListByRequester(sellerID uuid.UUID) ([]model.MilkRequest, error) {
	var requests []model.MilkRequest
	err := r.db.Preload("ToSeller").Preload("ToSeller.Location").
		Where("from_seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
