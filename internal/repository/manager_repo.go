package repository

import (
	"fmt"
	"strconv"
	"strings"

	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ManagerRepository interface {
	Create(tx *gorm.DB, manager *model.Manager) error
	FindByID(id uuid.UUID) (*model.Manager, error)
	FindByUserID(userID uuid.UUID) (*model.Manager, error)
	FindByCode(code string) (*model.Manager, error)
	FindAll() ([]model.Manager, error)
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type managerRepo struct {
	db *gorm.DB
}

func NewManagerRepo(db *gorm.DB) ManagerRepository {
	return &managerRepo{db}
}

// Create assigns the next managerNNN code before inserting
func (r *managerRepo) Create(tx *gorm.DB, manager *model.Manager) error {
	if tx == nil {
		tx = r.db
	}
	if manager.Code == "" {
		manager.Code = nextCode(tx, &model.Manager{}, "manager", 3)
	}
	return tx.Create(manager).Error
}

func (r *managerRepo) FindByID(id uuid.UUID) (*model.Manager, error) {
	var manager model.Manager
	if err := r.db.Preload("User").First(&manager, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *managerRepo) FindByUserID(userID uuid.UUID) (*model.Manager, error) {
	var manager model.Manager
	if err := r.db.First(&manager, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *managerRepo) FindByCode(code string) (*model.Manager, error) {
	var manager model.Manager
	if err := r.db.Preload("User").First(&manager, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *managerRepo) FindAll() ([]model.Manager, error) {
	var managers []model.Manager
	err := r.db.Preload("User").Find(&managers).Error
	return managers, err
}

func (r *managerRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Delete(&model.Manager{}, "id = ?", id).Error
}

// nextCode produces sequential human-readable codes (EMP001, manager001).
// Inherits the source system's last-row+1 scheme, including its tolerance for
// gaps after deletes.
func nextCode(tx *gorm.DB, mdl interface{}, prefix string, width int) string {
	var last struct {
		Code string
	}
	num := 1
	err := tx.Model(mdl).Unscoped().Order("code DESC").Limit(1).Select("code").Scan(&last).Error
	if err == nil && strings.HasPrefix(last.Code, prefix) {
		if n, convErr := strconv.Atoi(last.Code[len(prefix):]); convErr == nil {
			num = n + 1
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, num)
}
