package repository

import (
	"go-stockflow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(request *model.Request) error
	FindAll() ([]model.Request, error)
	FindByOwner(ownerID uuid.UUID) ([]model.Request, error)
	FindByID(id uuid.UUID) (*model.Request, error)
	Save(request *model.Request) error
	Delete(id uuid.UUID) error
}

type requestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) RequestRepository {
	return &requestRepo{db}
}

func (r *requestRepo) Create(request *model.Request) error {
	return r.db.Create(request).Error
}

func (r *requestRepo) FindAll() ([]model.Request, error) {
	var requests []model.Request
	err := r.db.Preload("User").Preload("Product").
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *requestRepo) FindByOwner(ownerID uuid.UUID) ([]model.Request, error) {
	var requests []model.Request
	err := r.db.Preload("User").Preload("Product").
		Where("user_id = ?", ownerID).
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *requestRepo) FindByID(id uuid.UUID) (*model.Request, error) {
	var request model.Request
	err := r.db.Preload("User").Preload("Product").
		Preload("ApprovedBy").Preload("LastModifiedBy").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepo) Save(request *model.Request) error {
	return r.db.Save(request).Error
}

func (r *requestRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Request{}, "id = ?", id).Error
}
