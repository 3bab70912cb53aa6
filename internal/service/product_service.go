package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-stockflow/internal/apperr"
	"go-stockflow/internal/model"
	"go-stockflow/internal/policy"
	"go-stockflow/internal/repository"
	"go-stockflow/pkg/validator"
)

type ProductService interface {
	CreateProduct(actor policy.Actor, product *model.Product) error
	UpdateProduct(actor policy.Actor, id uuid.UUID, product *model.Product) (*model.Product, error)
	DeactivateProduct(actor policy.Actor, id uuid.UUID) (*model.Product, error)
	GetProducts(actor policy.Actor) ([]model.Product, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(pRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: pRepo}
}

func (s *productService) CreateProduct(actor policy.Actor, product *model.Product) error {
	if !policy.CanManageProducts(actor) {
		return apperr.Forbidden("Only admin can manage products")
	}

	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		firstErr := errs[0]
		return apperr.Validation(fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	// SKU is the unique business key
	existing, _ := s.productRepo.FindBySKU(product.SKU)
	if existing != nil && existing.ID != uuid.Nil {
		return apperr.Validation("SKU already exists")
	}

	return s.productRepo.Create(product)
}

func (s *productService) UpdateProduct(actor policy.Actor, id uuid.UUID, product *model.Product) (*model.Product, error) {
	if !policy.CanManageProducts(actor) {
		return nil, apperr.Forbidden("Only admin can manage products")
	}

	existing, err := s.findProduct(id)
	if err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.Validation(fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	existing.SKU = product.SKU
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Category = product.Category
	existing.Price = product.Price
	existing.StockQuantity = product.StockQuantity
	existing.Unit = product.Unit

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeactivateProduct soft-disables a product instead of deleting it, so
// existing requests keep a resolvable reference
func (s *productService) DeactivateProduct(actor policy.Actor, id uuid.UUID) (*model.Product, error) {
	if !policy.CanManageProducts(actor) {
		return nil, apperr.Forbidden("Only admin can manage products")
	}

	product, err := s.findProduct(id)
	if err != nil {
		return nil, err
	}

	product.IsActive = false
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProducts lists every product for admins and only active products for staff
func (s *productService) GetProducts(actor policy.Actor) ([]model.Product, error) {
	if policy.CanManageProducts(actor) {
		return s.productRepo.FindAll()
	}
	return s.productRepo.FindActive()
}

func (s *productService) GetProduct(id uuid.UUID) (*model.Product, error) {
	return s.findProduct(id)
}

func (s *productService) findProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, err
	}
	return product, nil
}
