package services

import (
	"cyber-shop/models"
	"cyber-shop/repositories"

	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

// NormalizeQuery applies catalog defaults: page 1, limit 12, and drops a
// half-open price range (both bounds or none).
func NormalizeQuery(q models.ProductQuery) models.ProductQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.MinPrice == nil || q.MaxPrice == nil {
		q.MinPrice = nil
		q.MaxPrice = nil
	}
	return q
}

func (s *ProductService) List(q models.ProductQuery) (*models.ProductPage, error) {
	q = NormalizeQuery(q)

	products, total, err := s.productRepo.List(q)
	if err != nil {
		return nil, err
	}
	return &models.ProductPage{Total: total, List: products}, nil
}

func (s *ProductService) GetByID(id int) (*models.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *ProductService) Create(req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
		Rating:      req.Rating,
		Brand:       req.Brand,
		Category:    req.Category,
		Sales:       req.Sales,
		Reviews:     req.Reviews,
		IsNew:       req.IsNew,
		IsHot:       req.IsHot,
		Discount:    req.Discount,
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = *req.OriginalPrice
	} else {
		product.OriginalPrice = decimal.Zero
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update overwrites only the fields supplied in the request.
func (s *ProductService) Update(id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Sales != nil {
		product.Sales = *req.Sales
	}
	if req.Reviews != nil {
		product.Reviews = *req.Reviews
	}
	if req.IsNew != nil {
		product.IsNew = *req.IsNew
	}
	if req.IsHot != nil {
		product.IsHot = *req.IsHot
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = *req.OriginalPrice
	}
	if req.Discount != nil {
		product.Discount = *req.Discount
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(id int) error {
	return s.productRepo.Delete(id)
}

func (s *ProductService) UpdateImage(id int, imageURL string) error {
	return s.productRepo.UpdateImage(id, imageURL)
}
