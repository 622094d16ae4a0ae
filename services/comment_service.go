package services

import (
	"cyber-shop/models"
	"cyber-shop/repositories"
)

type CommentService struct {
	commentRepo *repositories.CommentRepository
	productRepo *repositories.ProductRepository
}

func NewCommentService() *CommentService {
	return &CommentService{
		commentRepo: repositories.NewCommentRepository(),
		productRepo: repositories.NewProductRepository(),
	}
}

func (s *CommentService) Create(userID int, req models.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:    userID,
		ProductID: req.ProductID,
		Content:   req.Content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListByProduct(productID int) ([]models.Comment, error) {
	return s.commentRepo.FindByProduct(productID)
}
