package services

import (
	"log"

	"cyber-shop/models"
	"cyber-shop/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	orderRepo *repositories.OrderRepository
	userRepo  *repositories.UserRepository
	mail      *MailService
}

func NewOrderService() *OrderService {
	svc := &OrderService{
		orderRepo: repositories.NewOrderRepository(),
		userRepo:  repositories.NewUserRepository(),
	}
	mail, err := NewMailService()
	if err != nil {
		log.Println("Order confirmation emails disabled:", err)
	} else {
		svc.mail = mail
	}
	return svc
}

// Create places an order for the acting user. When the caller omits
// total_price it is computed from the line items.
func (s *OrderService) Create(userID int, req models.CreateOrderRequest) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(req.Items))
	computedTotal := decimal.Zero
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
		computedTotal = computedTotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	total := req.TotalPrice
	if total.IsZero() {
		total = computedTotal
	}

	order := &models.Order{
		OrderNo:    uuid.NewString(),
		UserID:     userID,
		TotalPrice: total,
		Status:     models.OrderStatusPending,
		Items:      items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.sendConfirmation(userID, order)
	return order, nil
}

func (s *OrderService) sendConfirmation(userID int, order *models.Order) {
	if s.mail == nil {
		return
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil || user.Email == "" {
		return
	}
	if err := s.mail.SendOrderConfirmation(user.Email, order); err != nil {
		log.Printf("Failed to send order confirmation for %s: %v", order.OrderNo, err)
	}
}

func (s *OrderService) ListByUser(userID int) ([]models.Order, error) {
	return s.orderRepo.FindByUser(userID)
}

func (s *OrderService) GetByID(id, userID int) (*models.Order, error) {
	return s.orderRepo.FindByID(id, userID)
}
