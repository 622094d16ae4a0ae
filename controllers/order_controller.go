package controllers

import (
	"net/http"
	"strconv"

	"cyber-shop/models"
	"cyber-shop/repositories"
	"cyber-shop/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{
		orderService: services.NewOrderService(),
	}
}

// CreateOrder godoc
// @Summary Place an order
// @Description Inserts the order and its line items atomically
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order payload", "error": err.Error()})
		return
	}

	order, err := ctrl.orderService.Create(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order", "error": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order created", "order_id": order.ID, "order": order})
}

// ListOrders godoc
// @Summary List the acting user's orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Order
// @Router /api/orders [get]
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.orderService.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list orders", "error": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get an order with its items and product snapshots
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctrl.orderService.GetByID(id, userID)
	if err == repositories.ErrOrderNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get order", "error": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, order)
}
