package controllers

import (
	"net/http"
	"strconv"

	"cyber-shop/models"
	"cyber-shop/repositories"
	"cyber-shop/services"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	commentService *services.CommentService
}

func NewCommentController() *CommentController {
	return &CommentController{
		commentService: services.NewCommentService(),
	}
}

// CreateComment godoc
// @Summary Post a comment on a product
// @Tags Comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param comment body models.CreateCommentRequest true "Comment"
// @Success 200 {object} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /api/comments [post]
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid comment payload", "error": err.Error()})
		return
	}

	comment, err := ctrl.commentService.Create(userID, req)
	if err == repositories.ErrProductNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to post comment", "error": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment posted", "comment": comment})
}

// ListComments godoc
// @Summary List a product's comments, newest first
// @Tags Comments
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {array} models.Comment
// @Router /api/comments/{productId} [get]
func (ctrl *CommentController) ListComments(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("productId"))

	comments, err := ctrl.commentService.ListByProduct(productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list comments", "error": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, comments)
}
