package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cyber-shop/config"
	"cyber-shop/libs"
	"cyber-shop/models"
	"cyber-shop/repositories"
	"cyber-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{
		productService: services.NewProductService(),
	}
}

func productCacheKey(rawQuery string) string {
	return "products_list:" + rawQuery
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "products_list:*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// parseProductQuery reads catalog filter params. Malformed numbers fall back
// to defaults; a price bound only survives when it parses and its partner is
// present too.
func parseProductQuery(c *gin.Context) models.ProductQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = services.DefaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if err != nil {
		limit = services.DefaultLimit
	}

	q := models.ProductQuery{
		Page:    page,
		Limit:   limit,
		SortBy:  strings.TrimSpace(c.Query("sortBy")),
		Keyword: strings.TrimSpace(c.Query("keyword")),
	}

	if minStr, maxStr := c.Query("minPrice"), c.Query("maxPrice"); minStr != "" && maxStr != "" {
		minPrice, errMin := decimal.NewFromString(minStr)
		maxPrice, errMax := decimal.NewFromString(maxStr)
		if errMin == nil && errMax == nil {
			q.MinPrice = &minPrice
			q.MaxPrice = &maxPrice
		}
	}

	if categories := c.Query("categories"); categories != "" {
		for _, cat := range strings.Split(categories, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				q.Categories = append(q.Categories, cat)
			}
		}
	}

	return q
}

// ListProducts godoc
// @Summary List products
// @Description Get a page of products with filtering and sorting
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param sortBy query string false "Sort order" Enums(price-asc, price-desc, sales, rating)
// @Param minPrice query number false "Minimum price (requires maxPrice)"
// @Param maxPrice query number false "Maximum price (requires minPrice)"
// @Param categories query string false "Comma-separated category names"
// @Param keyword query string false "Search by product name"
// @Success 200 {object} models.ProductPage
// @Router /api/products [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	cacheKey := productCacheKey(c.Request.URL.RawQuery)
	ctx := context.Background()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	page, err := ctrl.productService.List(parseProductQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list products", "error": errorDetail(err)})
		return
	}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(page); err == nil {
			config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, page)
}

// GetProductByID godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctrl.productService.GetByID(id)
	if err == repositories.ErrProductNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get product", "error": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.CreateProductRequest true "Product"
// @Success 200 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product payload", "error": err.Error()})
		return
	}

	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price must not be negative"})
		return
	}
	if req.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Stock must not be negative"})
		return
	}

	product, err := ctrl.productService.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product", "error": errorDetail(err)})
		return
	}

	invalidateProductCache()

	c.JSON(http.StatusOK, gin.H{"message": "Product created", "product": product})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Partial update; only supplied fields are overwritten
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product payload", "error": err.Error()})
		return
	}

	if req.Price != nil && req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price must not be negative"})
		return
	}
	if req.Stock != nil && *req.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Stock must not be negative"})
		return
	}

	product, err := ctrl.productService.Update(id, req)
	if err == repositories.ErrProductNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product", "error": errorDetail(err)})
		return
	}

	invalidateProductCache()

	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := ctrl.productService.Delete(id)
	if err == repositories.ErrProductNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product", "error": errorDetail(err)})
		return
	}

	invalidateProductCache()

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// UploadProductImage godoc
// @Summary Upload product image
// @Description Stages the image on disk and pushes it to cloudinary when configured
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param image formData file true "Product image"
// @Success 200 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id}/image [post]
func (ctrl *ProductController) UploadProductImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if _, err := ctrl.productService.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file required"})
		return
	}

	localPath, err := libs.SaveUploadedImage(c, file, "products")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	imageURL := "/" + strings.TrimPrefix(localPath, "./")
	if libs.CloudinaryConfigured() {
		hostedURL, err := libs.UploadToCloudinary(localPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed", "error": errorDetail(err)})
			return
		}
		imageURL = hostedURL
	}

	if err := ctrl.productService.UpdateImage(id, imageURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save image", "error": errorDetail(err)})
		return
	}

	invalidateProductCache()

	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded", "image": imageURL})
}

// errorDetail hides internals in production mode.
func errorDetail(err error) string {
	if config.AppConfig != nil && config.AppConfig.AppEnv == "production" {
		return ""
	}
	return err.Error()
}
