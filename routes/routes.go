package routes

import (
	"cyber-shop/controllers"
	"cyber-shop/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	productCtrl := controllers.NewProductController()
	userCtrl := controllers.NewUserController()
	orderCtrl := controllers.NewOrderController()
	commentCtrl := controllers.NewCommentController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/products", productCtrl.ListProducts)
		api.GET("/products/:id", productCtrl.GetProductByID)
		api.POST("/products", productCtrl.CreateProduct)
		api.PUT("/products/:id", productCtrl.UpdateProduct)
		api.DELETE("/products/:id", productCtrl.DeleteProduct)
		api.POST("/products/:id/image", productCtrl.UploadProductImage)

		api.POST("/user/register", userCtrl.Register)
		api.POST("/user/login", userCtrl.Login)
		api.GET("/user/:id", userCtrl.GetUserByID)
		api.PUT("/user/:id", middleware.AuthMiddleware(), userCtrl.UpdateUser)

		api.GET("/comments/:productId", commentCtrl.ListComments)
		api.POST("/comments", middleware.AuthMiddleware(), commentCtrl.CreateComment)

		orders := api.Group("/orders")
		orders.Use(middleware.AuthMiddleware())
		{
			orders.POST("", orderCtrl.CreateOrder)
			orders.GET("", orderCtrl.ListOrders)
			orders.GET("/:id", orderCtrl.GetOrderByID)
		}
	}

	router.Static("/uploads", "./uploads")
}
