package devserver

import "github.com/gin-gonic/gin"

// Setup wires every endpoint of the backend contract onto the engine under
// the /api prefix.
func Setup(engine *gin.Engine, store *Store) {
	businessHandler := NewBusinessHandler(store)
	staffHandler := NewStaffHandler(store)
	productHandler := NewProductHandler(store)
	reservationHandler := NewReservationHandler(store)
	orderHandler := NewOrderHandler(store)
	taxHandler := NewTaxHandler(store)

	api := engine.Group("/api")
	api.Use(AuthMiddleware())

	businessRoutes := api.Group("/business")
	{
		businessRoutes.GET("", businessHandler.ListBusinesses)
		businessRoutes.GET("/:registrationNumber", businessHandler.GetBusiness)
	}

	staffRoutes := api.Group("/staff")
	{
		staffRoutes.GET("", staffHandler.ListStaff)
		staffRoutes.POST("", staffHandler.CreateStaff)
		staffRoutes.POST("/login", staffHandler.Login)
		staffRoutes.GET("/:id", staffHandler.GetStaff)
		staffRoutes.PUT("/:id", staffHandler.UpdateStaff)
		staffRoutes.DELETE("/:id", staffHandler.DeleteStaff)
	}

	productRoutes := api.Group("/products")
	{
		productRoutes.GET("", productHandler.ListProducts)
		productRoutes.POST("", productHandler.CreateProduct)
		productRoutes.GET("/:id", productHandler.GetProduct)
		productRoutes.PUT("/:id", productHandler.UpdateProduct)
		productRoutes.DELETE("/:id", productHandler.DeleteProduct)

		productRoutes.GET("/:id/staff", productHandler.ListProductStaff)
		productRoutes.POST("/:id/staff", productHandler.LinkProductStaff)
		productRoutes.PUT("/:id/staff/:staffId", productHandler.UpdateProductStaff)
		productRoutes.DELETE("/:id/staff/:staffId", productHandler.UnlinkProductStaff)
	}

	reservationRoutes := api.Group("/reservations")
	{
		reservationRoutes.GET("/availability", reservationHandler.Availability)
		reservationRoutes.GET("/details", reservationHandler.Details)
		reservationRoutes.POST("", reservationHandler.CreateReservation)
		reservationRoutes.PUT("/:id", reservationHandler.UpdateReservation)
		reservationRoutes.PUT("/:id/status", reservationHandler.UpdateReservationStatus)
	}

	orderRoutes := api.Group("/orders")
	{
		orderRoutes.POST("", orderHandler.CreateOrder)
		orderRoutes.GET("", orderHandler.ListOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrder)
		orderRoutes.POST("/:id/lines", orderHandler.AddOrderLine)
		orderRoutes.PUT("/:id/lines/:lineId", orderHandler.UpdateOrderLine)
		orderRoutes.DELETE("/:id/lines/:lineId", orderHandler.DeleteOrderLine)
		orderRoutes.POST("/:id/calculate", orderHandler.CalculateOrder)
		orderRoutes.POST("/:id/close", orderHandler.CloseOrder)
	}

	taxRoutes := api.Group("/tax")
	{
		taxRoutes.GET("", taxHandler.ListTaxes)
		taxRoutes.POST("", taxHandler.CreateTax)
		taxRoutes.GET("/:id", taxHandler.GetTax)
		taxRoutes.PUT("/:id", taxHandler.UpdateTax)
		taxRoutes.DELETE("/:id", taxHandler.DeleteTax)
	}
}
