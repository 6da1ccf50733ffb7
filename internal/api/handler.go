package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pharmacy-service/internal/models"
	"pharmacy-service/internal/service"
	"pharmacy-service/internal/store"
)

// Handler contains the HTTP handlers for the back-office API.
type Handler struct {
	store  *store.Store
	orders *service.OrderService
	auth   *service.AuthService
}

// NewHandler creates a new HTTP handler.
func NewHandler(st *store.Store, orders *service.OrderService, auth *service.AuthService) *Handler {
	return &Handler{
		store:  st,
		orders: orders,
		auth:   auth,
	}
}

// SetupRoutes sets up HTTP routes. rateLimit uses the limiter format
// notation, e.g. "100-M" for 100 requests per minute.
func (h *Handler) SetupRoutes(router *gin.Engine, rateLimit string) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(RateLimit(rateLimit))
	{
		api.GET("/dashboard/stats", h.getDashboardStats)

		api.POST("/auth/login", h.login)

		medications := api.Group("/medications")
		{
			medications.GET("", h.listMedications)
			medications.GET("/low-stock", h.listLowStockMedications)
			medications.GET("/search", h.searchMedications)
			medications.GET("/:id", h.getMedication)
			medications.POST("", h.createMedication)
			medications.PUT("/:id", h.updateMedication)
			medications.DELETE("/:id", h.deleteMedication)
		}

		suppliers := api.Group("/suppliers")
		{
			suppliers.GET("", h.listSuppliers)
			suppliers.GET("/:id", h.getSupplier)
			suppliers.POST("", h.createSupplier)
			suppliers.PUT("/:id", h.updateSupplier)
			suppliers.DELETE("/:id", h.deleteSupplier)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", h.listCustomers)
			customers.GET("/:id", h.getCustomer)
			customers.GET("/:id/orders", h.listCustomerOrders)
			customers.POST("", h.createCustomer)
			customers.PUT("/:id", h.updateCustomer)
			customers.DELETE("/:id", h.deleteCustomer)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", h.listOrders)
			orders.GET("/recent", h.listRecentOrders)
			orders.GET("/:id", h.getOrder)
			orders.POST("", h.createOrder)
			orders.PATCH("/:id/status", h.updateOrderStatus)
			orders.DELETE("/:id", h.deleteOrder)
		}

		supplyOrders := api.Group("/supply-orders")
		{
			supplyOrders.GET("", h.listSupplyOrders)
			supplyOrders.GET("/:id", h.getSupplyOrder)
			supplyOrders.POST("", h.createSupplyOrder)
			supplyOrders.PATCH("/:id/status", h.updateSupplyOrderStatus)
			supplyOrders.DELETE("/:id", h.deleteSupplyOrder)
		}

		users := api.Group("/users")
		users.Use(h.requireRole(models.RoleAdmin))
		{
			users.GET("", h.listUsers)
			users.POST("", h.createUser)
			users.PUT("/:id", h.updateUser)
			users.DELETE("/:id", h.deleteUser)
		}
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// getDashboardStats serves the dashboard aggregates
func (h *Handler) getDashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetDashboardStats())
}

// errorJSON writes the structured error payload every failure path uses.
func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// parseID parses the :id path parameter, replying 400 on garbage.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
