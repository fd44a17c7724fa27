package controllers

import (
	"math"
	"strconv"

	"nutcha-shop/middleware"
	"nutcha-shop/models"
	"nutcha-shop/repositories"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	history repositories.OrderHistoryRepository
}

func NewOrderController(history repositories.OrderHistoryRepository) *OrderController {
	return &OrderController{history: history}
}

// @Summary Order history
// @Description List the session's past orders, newest first
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetHistory(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	orders, err := ctrl.history.ListBySession(c.Request.Context(), sid)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load order history"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order history retrieved", Data: orders})
}

// @Summary All orders
// @Description Paginated list of every placed order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := ctrl.history.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load orders"})
		return
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved",
		Data:    orders,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}
