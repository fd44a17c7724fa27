package controllers

import (
	"nutcha-shop/middleware"
	"nutcha-shop/models"
	"nutcha-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts    *services.CartService
	checkout *services.CheckoutService
}

func NewCartController(carts *services.CartService, checkout *services.CheckoutService) *CartController {
	return &CartController{carts: carts, checkout: checkout}
}

func (ctrl *CartController) cartView(c *gin.Context, lines []models.CartLine) (*models.CartView, error) {
	state, err := ctrl.checkout.State(c.Request.Context(), c.GetString(middleware.SessionKey))
	if err != nil {
		return nil, err
	}
	return &models.CartView{
		Lines:   lines,
		Count:   services.CountItems(lines),
		Pricing: services.ComputePricing(lines, state.Draft.DiscountRate),
	}, nil
}

// @Summary Get cart
// @Description Get the session's cart lines with live pricing
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	lines, err := ctrl.carts.GetLines(c.Request.Context(), sid)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	view, err := ctrl.cartView(c, lines)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Cart retrieved", Data: view})
}

// @Summary Add cart line
// @Description Add an item to the cart; a line with the same (id, name, size) is merged
// @Tags Cart
// @Accept json
// @Produce json
// @Param line body models.AddCartLineRequest true "Line to add"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddLine(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	var req models.AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid cart line", Error: err.Error()})
		return
	}

	line := models.CartLine{
		ID:        req.ID,
		Name:      req.Name,
		Size:      req.Size,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
		Image:     req.Image,
	}

	lines, err := ctrl.carts.AddLine(c.Request.Context(), sid, line)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to add item"})
		return
	}

	view, err := ctrl.cartView(c, lines)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Item added to cart", Data: view})
}

// @Summary Update line quantity
// @Description Set the quantity of a cart line; values below 1 are ignored
// @Tags Cart
// @Accept json
// @Produce json
// @Param line body models.UpdateQuantityRequest true "Line and new quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/quantity [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}
	if req.Size == "" {
		req.Size = models.DefaultSize
	}

	lines, err := ctrl.carts.UpdateQuantity(c.Request.Context(), sid, req.ID, req.Name, req.Size, req.Quantity)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update quantity"})
		return
	}

	view, err := ctrl.cartView(c, lines)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Quantity updated", Data: view})
}

// @Summary Remove cart line
// @Description Delete a line from the cart; removing an absent line is a no-op
// @Tags Cart
// @Accept json
// @Produce json
// @Param line body models.LineKeyRequest true "Line key"
// @Success 200 {object} models.Response
// @Router /cart/items [delete]
func (ctrl *CartController) RemoveLine(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	var req models.LineKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}
	if req.Size == "" {
		req.Size = models.DefaultSize
	}

	lines, err := ctrl.carts.RemoveLine(c.Request.Context(), sid, req.ID, req.Name, req.Size)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to remove item"})
		return
	}

	view, err := ctrl.cartView(c, lines)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Item removed", Data: view})
}

// @Summary Save line for later
// @Description Flag a line as saved for later; it is excluded from pricing and checkout
// @Tags Cart
// @Accept json
// @Produce json
// @Param line body models.LineKeyRequest true "Line key"
// @Success 200 {object} models.Response
// @Router /cart/items/save [post]
func (ctrl *CartController) SaveForLater(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	var req models.LineKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}
	if req.Size == "" {
		req.Size = models.DefaultSize
	}

	lines, err := ctrl.carts.SaveForLater(c.Request.Context(), sid, req.ID, req.Name, req.Size)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save item"})
		return
	}

	view, err := ctrl.cartView(c, lines)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Item saved for later", Data: view})
}

// @Summary Clear cart
// @Description Empty the cart unconditionally
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	if err := ctrl.carts.Clear(c.Request.Context(), sid); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Cart cleared"})
}

// @Summary Apply coupon
// @Description Validate a coupon code and store its discount rate for checkout
// @Tags Cart
// @Accept json
// @Produce json
// @Param coupon body models.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/coupon [post]
func (ctrl *CartController) ApplyCoupon(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	var req models.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	rate, ok, err := ctrl.checkout.ApplyCoupon(c.Request.Context(), sid, req.Code)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to apply coupon"})
		return
	}
	if !ok {
		c.JSON(400, gin.H{"success": false, "message": "Invalid coupon code"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Coupon applied",
		Data:    gin.H{"discount_rate": rate},
	})
}
