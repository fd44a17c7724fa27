package controllers

import (
	"errors"

	"nutcha-shop/middleware"
	"nutcha-shop/models"
	"nutcha-shop/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// @Summary Checkout state
// @Description Get the current checkout step, accepted forms and live pricing
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [get]
func (ctrl *CheckoutController) GetState(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	view, err := ctrl.checkout.State(c.Request.Context(), sid)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load checkout"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Checkout state", Data: view})
}

// @Summary Submit billing details
// @Description Validate the billing form and advance to shipping
// @Tags Checkout
// @Accept json
// @Produce json
// @Param form body models.BillingDetails true "Billing form"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/billing [post]
func (ctrl *CheckoutController) SubmitBilling(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	var form models.BillingDetails
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		return
	}

	fields, err := ctrl.checkout.SubmitBilling(c.Request.Context(), sid, form)
	if err != nil {
		ctrl.stepError(c, err, "Failed to submit billing details")
		return
	}
	if len(fields) > 0 {
		c.JSON(400, models.ValidationErrorResponse{Success: false, Message: "Please fix the highlighted fields", Fields: fields})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Billing details accepted"})
}

// @Summary Submit shipping details
// @Description Validate the shipping form and advance to payment
// @Tags Checkout
// @Accept json
// @Produce json
// @Param form body models.ShippingDetails true "Shipping form"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/shipping [post]
func (ctrl *CheckoutController) SubmitShipping(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	var form models.ShippingDetails
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		return
	}

	fields, err := ctrl.checkout.SubmitShipping(c.Request.Context(), sid, form)
	if err != nil {
		ctrl.stepError(c, err, "Failed to submit shipping details")
		return
	}
	if len(fields) > 0 {
		c.JSON(400, models.ValidationErrorResponse{Success: false, Message: "Please fix the highlighted fields", Fields: fields})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Shipping details accepted"})
}

// @Summary Submit payment details
// @Description Validate the payment form and run the charge; success advances to review
// @Tags Checkout
// @Accept json
// @Produce json
// @Param form body models.PaymentDetails true "Payment form"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 402 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/payment [post]
func (ctrl *CheckoutController) SubmitPayment(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	var form models.PaymentDetails
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		return
	}

	fields, err := ctrl.checkout.SubmitPayment(c.Request.Context(), sid, form)
	if err != nil {
		if errors.Is(err, services.ErrPaymentDeclined) {
			c.JSON(402, gin.H{"success": false, "message": "Payment was declined. Please try again."})
			return
		}
		ctrl.stepError(c, err, "Failed to process payment")
		return
	}
	if len(fields) > 0 {
		c.JSON(400, models.ValidationErrorResponse{Success: false, Message: "Please fix the highlighted fields", Fields: fields})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Payment accepted"})
}

// @Summary Step back
// @Description Move the checkout flow one step back; previously entered data is kept
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout/back [post]
func (ctrl *CheckoutController) Back(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	draft, err := ctrl.checkout.Back(c.Request.Context(), sid)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to step back"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Moved back", Data: gin.H{"step": draft.Step}})
}

// @Summary Place order
// @Description Freeze the cart and pricing into an immutable order; only allowed from review
// @Tags Checkout
// @Produce json
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/place-order [post]
func (ctrl *CheckoutController) PlaceOrder(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	order, err := ctrl.checkout.PlaceOrder(c.Request.Context(), sid)
	if err != nil {
		ctrl.stepError(c, err, "Failed to place order")
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Order placed", Data: order})
}

// @Summary Current order
// @Description Get the session's most recently placed order
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/current [get]
func (ctrl *CheckoutController) CurrentOrder(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	order, err := ctrl.checkout.CurrentOrder(c.Request.Context(), sid)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load order"})
		return
	}
	if order == nil {
		c.JSON(404, gin.H{"success": false, "message": "No order found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order retrieved", Data: order})
}

// @Summary Continue shopping
// @Description Dismiss the confirmation view and drop the stored order record
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders/current [delete]
func (ctrl *CheckoutController) ContinueShopping(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	if err := ctrl.checkout.ContinueShopping(c.Request.Context(), sid); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear order"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order record cleared"})
}

func (ctrl *CheckoutController) stepError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrWrongStep) {
		c.JSON(409, gin.H{"success": false, "message": "This step is not available right now"})
		return
	}
	c.JSON(500, gin.H{"success": false, "message": fallback})
}
