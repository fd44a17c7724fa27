package controllers

import (
	"errors"

	"nutcha-shop/middleware"
	"nutcha-shop/models"
	"nutcha-shop/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contact *services.ContactService
}

func NewContactController(contact *services.ContactService) *ContactController {
	return &ContactController{contact: contact}
}

// @Summary Submit contact message
// @Description Send a contact form message; delivery is retried before failing
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body models.ContactRequest true "Contact message"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) Submit(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid contact message", Error: err.Error()})
		return
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := ctrl.contact.Submit(c.Request.Context(), sid, msg); err != nil {
		if errors.Is(err, services.ErrContactDeliveryFailed) {
			c.JSON(503, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to send message"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Message sent. We'll get back to you soon!"})
}

// @Summary Get contact draft
// @Description Get the session's saved contact form draft
// @Tags Contact
// @Produce json
// @Success 200 {object} models.Response
// @Router /contact/draft [get]
func (ctrl *ContactController) GetDraft(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	draft, err := ctrl.contact.LoadDraft(c.Request.Context(), sid)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load draft"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Draft retrieved", Data: draft})
}

// @Summary Save contact draft
// @Description Persist the partially filled contact form for the session
// @Tags Contact
// @Accept json
// @Produce json
// @Param draft body models.ContactMessage true "Draft"
// @Success 200 {object} models.Response
// @Router /contact/draft [put]
func (ctrl *ContactController) SaveDraft(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	var draft models.ContactMessage
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid draft", Error: err.Error()})
		return
	}

	if err := ctrl.contact.SaveDraft(c.Request.Context(), sid, &draft); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save draft"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Draft saved"})
}
