package controllers

import (
	"nutcha-shop/middleware"
	"nutcha-shop/models"
	"nutcha-shop/repositories"
	"nutcha-shop/services"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	prefs *services.PreferenceService
}

func NewPreferenceController(prefs *services.PreferenceService) *PreferenceController {
	return &PreferenceController{prefs: prefs}
}

// @Summary List favorites
// @Tags Preferences
// @Produce json
// @Success 200 {object} models.Response
// @Router /favorites [get]
func (ctrl *PreferenceController) GetFavorites(c *gin.Context) {
	ctrl.list(c, repositories.KindFavorites)
}

// @Summary Toggle favorite
// @Description Add the product id to favorites, or remove it when already present
// @Tags Preferences
// @Accept json
// @Produce json
// @Param favorite body models.FavoriteRequest true "Product id"
// @Success 200 {object} models.Response
// @Router /favorites [post]
func (ctrl *PreferenceController) ToggleFavorite(c *gin.Context) {
	ctrl.toggle(c, repositories.KindFavorites)
}

// @Summary List bookmarks
// @Tags Preferences
// @Produce json
// @Success 200 {object} models.Response
// @Router /bookmarks [get]
func (ctrl *PreferenceController) GetBookmarks(c *gin.Context) {
	ctrl.list(c, repositories.KindBookmarks)
}

// @Summary Toggle bookmark
// @Tags Preferences
// @Accept json
// @Produce json
// @Param bookmark body models.FavoriteRequest true "Product id"
// @Success 200 {object} models.Response
// @Router /bookmarks [post]
func (ctrl *PreferenceController) ToggleBookmark(c *gin.Context) {
	ctrl.toggle(c, repositories.KindBookmarks)
}

// @Summary Get dark mode
// @Tags Preferences
// @Produce json
// @Success 200 {object} models.Response
// @Router /preferences/dark-mode [get]
func (ctrl *PreferenceController) GetDarkMode(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	enabled, err := ctrl.prefs.DarkMode(c.Request.Context(), sid)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load preference"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Preference retrieved", Data: gin.H{"enabled": enabled}})
}

// @Summary Set dark mode
// @Tags Preferences
// @Accept json
// @Produce json
// @Param preference body models.DarkModeRequest true "Dark mode flag"
// @Success 200 {object} models.Response
// @Router /preferences/dark-mode [put]
func (ctrl *PreferenceController) SetDarkMode(c *gin.Context) {
	sid := c.GetString(middleware.SessionKey)

	var req models.DarkModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.prefs.SetDarkMode(c.Request.Context(), sid, req.Enabled); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save preference"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Preference saved", Data: gin.H{"enabled": req.Enabled}})
}

func (ctrl *PreferenceController) list(c *gin.Context, kind string) {
	sid := c.GetString(middleware.SessionKey)

	ids, err := ctrl.prefs.List(c.Request.Context(), kind, sid)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load " + kind})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Retrieved " + kind, Data: ids})
}

func (ctrl *PreferenceController) toggle(c *gin.Context, kind string) {
	sid := c.GetString(middleware.SessionKey)

	var req models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	added, ids, err := ctrl.prefs.Toggle(c.Request.Context(), kind, sid, req.ID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update " + kind})
		return
	}

	message := "Removed from " + kind
	if added {
		message = "Added to " + kind
	}
	c.JSON(200, models.Response{Success: true, Message: message, Data: ids})
}
