package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rex-dinner-api/models"
	"rex-dinner-api/store"
)

type SiteConfigRequest struct {
	DiscordChannels struct {
		Reservations string `json:"reservations" binding:"required"`
		Orders       string `json:"orders" binding:"required"`
		Reviews      string `json:"reviews" binding:"required"`
	} `json:"discordChannels" binding:"required"`
	WebsiteSettings struct {
		Title          string `json:"title" binding:"required"`
		Description    string `json:"description"`
		ContactDiscord string `json:"contactDiscord"`
	} `json:"websiteSettings" binding:"required"`
}

// GetSiteConfig returns the full singleton configuration (staff).
func GetSiteConfig(c *gin.Context) {
	cfg := store.LoadOne(Store, store.KeyWebsiteConfig, store.DefaultSiteConfig())
	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// UpdateSiteConfig overwrites the singleton record on save and pushes the
// new channel wiring to the notification collaborator, best-effort.
func UpdateSiteConfig(c *gin.Context) {
	var req SiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := models.SiteConfig{
		DiscordChannels: models.DiscordChannels{
			Reservations: req.DiscordChannels.Reservations,
			Orders:       req.DiscordChannels.Orders,
			Reviews:      req.DiscordChannels.Reviews,
		},
		WebsiteSettings: models.WebsiteSettings{
			Title:          req.WebsiteSettings.Title,
			Description:    req.WebsiteSettings.Description,
			ContactDiscord: req.WebsiteSettings.ContactDiscord,
		},
	}
	if err := store.SaveOne(Store, store.KeyWebsiteConfig, cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save configuration"})
		return
	}

	Notify.ChannelsUpdated(cfg.DiscordChannels)

	c.JSON(http.StatusOK, gin.H{"message": "Configuration saved successfully", "config": cfg})
}
