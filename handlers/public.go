package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"rex-dinner-api/cache"
	"rex-dinner-api/models"
	"rex-dinner-api/statemachine"
	"rex-dinner-api/store"
)

// GetMenu returns the menu grouped by category (public). Category labels
// are sorted ascending; the order inside a category is the stored order.
// Responses are cached until the next menu mutation.
func GetMenu(c *gin.Context) {
	grouped, ok := MenuView.GetGrouped()
	if !ok {
		items := store.Load(Store, store.KeyMenuItems, store.DefaultMenu())
		grouped = groupByCategory(items)
		MenuView.SetGrouped(grouped)
	}

	count := 0
	for _, items := range grouped.Items {
		count += len(items)
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": grouped.Categories,
		"menu":       grouped.Items,
		"count":      count,
	})
}

// GetSiteContent returns the public display text of the website.
func GetSiteContent(c *gin.Context) {
	cfg := store.LoadOne(Store, store.KeyWebsiteConfig, store.DefaultSiteConfig())
	c.JSON(http.StatusOK, gin.H{
		"title":          cfg.WebsiteSettings.Title,
		"description":    cfg.WebsiteSettings.Description,
		"contactDiscord": cfg.WebsiteSettings.ContactDiscord,
	})
}

// GetWorkflowInfo describes the reservation and order status workflows.
func GetWorkflowInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"order_pipeline":       statemachine.OrderPipeline,
		"reservation_outcomes": statemachine.ReservationOutcomes,
		"description":          "Reservation and order status workflows of the staff panel",
	})
}

func groupByCategory(items []models.MenuItem) cache.GroupedMenu {
	grouped := make(map[string][]models.MenuItem)
	for _, item := range items {
		if item.Category == "" {
			continue
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return cache.GroupedMenu{Categories: categories, Items: grouped}
}
