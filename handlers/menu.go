package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rex-dinner-api/models"
	"rex-dinner-api/store"
)

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       string  `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Rating      float64 `json:"rating" binding:"min=0,max=5"`
}

// ListMenuItems returns the raw menu collection (staff).
func ListMenuItems(c *gin.Context) {
	items := store.Load(Store, store.KeyMenuItems, store.DefaultMenu())
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// AddMenuItem appends a dish with a fresh id (max of existing ids plus
// one, 1 for an empty menu).
func AddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := store.Load(Store, store.KeyMenuItems, store.DefaultMenu())
	item := models.MenuItem{
		ID:          models.NextMenuItemID(items),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Rating:      req.Rating,
	}
	items = append(items, item)

	if err := Store.SaveMenu(items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save menu"})
		return
	}
	MenuView.Invalidate()
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem replaces the matching record.
func UpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := store.Load(Store, store.KeyMenuItems, store.DefaultMenu())
	updated := false
	for i := range items {
		if items[i].ID == id {
			items[i] = models.MenuItem{
				ID:          id,
				Name:        req.Name,
				Description: req.Description,
				Price:       req.Price,
				Category:    req.Category,
				Rating:      req.Rating,
			}
			updated = true
			break
		}
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := Store.SaveMenu(items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save menu"})
		return
	}
	MenuView.Invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "id": id})
}

// DeleteMenuItem filters the matching record out of the collection.
func DeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}

	items := store.Load(Store, store.KeyMenuItems, store.DefaultMenu())
	remaining := make([]models.MenuItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := Store.SaveMenu(remaining); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save menu"})
		return
	}
	MenuView.Invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted", "id": id})
}

// ExportMenu serves the full collection as a downloadable JSON file named
// with the current date.
func ExportMenu(c *gin.Context) {
	items := store.Load(Store, store.KeyMenuItems, store.DefaultMenu())
	filename := "speisekarte_" + time.Now().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.IndentedJSON(http.StatusOK, items)
}

// ImportMenu replaces the whole collection with the uploaded file's
// contents. No merge: the previous collection is gone after a successful
// import. A file that does not parse leaves the collection untouched.
func ImportMenu(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu file required (multipart field 'file')"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read menu file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read menu file"})
		return
	}

	var items []models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu file"})
		return
	}

	if err := Store.SaveMenu(items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save menu"})
		return
	}
	MenuView.Invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Menu imported successfully", "count": len(items)})
}

// RestoreMenu replaces the live collection with the shadow backup written
// alongside the last save.
func RestoreMenu(c *gin.Context) {
	backup, ok := Store.LoadMenuBackup()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No menu backup available"})
		return
	}
	if err := Store.SaveMenu(backup.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore menu"})
		return
	}
	MenuView.Invalidate()
	c.JSON(http.StatusOK, gin.H{
		"message":          "Menu restored from backup",
		"count":            len(backup.Items),
		"backup_timestamp": backup.Timestamp,
		"backup_version":   backup.Version,
	})
}
