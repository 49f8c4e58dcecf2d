package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rex-dinner-api/models"
	"rex-dinner-api/store"
)

type CreateReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// CreateReview appends a customer review (public form). New reviews go to
// the front of the collection so the page shows newest first.
func CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	review := models.Review{
		ID:      strconv.FormatInt(now.UnixMilli(), 10),
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
		Date:    now.Format("02.01.2006"),
	}

	reviews := store.Load(Store, store.KeyReviews, []models.Review{})
	reviews = append([]models.Review{review}, reviews...)
	if err := store.Save(Store, store.KeyReviews, reviews); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	Notify.NewReview(review)

	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted successfully", "review": review})
}

// GetReviews returns all reviews, newest first (public).
func GetReviews(c *gin.Context) {
	reviews := store.Load(Store, store.KeyReviews, []models.Review{})
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// DeleteReview removes one review (staff).
func DeleteReview(c *gin.Context) {
	id := c.Param("id")
	reviews := store.Load(Store, store.KeyReviews, []models.Review{})

	remaining := make([]models.Review, 0, len(reviews))
	found := false
	for _, review := range reviews {
		if review.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, review)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if err := store.Save(Store, store.KeyReviews, remaining); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted", "id": id})
}
