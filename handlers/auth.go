package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"rex-dinner-api/access"
	"rex-dinner-api/middleware"
	"rex-dinner-api/models"
	"rex-dinner-api/store"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// Login checks credentials against the stored user collection. The error
// message is the same for an unknown username and a wrong password. A user
// flagged for a password change gets a change-scoped token instead of a
// session.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users := store.Load(Store, store.KeyUsers, store.DefaultUsers())
	user, ok := findUserByName(users, req.Username)
	if !ok || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if user.MustChangePassword || user.IsTemporaryPassword {
		changeToken, err := middleware.GeneratePasswordChangeToken(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"password_change_required": true,
			"change_token":             changeToken,
			"message":                  "You must change your password before logging in",
		})
		return
	}

	issueSession(c, &user)
}

// ChangePassword completes the forced password change (change-scoped
// token) or changes a logged-in user's own password (session token). The
// new password must match its confirmation and be at least 6 characters;
// nothing is persisted on a validation failure.
func ChangePassword(c *gin.Context) {
	tokenStr, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
		return
	}
	claims, err := middleware.ParseToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}
	if len(req.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}

	users := store.Load(Store, store.KeyUsers, store.DefaultUsers())
	idx := indexOfUser(users, claims.UserID)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	users[idx].PasswordHash = string(hash)
	users[idx].MustChangePassword = false
	users[idx].IsTemporaryPassword = false

	if err := store.Save(Store, store.KeyUsers, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	issueSession(c, &users[idx])
}

// GetProfile returns the caller's account and visible panel sections.
func GetProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	users := store.Load(Store, store.KeyUsers, store.DefaultUsers())
	idx := indexOfUser(users, claims.UserID)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":     users[idx].Public(),
		"sections": visibleSectionList(claims.Group),
	})
}

func issueSession(c *gin.Context, user *models.User) {
	token, err := middleware.GenerateSessionToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"token":    token,
		"user":     user.Public(),
		"sections": visibleSectionList(user.Group),
	})
}

func visibleSectionList(group models.UserGroup) []access.Section {
	visible := access.VisibleSections(group)
	var sections []access.Section
	for _, s := range access.AllSections {
		if visible[s] {
			sections = append(sections, s)
		}
	}
	return sections
}

func findUserByName(users []models.User, username string) (models.User, bool) {
	for _, u := range users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

func indexOfUser(users []models.User, id int) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
