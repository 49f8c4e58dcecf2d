package handlers

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"rex-dinner-api/middleware"
	"rex-dinner-api/models"
	"rex-dinner-api/store"
)

type CreateUserRequest struct {
	Username      string           `json:"username" binding:"required"`
	Password      string           `json:"password" binding:"required"`
	Role          string           `json:"role"`
	Group         models.UserGroup `json:"group" binding:"required,oneof=owner perso mitarbeiter"`
	DiscordUserID string           `json:"discordUserId"`
}

type UpdateUserRequest struct {
	Username      string           `json:"username" binding:"required"`
	Role          string           `json:"role"`
	Group         models.UserGroup `json:"group" binding:"required,oneof=owner perso mitarbeiter"`
	DiscordUserID string           `json:"discordUserId"`
}

// ListUsers returns all accounts without their password hashes.
func ListUsers(c *gin.Context) {
	users := store.Load(Store, store.KeyUsers, store.DefaultUsers())
	public := make([]map[string]any, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	c.JSON(http.StatusOK, gin.H{"count": len(public), "users": public})
}

// CreateUser adds a staff account. New accounts must change their password
// on first login. When a Discord id is given, the credentials are sent as
// a best-effort DM.
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	role := req.Role
	if role == "" {
		role = "admin"
	}

	users := store.Load(Store, store.KeyUsers, store.DefaultUsers())
	user := models.User{
		ID:                 nextUserID(users),
		Username:           req.Username,
		PasswordHash:       string(hash),
		Role:               role,
		Group:              req.Group,
		MustChangePassword: true,
		DiscordUserID:      req.DiscordUserID,
	}
	users = append(users, user)
	if err := store.Save(Store, store.KeyUsers, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	if user.DiscordUserID != "" {
		Notify.SendLoginDM(user.DiscordUserID, user.Username, req.Password)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": user.Public()})
}

// UpdateUser edits an account's profile fields. Passwords change only via
// the reset and change-password flows.
func UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users := store.Load(Store, store.KeyUsers, store.DefaultUsers())
	idx := indexOfUser(users, id)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	users[idx].Username = req.Username
	if req.Role != "" {
		users[idx].Role = req.Role
	}
	users[idx].Group = req.Group
	users[idx].DiscordUserID = req.DiscordUserID

	if err := store.Save(Store, store.KeyUsers, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": users[idx].Public()})
}

// DeleteUser removes an account and fires an access-revoked notification.
// The last remaining account cannot be deleted.
func DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	users := store.Load(Store, store.KeyUsers, store.DefaultUsers())
	if len(users) <= 1 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete the last remaining user"})
		return
	}
	idx := indexOfUser(users, id)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	revoked := users[idx]
	remaining := append(users[:idx:idx], users[idx+1:]...)
	if err := store.Save(Store, store.KeyUsers, remaining); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save users"})
		return
	}

	adminName := "Admin"
	if claims := middleware.GetClaims(c); claims != nil {
		adminName = claims.Username
	}
	Notify.AccessRevoked(revoked, adminName)

	c.JSON(http.StatusOK, gin.H{"message": "User deleted", "id": id})
}

// ResetPassword issues a temporary 8-character password for an account and
// forces a change on the next login. The plaintext is returned once, to
// the staff member performing the reset.
func ResetPassword(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	users := store.Load(Store, store.KeyUsers, store.DefaultUsers())
	idx := indexOfUser(users, id)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	tempPassword, err := generateTemporaryPassword()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate password"})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	users[idx].PasswordHash = string(hash)
	users[idx].MustChangePassword = true
	users[idx].IsTemporaryPassword = true
	if err := store.Save(Store, store.KeyUsers, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	if users[idx].DiscordUserID != "" {
		Notify.SendLoginDM(users[idx].DiscordUserID, users[idx].Username, tempPassword)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Temporary password issued",
		"username":           users[idx].Username,
		"temporary_password": tempPassword,
	})
}

const tempPasswordChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func generateTemporaryPassword() (string, error) {
	result := make([]byte, 8)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tempPasswordChars))))
		if err != nil {
			return "", err
		}
		result[i] = tempPasswordChars[n.Int64()]
	}
	return string(result), nil
}

func nextUserID(users []models.User) int {
	maxID := 0
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}
