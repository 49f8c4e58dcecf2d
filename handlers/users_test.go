package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rex-dinner-api/models"
	"rex-dinner-api/store"
)

func TestDeleteLastUserRejected(t *testing.T) {
	r, s, notifier := setupTest(t)
	seedUser(t, s, models.User{ID: 1, Username: "admin", Role: "admin", Group: models.GroupOwner}, "secret123")

	w := doJSON(t, r, http.MethodDelete, "/api/admin/users/1", ownerToken(t), nil)
	require.Equal(t, http.StatusConflict, w.Code)

	users := store.Load(s, store.KeyUsers, []models.User{})
	assert.Len(t, users, 1, "collection never empties")
	assert.Empty(t, notifier.revoked)
}

func TestDeleteUserNotifiesRevocation(t *testing.T) {
	r, s, notifier := setupTest(t)
	seedUser(t, s, models.User{ID: 1, Username: "admin", Role: "admin", Group: models.GroupOwner}, "secret123")
	seedUser(t, s, models.User{ID: 2, Username: "aushilfe", Role: "admin", Group: models.GroupMitarbeiter, DiscordUserID: "424242"}, "secret456")

	w := doJSON(t, r, http.MethodDelete, "/api/admin/users/2", ownerToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	users := store.Load(s, store.KeyUsers, []models.User{})
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, []string{"aushilfe"}, notifier.revoked)
}

func TestCreateUserAssignsNextIDAndForcesChange(t *testing.T) {
	r, s, notifier := setupTest(t)
	seedUser(t, s, models.User{ID: 1, Username: "admin", Role: "admin", Group: models.GroupOwner}, "secret123")
	seedUser(t, s, models.User{ID: 3, Username: "koch", Role: "admin", Group: models.GroupPerso}, "secret456")

	w := doJSON(t, r, http.MethodPost, "/api/admin/users", ownerToken(t), map[string]any{
		"username": "neuling", "password": "start123",
		"group": "mitarbeiter", "discordUserId": "111222333",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	user := decodeBody(t, w)["user"].(map[string]any)
	assert.EqualValues(t, 4, user["id"])
	assert.Equal(t, true, user["mustChangePassword"], "new accounts must change their password")
	assert.Nil(t, user["password"], "hash never echoed")

	assert.Equal(t, []string{"neuling"}, notifier.loginDMs, "credentials DM sent for Discord users")
}

func TestCreateUserRejectsUnknownGroup(t *testing.T) {
	r, _, _ := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/users", ownerToken(t), map[string]any{
		"username": "neuling", "password": "start123", "group": "gast",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetPasswordIssuesTemporary(t *testing.T) {
	r, s, _ := setupTest(t)
	seedUser(t, s, models.User{ID: 1, Username: "admin", Role: "admin", Group: models.GroupOwner}, "secret123")
	seedUser(t, s, models.User{ID: 2, Username: "koch", Role: "admin", Group: models.GroupPerso}, "secret456")

	w := doJSON(t, r, http.MethodPost, "/api/admin/users/2/reset-password", ownerToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	tempPassword, _ := decodeBody(t, w)["temporary_password"].(string)
	require.Len(t, tempPassword, 8, "temporary passwords are 8 alphanumeric characters")

	users := store.Load(s, store.KeyUsers, []models.User{})
	require.Len(t, users, 2)
	assert.True(t, users[1].IsTemporaryPassword)
	assert.True(t, users[1].MustChangePassword)

	// The issued password works but lands in the forced change.
	login := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "koch", "password": tempPassword,
	})
	require.Equal(t, http.StatusOK, login.Code)
	body := decodeBody(t, login)
	assert.Equal(t, true, body["password_change_required"])
	assert.Nil(t, body["token"])
}

func TestUserManagementForbiddenForMitarbeiter(t *testing.T) {
	r, _, _ := setupTest(t)
	token := sessionToken(t, models.User{ID: 5, Username: "aushilfe", Role: "admin", Group: models.GroupMitarbeiter})

	w := doJSON(t, r, http.MethodGet, "/api/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
