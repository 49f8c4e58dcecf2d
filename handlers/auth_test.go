package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rex-dinner-api/models"
	"rex-dinner-api/store"
)

func TestLoginSuccess(t *testing.T) {
	r, s, _ := setupTest(t)
	seedUser(t, s, models.User{ID: 1, Username: "chef", Role: "admin", Group: models.GroupOwner}, "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "chef",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	assert.Len(t, body["sections"], 6, "owner sees all panel sections")
}

func TestLoginGenericErrorMessage(t *testing.T) {
	r, s, _ := setupTest(t)
	seedUser(t, s, models.User{ID: 1, Username: "chef", Role: "admin", Group: models.GroupOwner}, "secret123")

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "chef", "password": "wrong",
	})
	unknownUser := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "nobody", "password": "secret123",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, decodeBody(t, wrongPassword)["error"], decodeBody(t, unknownUser)["error"],
		"unknown user and wrong password are indistinguishable")
}

func TestTemporaryPasswordForcesChange(t *testing.T) {
	r, s, _ := setupTest(t)
	seedUser(t, s, models.User{
		ID: 1, Username: "neuling", Role: "admin", Group: models.GroupMitarbeiter,
		IsTemporaryPassword: true,
	}, "temp1234")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "neuling", "password": "temp1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["password_change_required"])
	assert.Nil(t, body["token"], "no session token before the password change")
	changeToken, _ := body["change_token"].(string)
	require.NotEmpty(t, changeToken)

	// The change token must not open the panel.
	profile := doJSON(t, r, http.MethodGet, "/api/profile", changeToken, nil)
	assert.Equal(t, http.StatusUnauthorized, profile.Code)

	// Too-short password is rejected without touching the account.
	tooShort := doJSON(t, r, http.MethodPost, "/api/auth/change-password", changeToken, map[string]string{
		"new_password": "abc", "confirm_password": "abc",
	})
	require.Equal(t, http.StatusBadRequest, tooShort.Code)
	assert.Contains(t, decodeBody(t, tooShort)["error"], "at least 6 characters")

	users := store.Load(s, store.KeyUsers, []models.User{})
	require.Len(t, users, 1)
	assert.True(t, users[0].IsTemporaryPassword, "rejected change mutates nothing")

	// A valid change clears the flags and issues a session.
	changed := doJSON(t, r, http.MethodPost, "/api/auth/change-password", changeToken, map[string]string{
		"new_password": "brandnew", "confirm_password": "brandnew",
	})
	require.Equal(t, http.StatusOK, changed.Code)
	sessionTok, _ := decodeBody(t, changed)["token"].(string)
	require.NotEmpty(t, sessionTok)

	users = store.Load(s, store.KeyUsers, []models.User{})
	assert.False(t, users[0].IsTemporaryPassword)
	assert.False(t, users[0].MustChangePassword)

	profile = doJSON(t, r, http.MethodGet, "/api/profile", sessionTok, nil)
	assert.Equal(t, http.StatusOK, profile.Code)

	// And the next login with the new password goes straight through.
	relogin := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "neuling", "password": "brandnew",
	})
	require.Equal(t, http.StatusOK, relogin.Code)
	assert.NotEmpty(t, decodeBody(t, relogin)["token"])
}

func TestChangePasswordMismatch(t *testing.T) {
	r, s, _ := setupTest(t)
	user := seedUser(t, s, models.User{ID: 1, Username: "chef", Role: "admin", Group: models.GroupOwner}, "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/change-password", sessionToken(t, user), map[string]string{
		"new_password": "abcdef", "confirm_password": "abcdeg",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "do not match")
}
