package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteConfigSaveAndPublicContent(t *testing.T) {
	r, _, notifier := setupTest(t)
	token := ownerToken(t)

	current := doJSON(t, r, http.MethodGet, "/api/admin/config", token, nil)
	require.Equal(t, http.StatusOK, current.Code)

	w := doJSON(t, r, http.MethodPut, "/api/admin/config", token, map[string]any{
		"discordChannels": map[string]string{
			"reservations": "111", "orders": "222", "reviews": "333",
		},
		"websiteSettings": map[string]string{
			"title":          "Rex Dinner II",
			"description":    "Jetzt mit noch mehr T-Rex",
			"contactDiscord": "https://discord.gg/example",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, notifier.channelPush, "channel rewiring pushed to the collaborator")

	site := doJSON(t, r, http.MethodGet, "/api/site", "", nil)
	require.Equal(t, http.StatusOK, site.Code)
	assert.Equal(t, "Rex Dinner II", decodeBody(t, site)["title"], "save overwrites the singleton")
}
