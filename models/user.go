package models

// UserGroup defines the access tiers that drive staff panel visibility
type UserGroup string

const (
	GroupOwner       UserGroup = "owner"
	GroupPerso       UserGroup = "perso"
	GroupMitarbeiter UserGroup = "mitarbeiter"
)

// User is a staff panel account. JSON tags match the persisted collection
// shape; the password hash serializes under "password" so the stored record
// is self-contained. Handlers must never echo it in responses; use Public.
type User struct {
	ID                  int       `json:"id"`
	Username            string    `json:"username"`
	PasswordHash        string    `json:"password"`
	Role                string    `json:"role"`
	Group               UserGroup `json:"group"`
	MustChangePassword  bool      `json:"mustChangePassword"`
	IsTemporaryPassword bool      `json:"isTemporaryPassword"`
	DiscordUserID       string    `json:"discordUserId,omitempty"`
}

// Public returns the response-safe view of a user.
func (u User) Public() map[string]any {
	return map[string]any{
		"id":                  u.ID,
		"username":            u.Username,
		"role":                u.Role,
		"group":               u.Group,
		"mustChangePassword":  u.MustChangePassword,
		"isTemporaryPassword": u.IsTemporaryPassword,
		"discordUserId":       u.DiscordUserID,
	}
}
