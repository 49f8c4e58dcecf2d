package models

// DiscordChannels holds the channel ids the notifier posts to
type DiscordChannels struct {
	Reservations string `json:"reservations"`
	Orders       string `json:"orders"`
	Reviews      string `json:"reviews"`
}

// WebsiteSettings is the display text shown on the public site
type WebsiteSettings struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	ContactDiscord string `json:"contactDiscord"`
}

// SiteConfig is the singleton website configuration record
type SiteConfig struct {
	DiscordChannels DiscordChannels `json:"discordChannels"`
	WebsiteSettings WebsiteSettings `json:"websiteSettings"`
}
