package store

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"rex-dinner-api/models"
)

// DefaultMenu is the hard-coded menu substituted when no stored collection
// exists yet.
func DefaultMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          1,
			Name:        "Margherita Pizza",
			Description: "Klassische Pizza mit Tomaten, Mozzarella und frischem Basilikum",
			Price:       "12.90",
			Category:    "Vorspeisen",
			Rating:      4.8,
		},
		{
			ID:          2,
			Name:        "Spaghetti Carbonara",
			Description: "Cremige Pasta mit Speck, Ei und Parmesan",
			Price:       "14.50",
			Category:    "Hauptgerichte",
			Rating:      4.9,
		},
		{
			ID:          3,
			Name:        "Lasagne della Casa",
			Description: "Hausgemachte Lasagne mit Hackfleisch und Béchamelsauce",
			Price:       "16.90",
			Category:    "Hauptgerichte",
			Rating:      4.7,
		},
		{
			ID:          4,
			Name:        "Tiramisu",
			Description: "Klassisches italienisches Dessert mit Mascarpone und Kaffee",
			Price:       "6.90",
			Category:    "Desserts",
			Rating:      4.9,
		},
	}
}

// DefaultUsers returns the bootstrap account used until staff create their
// own. The password is hashed on the way in; it never exists in plaintext
// in a stored record.
func DefaultUsers() []models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("Rex_dinner03.09"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash bootstrap password: %v", err)
	}
	return []models.User{
		{
			ID:           1,
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         "admin",
			Group:        models.GroupOwner,
		},
	}
}

// DefaultSiteConfig carries the original channel wiring and site text.
func DefaultSiteConfig() models.SiteConfig {
	return models.SiteConfig{
		DiscordChannels: models.DiscordChannels{
			Reservations: "1381651223140241438",
			Orders:       "1412869710474772631",
			Reviews:      "1412869621844934806",
		},
		WebsiteSettings: models.WebsiteSettings{
			Title:          "Rex Dinner",
			Description:    "Authentisches 50er Jahre Diner-Erlebnis mit T-Rex Thema",
			ContactDiscord: "https://discord.gg/HcFFb6tX4S",
		},
	}
}
