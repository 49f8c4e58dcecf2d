// Package notify delivers best-effort notifications to the restaurant's
// Discord server. Every failure is logged and swallowed; a missed
// notification never blocks or rolls back the local write it follows.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"

	"rex-dinner-api/models"
)

// Notifier is the outbound collaborator contract handlers talk to.
type Notifier interface {
	NewReservation(r models.Reservation)
	NewOrder(o models.Order)
	NewReview(rv models.Review)
	SendLoginDM(discordUserID, username, password string)
	AccessRevoked(revoked models.User, adminName string)
	ChannelsUpdated(channels models.DiscordChannels)
}

// ChannelProvider resolves the current channel wiring at send time, so
// staff edits to the site configuration take effect without a restart.
type ChannelProvider func() models.DiscordChannels

// Discord posts channel messages and DMs through the Discord bot REST API.
type Discord struct {
	client   *http.Client
	channels ChannelProvider
}

func NewDiscord(channels ChannelProvider) *Discord {
	return &Discord{
		client:   &http.Client{Timeout: 10 * time.Second},
		channels: channels,
	}
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title       string       `json:"title"`
	Color       int          `json:"color"`
	Description string       `json:"description,omitempty"`
	Fields      []embedField `json:"fields"`
	Footer      *embedFooter `json:"footer,omitempty"`
	Timestamp   string       `json:"timestamp"`
}

func newEmbed(title string, color int, fields []embedField) embed {
	return embed{
		Title:     title,
		Color:     color,
		Fields:    fields,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewReservation announces a table reservation in the reservations channel.
func (d *Discord) NewReservation(r models.Reservation) {
	notes := r.Notes
	if notes == "" {
		notes = "Keine"
	}
	d.sendToChannel(d.channels().Reservations, "🍽️ **Neue Reservierung bei Rex Dinner!**", []embed{
		newEmbed("Neue Tischreservierung", 0xff6b35, []embedField{
			{Name: "Name", Value: r.Name, Inline: true},
			{Name: "Datum", Value: r.Date, Inline: true},
			{Name: "Uhrzeit", Value: r.Time, Inline: true},
			{Name: "Personen", Value: fmt.Sprint(r.Guests), Inline: true},
			{Name: "Telefon", Value: r.Phone, Inline: true},
			{Name: "E-Mail", Value: r.Email, Inline: true},
			{Name: "Notizen", Value: notes, Inline: false},
		}),
	})
}

// NewOrder announces a delivery order in the orders channel.
func (d *Discord) NewOrder(o models.Order) {
	lines := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, fmt.Sprintf("%dx %s (€%s)", item.Quantity, item.Name, item.Price))
	}
	d.sendToChannel(d.channels().Orders, "🛒 **Neue Bestellung bei Rex Dinner!**", []embed{
		newEmbed("Neue Online-Bestellung", 0x28a745, []embedField{
			{Name: "Kunde", Value: o.CustomerInfo.Name, Inline: true},
			{Name: "Telefon", Value: o.CustomerInfo.Phone, Inline: true},
			{Name: "Adresse", Value: o.CustomerInfo.Address, Inline: false},
			{Name: "Bestellte Artikel", Value: strings.Join(lines, "\n"), Inline: false},
			{Name: "Gesamtsumme", Value: fmt.Sprintf("€%.2f", o.Total), Inline: true},
		}),
	})
}

// NewReview announces a customer review in the reviews channel.
func (d *Discord) NewReview(rv models.Review) {
	stars := strings.Repeat("⭐", rv.Rating)
	d.sendToChannel(d.channels().Reviews, "⭐ **Neue Bewertung für Rex Dinner!**", []embed{
		newEmbed("Neue Kundenbewertung", 0xffd700, []embedField{
			{Name: "Name", Value: rv.Name, Inline: true},
			{Name: "Bewertung", Value: fmt.Sprintf("%s (%d/5)", stars, rv.Rating), Inline: true},
			{Name: "Kommentar", Value: rv.Comment, Inline: false},
		}),
	})
}

// SendLoginDM delivers freshly issued panel credentials to a staff member.
func (d *Discord) SendLoginDM(discordUserID, username, password string) {
	e := newEmbed("Du hast bei Rex Dinner Zugriff bekommen!", 0xff6b35, []embedField{
		{Name: "Benutzername", Value: username, Inline: true},
		{Name: "Passwort", Value: password, Inline: true},
	})
	e.Description = "Hier sind deine Login-Daten für das Admin-Panel:"
	e.Footer = &embedFooter{Text: "Bitte ändere dein Passwort beim ersten Login!"}
	d.sendDM(discordUserID, "🔑 **Rex Dinner - Zugriff gewährt**", []embed{e})
}

// AccessRevoked informs the revoked user (if reachable) and the
// reservations channel that a panel account was removed.
func (d *Discord) AccessRevoked(revoked models.User, adminName string) {
	if revoked.DiscordUserID != "" {
		e := newEmbed("Dein Zugriff wurde entzogen", 0xff0000, []embedField{
			{Name: "Betroffener Benutzer", Value: revoked.Username, Inline: true},
			{Name: "Entfernt von", Value: adminName, Inline: true},
		})
		e.Description = "Dein Zugriff auf das Rex Dinner Admin-Panel wurde entfernt."
		d.sendDM(revoked.DiscordUserID, "🚫 **Rex Dinner - Zugriff entzogen**", []embed{e})
	}
	d.sendToChannel(d.channels().Reservations, "🚫 **Benutzer-Zugriff entzogen**", []embed{
		newEmbed("Benutzer-Zugriff wurde entfernt", 0xff0000, []embedField{
			{Name: "Entfernter Benutzer", Value: revoked.Username, Inline: true},
			{Name: "Gruppe", Value: string(revoked.Group), Inline: true},
			{Name: "Entfernt von", Value: adminName, Inline: true},
		}),
	})
}

// ChannelsUpdated acknowledges a channel rewiring in the reservations
// channel so staff can see the change took effect.
func (d *Discord) ChannelsUpdated(channels models.DiscordChannels) {
	d.sendToChannel(channels.Reservations, "🔧 **Discord-Kanäle aktualisiert**", []embed{
		newEmbed("Kanal-Konfiguration geändert", 0xff6b35, []embedField{
			{Name: "Reservierungen", Value: channels.Reservations, Inline: true},
			{Name: "Bestellungen", Value: channels.Orders, Inline: true},
			{Name: "Bewertungen", Value: channels.Reviews, Inline: true},
		}),
	})
}

func (d *Discord) sendToChannel(channelID, content string, embeds []embed) {
	if channelID == "" {
		return
	}
	url := fmt.Sprintf("%s/channels/%s/messages", viper.GetString("discord.api_base"), channelID)
	if err := d.post(url, map[string]any{"content": content, "embeds": embeds}, nil); err != nil {
		log.Printf("WARN: Failed to send Discord notification: %v", err)
	}
}

func (d *Discord) sendDM(userID, content string, embeds []embed) {
	apiBase := viper.GetString("discord.api_base")

	var dmChannel struct {
		ID string `json:"id"`
	}
	err := d.post(apiBase+"/users/@me/channels", map[string]any{"recipient_id": userID}, &dmChannel)
	if err != nil {
		log.Printf("WARN: Failed to create Discord DM channel: %v", err)
		return
	}

	url := fmt.Sprintf("%s/channels/%s/messages", apiBase, dmChannel.ID)
	if err := d.post(url, map[string]any{"content": content, "embeds": embeds}, nil); err != nil {
		log.Printf("WARN: Failed to send Discord DM: %v", err)
	}
}

func (d *Discord) post(url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+viper.GetString("discord.token"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord API returned %s", resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
