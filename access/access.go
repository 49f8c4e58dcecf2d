// Package access maps a user's group to the staff panel sections they may
// see. It is a static table evaluated on every request, no caching.
package access

import "rex-dinner-api/models"

// Section names one tab of the staff panel
type Section string

const (
	SectionMenu         Section = "menu"
	SectionUsers        Section = "users"
	SectionReservations Section = "reservations"
	SectionOrders       Section = "orders"
	SectionReviews      Section = "reviews"
	SectionConfig       Section = "config"
)

// AllSections lists every panel section in display order
var AllSections = []Section{
	SectionMenu,
	SectionUsers,
	SectionReservations,
	SectionOrders,
	SectionReviews,
	SectionConfig,
}

// VisibleSections returns the set of sections a group may see: owner and
// perso see everything, mitarbeiter see reservations and orders, anything
// else sees nothing.
func VisibleSections(group models.UserGroup) map[Section]bool {
	visible := make(map[Section]bool)
	switch group {
	case models.GroupOwner, models.GroupPerso:
		for _, s := range AllSections {
			visible[s] = true
		}
	case models.GroupMitarbeiter:
		visible[SectionReservations] = true
		visible[SectionOrders] = true
	}
	return visible
}

// Allowed reports whether the group may see the given section.
func Allowed(group models.UserGroup, section Section) bool {
	return VisibleSections(group)[section]
}
