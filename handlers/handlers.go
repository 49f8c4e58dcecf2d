// Package handlers implements the public site and staff panel endpoints.
// Collaborators are injected once at startup via Init so tests can swap in
// an in-memory store and a recording notifier.
package handlers

import (
	"rex-dinner-api/cache"
	"rex-dinner-api/notify"
	"rex-dinner-api/store"
)

var (
	Store    *store.Store
	Notify   notify.Notifier
	MenuView *cache.MenuCache
)

func Init(s *store.Store, n notify.Notifier, m *cache.MenuCache) {
	Store = s
	Notify = n
	MenuView = m
}
