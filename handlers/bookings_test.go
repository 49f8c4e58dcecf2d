package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rex-dinner-api/models"
	"rex-dinner-api/store"
)

func TestCreateReservationDefaultsToNeu(t *testing.T) {
	r, s, notifier := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", "", map[string]any{
		"name": "Anna", "date": "2024-06-01", "time": "19:00",
		"guests": 2, "phone": "0151 1234567", "email": "anna@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	reservations := store.Load(s, store.KeyReservations, []models.Reservation{})
	require.Len(t, reservations, 1)
	assert.Equal(t, models.ReservationNew, reservations[0].Status, "status defaults to Neu")
	assert.Equal(t, "Anna", reservations[0].Name)
	assert.NotZero(t, reservations[0].ID)

	require.Len(t, notifier.reservations, 1, "collaborator notified after persist")
}

func TestCreateReservationValidation(t *testing.T) {
	r, s, notifier := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", "", map[string]any{
		"name": "Anna", "date": "2024-06-01", "time": "19:00",
		"guests": 0, "phone": "0151 1234567", "email": "anna@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, store.Load(s, store.KeyReservations, []models.Reservation{}))
	assert.Empty(t, notifier.reservations)
}

func TestUpdateReservationStatusTouchesOnlyTarget(t *testing.T) {
	r, s, _ := setupTest(t)
	require.NoError(t, store.Save(s, store.KeyReservations, []models.Reservation{
		{ID: 100, Name: "Anna", Status: models.ReservationNew},
		{ID: 200, Name: "Ben", Status: models.ReservationNew},
	}))

	w := doJSON(t, r, http.MethodPut, "/api/admin/reservations/100/status", ownerToken(t), map[string]any{
		"status": "Bestätigt",
	})
	require.Equal(t, http.StatusOK, w.Code)

	reservations := store.Load(s, store.KeyReservations, []models.Reservation{})
	require.Len(t, reservations, 2)
	assert.Equal(t, models.ReservationAccepted, reservations[0].Status)
	assert.Equal(t, models.ReservationNew, reservations[1].Status, "other records untouched")
}

func TestUpdateReservationStatusUnknownValue(t *testing.T) {
	r, s, _ := setupTest(t)
	require.NoError(t, store.Save(s, store.KeyReservations, []models.Reservation{
		{ID: 100, Name: "Anna", Status: models.ReservationNew},
	}))

	w := doJSON(t, r, http.MethodPut, "/api/admin/reservations/100/status", ownerToken(t), map[string]any{
		"status": "Vielleicht",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderTotalComputedFromCart(t *testing.T) {
	r, s, notifier := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", "", map[string]any{
		"customerInfo": map[string]string{
			"name": "Ben", "phone": "0151 7654321", "address": "Hauptstraße 1, Berlin",
		},
		"items": []map[string]any{
			{"name": "Pizza", "price": "10.00", "quantity": 2},
			{"name": "Tiramisu", "price": "5.50", "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	orders := store.Load(s, store.KeyOrders, []models.Order{})
	require.Len(t, orders, 1)
	assert.Equal(t, 25.50, orders[0].Total, "total is computed server-side from the cart")
	assert.Equal(t, models.OrderNew, orders[0].Status)

	require.Len(t, notifier.orders, 1)
	assert.Equal(t, 25.50, notifier.orders[0].Total)
}

func TestOrderRejectsInvalidPrice(t *testing.T) {
	r, s, _ := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", "", map[string]any{
		"customerInfo": map[string]string{
			"name": "Ben", "phone": "0151 7654321", "address": "Hauptstraße 1",
		},
		"items": []map[string]any{
			{"name": "Pizza", "price": "zehn", "quantity": 1},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.Load(s, store.KeyOrders, []models.Order{}))
}

func TestOrderStatusTransitionsUnordered(t *testing.T) {
	r, s, _ := setupTest(t)
	require.NoError(t, store.Save(s, store.KeyOrders, []models.Order{
		{ID: 100, Status: models.OrderNew},
	}))
	token := ownerToken(t)

	// Staff may jump straight to the end of the pipeline...
	w := doJSON(t, r, http.MethodPut, "/api/admin/orders/100/status", token, map[string]any{
		"status": "Ausgeliefert",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// ...and back again.
	w = doJSON(t, r, http.MethodPut, "/api/admin/orders/100/status", token, map[string]any{
		"status": "Neu",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Unknown statuses are still rejected.
	w = doJSON(t, r, http.MethodPut, "/api/admin/orders/100/status", token, map[string]any{
		"status": "Storniert",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReviewValidation(t *testing.T) {
	r, s, notifier := setupTest(t)

	zeroRating := doJSON(t, r, http.MethodPost, "/api/reviews", "", map[string]any{
		"name": "Clara", "rating": 0, "comment": "Sehr gut",
	})
	assert.Equal(t, http.StatusBadRequest, zeroRating.Code)

	tooHigh := doJSON(t, r, http.MethodPost, "/api/reviews", "", map[string]any{
		"name": "Clara", "rating": 6, "comment": "Sehr gut",
	})
	assert.Equal(t, http.StatusBadRequest, tooHigh.Code)

	missingComment := doJSON(t, r, http.MethodPost, "/api/reviews", "", map[string]any{
		"name": "Clara", "rating": 5,
	})
	assert.Equal(t, http.StatusBadRequest, missingComment.Code)

	assert.Empty(t, store.Load(s, store.KeyReviews, []models.Review{}))
	assert.Empty(t, notifier.reviews)
}

func TestReviewsNewestFirstAndDeletable(t *testing.T) {
	r, s, notifier := setupTest(t)
	require.NoError(t, store.Save(s, store.KeyReviews, []models.Review{
		{ID: "1", Name: "Alt", Rating: 3, Comment: "Ok", Date: "01.01.2024"},
	}))

	w := doJSON(t, r, http.MethodPost, "/api/reviews", "", map[string]any{
		"name": "Clara", "rating": 5, "comment": "Sehr gut",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, notifier.reviews, 1)

	reviews := store.Load(s, store.KeyReviews, []models.Review{})
	require.Len(t, reviews, 2)
	assert.Equal(t, "Clara", reviews[0].Name, "new review goes to the front")

	del := doJSON(t, r, http.MethodDelete, "/api/admin/reviews/"+reviews[0].ID, ownerToken(t), nil)
	require.Equal(t, http.StatusOK, del.Code)

	reviews = store.Load(s, store.KeyReviews, []models.Review{})
	require.Len(t, reviews, 1)
	assert.Equal(t, "Alt", reviews[0].Name)
}
