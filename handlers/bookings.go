package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rex-dinner-api/models"
	"rex-dinner-api/statemachine"
	"rex-dinner-api/store"
)

type CreateReservationRequest struct {
	Name   string `json:"name" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Guests int    `json:"guests" binding:"required,min=1"`
	Phone  string `json:"phone" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Notes  string `json:"notes"`
}

// CreateReservation appends a new reservation (public form). The record is
// persisted first; the Discord notification is best-effort.
func CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UnixMilli()
	reservation := models.Reservation{
		ID:        now,
		Name:      req.Name,
		Date:      req.Date,
		Time:      req.Time,
		Guests:    req.Guests,
		Phone:     req.Phone,
		Email:     req.Email,
		Timestamp: now,
		Status:    models.ReservationNew,
		Notes:     req.Notes,
	}

	reservations := store.Load(Store, store.KeyReservations, []models.Reservation{})
	reservations = append(reservations, reservation)
	if err := store.Save(Store, store.KeyReservations, reservations); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reservation"})
		return
	}

	Notify.NewReservation(reservation)

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Reservation submitted successfully",
		"reservation": reservation,
	})
}

type CreateOrderRequest struct {
	CustomerInfo struct {
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		Address string `json:"address" binding:"required"`
	} `json:"customerInfo" binding:"required"`
	Items []struct {
		Name     string `json:"name" binding:"required"`
		Price    string `json:"price" binding:"required"`
		Quantity int    `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// CreateOrder appends a new delivery order (public checkout). The total is
// computed here from the cart's price snapshots, never taken from the
// client.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var orderItems []models.OrderItem
	var total float64
	for _, reqItem := range req.Items {
		price, err := strconv.ParseFloat(reqItem.Price, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price for item '" + reqItem.Name + "'"})
			return
		}
		total += price * float64(reqItem.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			Name:     reqItem.Name,
			Price:    reqItem.Price,
			Quantity: reqItem.Quantity,
		})
	}
	total = math.Round(total*100) / 100

	now := time.Now().UnixMilli()
	order := models.Order{
		ID: now,
		CustomerInfo: models.CustomerInfo{
			Name:    req.CustomerInfo.Name,
			Phone:   req.CustomerInfo.Phone,
			Address: req.CustomerInfo.Address,
		},
		Items:     orderItems,
		Total:     total,
		Timestamp: now,
		Status:    models.OrderNew,
	}

	orders := store.Load(Store, store.KeyOrders, []models.Order{})
	orders = append(orders, order)
	if err := store.Save(Store, store.KeyOrders, orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		return
	}

	Notify.NewOrder(order)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetReservations returns all reservations (staff).
func GetReservations(c *gin.Context) {
	reservations := store.Load(Store, store.KeyReservations, []models.Reservation{})
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// GetOrders returns all orders (staff).
func GetOrders(c *gin.Context) {
	orders := store.Load(Store, store.KeyOrders, []models.Order{})
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status" binding:"required"`
}

// UpdateReservationStatus sets the status of one reservation, leaving all
// other records untouched.
func UpdateReservationStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}
	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.KnownReservationStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown reservation status '" + string(req.Status) + "'"})
		return
	}

	reservations := store.Load(Store, store.KeyReservations, []models.Reservation{})
	updated := false
	for i := range reservations {
		if reservations[i].ID == id {
			reservations[i].Status = req.Status
			updated = true
			break
		}
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	if err := store.Save(Store, store.KeyReservations, reservations); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reservation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation status updated", "id": id, "status": req.Status})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus sets the status of one order. The pipeline is not
// enforced: staff may set any known status regardless of the current one.
func UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.KnownOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status '" + string(req.Status) + "'"})
		return
	}

	orders := store.Load(Store, store.KeyOrders, []models.Order{})
	updated := false
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = req.Status
			updated = true
			break
		}
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err := store.Save(Store, store.KeyOrders, orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "id": id, "status": req.Status})
}
