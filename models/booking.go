package models

// ReservationStatus represents the outcome of a table reservation
type ReservationStatus string

const (
	ReservationNew      ReservationStatus = "Neu"
	ReservationAccepted ReservationStatus = "Bestätigt"
	ReservationDeclined ReservationStatus = "Abgelehnt"
)

// OrderStatus represents all possible states of a delivery order
type OrderStatus string

const (
	OrderNew       OrderStatus = "Neu"
	OrderPreparing OrderStatus = "In Zubereitung"
	OrderPrepared  OrderStatus = "Zubereitet"
	OrderDelivered OrderStatus = "Ausgeliefert"
)

// Reservation is a table booking submitted through the public form.
// IDs are Unix-millisecond timestamps of the submission.
type Reservation struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Guests    int               `json:"guests"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	Timestamp int64             `json:"timestamp"`
	Status    ReservationStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
}

// CustomerInfo is the delivery contact block of an order
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItem is a cart line with the price snapshotted at order time
type OrderItem struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order is a delivery order submitted through the public checkout
type Order struct {
	ID           int64        `json:"id"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Items        []OrderItem  `json:"items"`
	Total        float64      `json:"total"`
	Timestamp    int64        `json:"timestamp"`
	Status       OrderStatus  `json:"status"`
}

// Review is a public customer review. IDs are string timestamps and the
// date is a German locale date (dd.mm.yyyy), matching the stored shape.
type Review struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}
