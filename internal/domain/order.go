package domain

import "time"

// OrderStatus is the closed set of order lifecycle states.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s names a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave s.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Order is an immutable record of a completed checkout. TotalCents and
// Items never change after creation; only Status transitions.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	TotalCents int64       `json:"totalCents"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	Items      []OrderItem `json:"items,omitempty"`
}

// OrderItem snapshots one cart line at checkout. PriceCentsAtOrder is
// copied verbatim from the cart line's priceCentsAtAdd.
type OrderItem struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"orderId"`
	ProductID         string    `json:"productId"`
	Quantity          int       `json:"quantity"`
	PriceCentsAtOrder int64     `json:"priceCentsAtOrder"`
	CreatedAt         time.Time `json:"createdAt"`
}
