package domain

import "time"

// CartItem is one line of a user's in-progress cart. PriceCentsAtAdd is
// frozen at insertion time and never resynced to the live catalog price.
type CartItem struct {
	ID              string    `json:"id"`
	UserID          string    `json:"-"`
	ProductID       string    `json:"productId"`
	Quantity        int       `json:"quantity"`
	PriceCentsAtAdd int64     `json:"priceCentsAtAdd"`
	CreatedAt       time.Time `json:"createdAt"`
	Product         *Product  `json:"product,omitempty"`
}

// TotalCents sums priceCentsAtAdd * quantity over the given lines.
func TotalCents(items []CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.PriceCentsAtAdd * int64(it.Quantity)
	}
	return total
}
