package domain

import "time"

// Cart is the per-owner checkout ledger. Exactly one cart exists per owner;
// it is created lazily on the first add and keeps lines in first-insertion
// order.
type Cart struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"ownerId"`
	Items     []CartLine `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CartLine is one (item, quantity) entry. Each item appears at most once per
// cart and quantity is always >= 1; a line dropping to zero is removed, never
// stored.
type CartLine struct {
	ItemID   string    `json:"itemId"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// Line returns the line for itemID, or nil when absent.
func (c *Cart) Line(itemID string) *CartLine {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}
