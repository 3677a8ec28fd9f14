package domain

import "time"

// LineItem is one (product, quantity) pair. A cart holds at most one line
// per product; ordering carries no meaning.
type LineItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int64  `bson:"quantity" json:"quantity"`
}

type Cart struct {
	ID        string     `bson:"_id,omitempty" json:"id,omitempty"`
	ShopperID string     `bson:"shopper_id" json:"shopper_id"`
	Items     []LineItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// Add merges into an existing line for the same product by summing
// quantities rather than duplicating lines.
func (c *Cart) Add(productID string, qty int64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, LineItem{ProductID: productID, Quantity: qty})
}

// SetQuantity updates an existing line; quantity 0 removes it. It reports
// whether the product was in the cart — it never creates a new line.
func (c *Cart) SetQuantity(productID string, qty int64) bool {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		if qty == 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = qty
		}
		return true
	}
	return false
}

func (c *Cart) Remove(productID string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalQuantity sums the quantities over all lines.
func (c *Cart) TotalQuantity() int64 {
	var n int64
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
