package entities

import (
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/shopspring/decimal"
)

type CartItem struct {
	ProductID string
	Name      string
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Cart is owned by the caller and handed to checkout explicitly.
type Cart struct {
	Items []CartItem
}

// Add merges quantities into an existing line of the same product, SKU and
// unit price. Any other item becomes a line of its own.
func (c *Cart) Add(item CartItem) {
	if item.Quantity <= 0 {
		return
	}
	for i := range c.Items {
		if c.Items[i].sameLine(item) {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

func (it CartItem) sameLine(other CartItem) bool {
	return it.ProductID == other.ProductID &&
		it.SKU == other.SKU &&
		it.UnitPrice.Equal(other.UnitPrice)
}

func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(money.Mul(it.UnitPrice, it.Quantity))
	}
	return money.Round(total)
}
