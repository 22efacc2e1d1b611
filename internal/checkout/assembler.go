package checkout

import (
	"errors"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Draft is everything the shopper entered during the wizard.
type Draft struct {
	Customer        entities.CustomerInfo
	ShippingAddress entities.Address
	BillingAddress  *entities.Address
	PaymentMethod   entities.PaymentMethod
	Notes           string
	Cart            entities.Cart
}

type Assembler struct {
	fees  *FeeResolver
	now   func() time.Time
	newID func() string
}

func NewAssembler(fees *FeeResolver) *Assembler {
	return &Assembler{
		fees:  fees,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Assemble turns a draft into a pending order. Lines are copied so later
// catalog changes never alter a placed order.
func (a *Assembler) Assemble(d Draft) (entities.Order, error) {
	if d.Cart.Empty() {
		return entities.Order{}, entities.NewValidationError("Your cart is empty")
	}
	if err := ValidateAddress(d.ShippingAddress); err != nil {
		return entities.Order{}, prefixFields(err, "shipping")
	}
	if d.BillingAddress != nil {
		if err := ValidateAddress(*d.BillingAddress); err != nil {
			return entities.Order{}, prefixFields(err, "billing")
		}
	}

	items := make([]entities.OrderItem, 0, len(d.Cart.Items))
	subtotal := decimal.Zero
	for _, it := range d.Cart.Items {
		if it.Quantity < 1 {
			return entities.Order{}, entities.NewValidationError("Item quantity must be at least 1", it.ProductID)
		}
		if !it.UnitPrice.IsPositive() {
			return entities.Order{}, entities.NewValidationError("Item price is invalid", it.ProductID)
		}
		price := money.Round(it.UnitPrice)
		line := money.Mul(price, it.Quantity)
		subtotal = subtotal.Add(line)
		items = append(items, entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU,
			Quantity:  it.Quantity,
			UnitPrice: price,
			LineTotal: line,
		})
	}
	subtotal = money.Round(subtotal)
	fee := a.fees.FeeFor(d.ShippingAddress.Governorate, subtotal)

	var billing *entities.Address
	if d.BillingAddress != nil {
		b := *d.BillingAddress
		billing = &b
	}

	now := a.now().UTC()
	return entities.Order{
		ID:              a.newID(),
		UserID:          d.Customer.UserID,
		CustomerName:    d.Customer.Name,
		CustomerEmail:   d.Customer.Email,
		CustomerPhone:   d.Customer.Phone,
		PaymentMethod:   d.PaymentMethod,
		Notes:           d.Notes,
		Status:          entities.StatusPending,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Total:           money.Round(subtotal.Add(fee)),
		ShippingAddress: d.ShippingAddress,
		BillingAddress:  billing,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func prefixFields(err error, prefix string) error {
	var ve *entities.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	fields := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		fields[i] = prefix + "." + f
	}
	return entities.NewValidationError(ve.Message, fields...)
}
