package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string          `db:"id"`
	UserID        sql.NullString  `db:"user_id"`
	CustomerName  string          `db:"customer_name"`
	CustomerEmail string          `db:"customer_email"`
	CustomerPhone string          `db:"customer_phone"`
	PaymentMethod string          `db:"payment_method"`
	Notes         sql.NullString  `db:"notes"`
	Status        string          `db:"status"`
	TransactionID sql.NullString  `db:"transaction_id"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	DeliveryFee   decimal.Decimal `db:"delivery_fee"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type Address struct {
	OrderID     string         `db:"order_id"`
	Kind        string         `db:"kind"`
	Governorate string         `db:"governorate"`
	Area        string         `db:"area"`
	Block       string         `db:"block"`
	Street      string         `db:"street"`
	Building    string         `db:"building"`
	Floor       sql.NullString `db:"floor"`
	Apartment   sql.NullString `db:"apartment"`
	Notes       sql.NullString `db:"notes"`
}

type Item struct {
	OrderID   string          `db:"order_id"`
	LineNo    int             `db:"line_no"`
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	SKU       sql.NullString  `db:"sku"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	LineTotal decimal.Decimal `db:"line_total"`
}

type Phone struct {
	ID          string              `db:"id"`
	Name        string              `db:"name"`
	Brand       string              `db:"brand"`
	ImageURL    sql.NullString      `db:"image_url"`
	Price       decimal.NullDecimal `db:"price"`
	Display     sql.NullString      `db:"display"`
	Camera      sql.NullString      `db:"camera"`
	Battery     sql.NullString      `db:"battery"`
	Storage     sql.NullString      `db:"storage"`
	RAM         sql.NullString      `db:"ram"`
	Processor   sql.NullString      `db:"processor"`
	OS          sql.NullString      `db:"os"`
	Features    pq.StringArray      `db:"features"`
	ReleaseDate sql.NullString      `db:"release_date"`
	Colors      pq.StringArray      `db:"colors"`
	Available   bool                `db:"available"`
	SourceURL   sql.NullString      `db:"source_url"`
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		Governorate: entities.Governorate(a.Governorate),
		Area:        a.Area,
		Block:       a.Block,
		Street:      a.Street,
		Building:    a.Building,
		Floor:       nullStringToString(a.Floor),
		Apartment:   nullStringToString(a.Apartment),
		Notes:       nullStringToString(a.Notes),
	}
}

func ItemToEntity(i Item) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		SKU:       nullStringToString(i.SKU),
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		LineTotal: i.LineTotal,
	}
}

func OrderToEntity(o Order, addresses []Address, items []Item) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		UserID:        nullStringToString(o.UserID),
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		Notes:         nullStringToString(o.Notes),
		Status:        entities.OrderStatus(o.Status),
		TransactionID: nullStringToString(o.TransactionID),
		Subtotal:      o.Subtotal,
		DeliveryFee:   o.DeliveryFee,
		Total:         o.TotalAmount,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	for _, a := range addresses {
		switch entities.AddressKind(a.Kind) {
		case entities.AddressShipping:
			order.ShippingAddress = AddressToEntity(a)
		case entities.AddressBilling:
			billing := AddressToEntity(a)
			order.BillingAddress = &billing
		}
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func PhoneFromEntity(p entities.Phone) Phone {
	return Phone{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		ImageURL:    nullString(p.ImageURL),
		Price:       nullDecimal(p.Price),
		Display:     nullString(p.Specs.Display),
		Camera:      nullString(p.Specs.Camera),
		Battery:     nullString(p.Specs.Battery),
		Storage:     nullString(p.Specs.Storage),
		RAM:         nullString(p.Specs.RAM),
		Processor:   nullString(p.Specs.Processor),
		OS:          nullString(p.Specs.OS),
		Features:    stringArray(p.Features),
		ReleaseDate: nullString(p.ReleaseDate),
		Colors:      stringArray(p.Colors),
		Available:   p.Available,
		SourceURL:   nullString(p.SourceURL),
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func stringArray(s []string) pq.StringArray {
	if s == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(s)
}
