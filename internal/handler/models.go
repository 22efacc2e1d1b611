package handler

import (
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/internal/service"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/shopspring/decimal"
)

// Address is a Kuwaiti delivery address
type Address struct {
	Governorate string `json:"governorate" example:"hawalli"`
	Area        string `json:"area" example:"Salmiya"`
	Block       string `json:"block" example:"10"`
	Street      string `json:"street" example:"Salem Al Mubarak"`
	Building    string `json:"building" example:"5"`
	Floor       string `json:"floor,omitempty"`
	Apartment   string `json:"apartment,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// CustomerInfo contact details of the shopper
type CustomerInfo struct {
	UserID string `json:"user_id,omitempty"`
	Name   string `json:"name" example:"Ali"`
	Email  string `json:"email" example:"ali@example.com"`
	Phone  string `json:"phone" example:"+96551234567"`
}

// CartItem a cart line; prices are KWD with up to three decimals
type CartItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	SKU       string `json:"sku,omitempty"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
	UnitPrice string `json:"unit_price" validate:"required" example:"399.500"`
}

// CheckoutRequest the wizard state submitted by the client
type CheckoutRequest struct {
	IdempotencyKey  string       `json:"idempotency_key,omitempty" validate:"omitempty,uuid"`
	Customer        CustomerInfo `json:"customer"`
	ShippingAddress Address      `json:"shipping_address"`
	BillingAddress  *Address     `json:"billing_address,omitempty"`
	PaymentMethod   string       `json:"payment_method" example:"knet"`
	Notes           string       `json:"notes,omitempty"`
	Items           []CartItem   `json:"items" validate:"dive"`
}

// CheckoutResponse tells the client where to send the browser
type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	TotalAmount string `json:"total_amount" example:"402.000"`
	PaymentURL  string `json:"payment_url,omitempty"`
	Replayed    bool   `json:"replayed"`
}

// StepValidationResponse result of a wizard step guard
type StepValidationResponse struct {
	Step     string `json:"step"`
	Valid    bool   `json:"valid"`
	NextStep string `json:"next_step,omitempty"`
}

// PaymentOutcome result of a KNET return
type PaymentOutcome struct {
	OrderID       string `json:"order_id"`
	Result        string `json:"result" example:"paid"`
	Status        string `json:"status,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	TotalAmount   string `json:"total_amount,omitempty"`
	Message       string `json:"message"`
	ClearCart     bool   `json:"clear_cart"`
}

// OrderItem a line of a placed order
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	SKU       string `json:"sku,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// Order a placed order
type Order struct {
	ID              string      `json:"order_id"`
	UserID          string      `json:"user_id,omitempty"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	PaymentMethod   string      `json:"payment_method"`
	Notes           string      `json:"notes,omitempty"`
	Status          string      `json:"status"`
	TransactionID   string      `json:"transaction_id,omitempty"`
	Subtotal        string      `json:"subtotal"`
	DeliveryFee     string      `json:"delivery_fee"`
	TotalAmount     string      `json:"total_amount"`
	Currency        string      `json:"currency"`
	ShippingAddress Address     `json:"shipping_address"`
	BillingAddress  *Address    `json:"billing_address,omitempty"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// GovernorateFee delivery fee of one governorate
type GovernorateFee struct {
	Governorate string `json:"governorate"`
	Fee         string `json:"fee" example:"2.500"`
}

// DeliveryFees the full fee table
type DeliveryFees struct {
	Currency      string           `json:"currency"`
	DefaultFee    string           `json:"default_fee"`
	FreeThreshold string           `json:"free_threshold,omitempty"`
	Governorates  []GovernorateFee `json:"governorates"`
}

// GSMArenaImportRequest search query and max number of phones to import
type GSMArenaImportRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit" validate:"gte=0,lte=100"`
}

// SmartprixImportRequest product pages to scrape
type SmartprixImportRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,max=50,dive,url"`
}

// ImportError a rejected record
type ImportError struct {
	Row     int    `json:"row,omitempty"`
	Source  string `json:"source,omitempty"`
	Message string `json:"message"`
}

// ImportReport result of a catalog import
type ImportReport struct {
	Imported int           `json:"imported"`
	Errors   []ImportError `json:"errors"`
}

// Phone a catalog record as published on the catalog-imports topic
type Phone struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name" validate:"required"`
	Brand       string     `json:"brand" validate:"required"`
	ImageURL    string     `json:"image,omitempty"`
	Price       *string    `json:"price,omitempty"`
	Specs       PhoneSpecs `json:"specs"`
	Features    []string   `json:"features,omitempty"`
	ReleaseDate string     `json:"releaseDate,omitempty"`
	Colors      []string   `json:"colors,omitempty"`
	Available   *bool      `json:"availability,omitempty"`
	SourceURL   string     `json:"url,omitempty" validate:"omitempty,url"`
}

type PhoneSpecs struct {
	Display   string `json:"display,omitempty"`
	Camera    string `json:"camera,omitempty"`
	Battery   string `json:"battery,omitempty"`
	Storage   string `json:"storage,omitempty"`
	RAM       string `json:"ram,omitempty"`
	Processor string `json:"processor,omitempty"`
	OS        string `json:"os,omitempty"`
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		Governorate: entities.Governorate(a.Governorate),
		Area:        a.Area,
		Block:       a.Block,
		Street:      a.Street,
		Building:    a.Building,
		Floor:       a.Floor,
		Apartment:   a.Apartment,
		Notes:       a.Notes,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Governorate: string(a.Governorate),
		Area:        a.Area,
		Block:       a.Block,
		Street:      a.Street,
		Building:    a.Building,
		Floor:       a.Floor,
		Apartment:   a.Apartment,
		Notes:       a.Notes,
	}
}

// CheckoutJSONToDraft builds the domain draft. It returns the names of
// item fields whose price could not be parsed.
func CheckoutJSONToDraft(req CheckoutRequest) (checkout.Draft, []string) {
	d := checkout.Draft{
		Customer: entities.CustomerInfo{
			UserID: req.Customer.UserID,
			Name:   req.Customer.Name,
			Email:  req.Customer.Email,
			Phone:  req.Customer.Phone,
		},
		ShippingAddress: AddressJSONToEntity(req.ShippingAddress),
		PaymentMethod:   entities.PaymentMethod(req.PaymentMethod),
		Notes:           req.Notes,
	}
	if req.BillingAddress != nil {
		billing := AddressJSONToEntity(*req.BillingAddress)
		d.BillingAddress = &billing
	}

	var invalid []string
	for i, it := range req.Items {
		price, err := money.Parse(it.UnitPrice)
		if err != nil {
			invalid = append(invalid, fieldIndex("items", i, "unit_price"))
			continue
		}
		d.Cart.Add(entities.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU,
			Quantity:  it.Quantity,
			UnitPrice: price,
		})
	}
	return d, invalid
}

func CheckoutResultToJSON(res service.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		OrderID:     res.OrderID,
		Status:      string(res.Status),
		TotalAmount: money.Format(res.Total),
		PaymentURL:  res.PaymentURL,
		Replayed:    res.Replayed,
	}
}

func PaymentOutcomeToJSON(o service.PaymentOutcome) PaymentOutcome {
	out := PaymentOutcome{
		OrderID:       o.OrderID,
		Result:        string(o.Result),
		Status:        string(o.Status),
		TransactionID: o.TransactionID,
		Message:       o.Message,
		ClearCart:     o.ClearCart,
	}
	if !o.Total.IsZero() {
		out.TotalAmount = money.Format(o.Total)
	}
	return out
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU,
			Quantity:  it.Quantity,
			UnitPrice: money.Format(it.UnitPrice),
			LineTotal: money.Format(it.LineTotal),
		}
	}

	res := Order{
		ID:              o.ID,
		UserID:          o.UserID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		PaymentMethod:   string(o.PaymentMethod),
		Notes:           o.Notes,
		Status:          string(o.Status),
		TransactionID:   o.TransactionID,
		Subtotal:        money.Format(o.Subtotal),
		DeliveryFee:     money.Format(o.DeliveryFee),
		TotalAmount:     money.Format(o.Total),
		Currency:        money.Currency,
		ShippingAddress: AddressEntityToJSON(o.ShippingAddress),
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.BillingAddress != nil {
		billing := AddressEntityToJSON(*o.BillingAddress)
		res.BillingAddress = &billing
	}
	return res
}

func ImportReportToJSON(r service.ImportReport) ImportReport {
	errs := make([]ImportError, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = ImportError{Row: e.Row, Source: e.Source, Message: e.Message}
	}
	return ImportReport{Imported: r.Imported, Errors: errs}
}

// PhoneJSONToEntity converts a feed record. A missing availability means
// available; a malformed price is reported as an error.
func PhoneJSONToEntity(p Phone) (entities.Phone, error) {
	var price *decimal.Decimal
	if p.Price != nil {
		d, err := decimal.NewFromString(*p.Price)
		if err != nil || d.IsNegative() {
			return entities.Phone{}, entities.NewValidationError("Invalid phone price", "price")
		}
		d = money.Round(d)
		price = &d
	}
	available := true
	if p.Available != nil {
		available = *p.Available
	}
	return entities.Phone{
		ID:       p.ID,
		Name:     p.Name,
		Brand:    p.Brand,
		ImageURL: p.ImageURL,
		Price:    price,
		Specs: entities.PhoneSpecs{
			Display:   p.Specs.Display,
			Camera:    p.Specs.Camera,
			Battery:   p.Specs.Battery,
			Storage:   p.Specs.Storage,
			RAM:       p.Specs.RAM,
			Processor: p.Specs.Processor,
			OS:        p.Specs.OS,
		},
		Features:    p.Features,
		ReleaseDate: p.ReleaseDate,
		Colors:      p.Colors,
		Available:   available,
		SourceURL:   p.SourceURL,
	}, nil
}

func feesToJSON(table []checkout.GovernorateFee, def, threshold decimal.Decimal) DeliveryFees {
	res := DeliveryFees{
		Currency:     money.Currency,
		DefaultFee:   money.Format(def),
		Governorates: make([]GovernorateFee, len(table)),
	}
	if threshold.IsPositive() {
		res.FreeThreshold = money.Format(threshold)
	}
	for i, f := range table {
		res.Governorates[i] = GovernorateFee{Governorate: string(f.Governorate), Fee: money.Format(f.Fee)}
	}
	return res
}
