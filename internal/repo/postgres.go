package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var orderColumns = []string{
	"id", "user_id", "customer_name", "customer_email", "customer_phone",
	"payment_method", "notes", "status", "transaction_id",
	"subtotal", "delivery_fee", "total_amount", "created_at", "updated_at",
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(
		"order_id", "kind", "governorate", "area", "block",
		"street", "building", "floor", "apartment", "notes").
		From("order_addresses").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var addresses []Address
	if err := r.selectContext(ctx, &addresses, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get addresses: %w", err)
	}

	query, args = r.qb.Select(
		"order_id", "line_no", "product_id", "name", "sku",
		"quantity", "unit_price", "line_total").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("line_no").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, addresses, items), nil
}

func (r *postgresRepo) LatestOrderIDs(ctx context.Context, count int) ([]string, error) {
	query, args := r.qb.Select("id").
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var ids []string
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select latest orders: %w", err)
	}
	return ids, nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, nullString(o.UserID), o.CustomerName, o.CustomerEmail, o.CustomerPhone,
			string(o.PaymentMethod), nullString(o.Notes), string(o.Status), nullString(o.TransactionID),
			o.Subtotal, o.DeliveryFee, o.Total, o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveAddress(ctx context.Context, orderID string, kind entities.AddressKind, a entities.Address) error {
	query, args := r.qb.Insert("order_addresses").
		Columns("order_id", "kind", "governorate", "area", "block",
			"street", "building", "floor", "apartment", "notes").
		Values(
			orderID, string(kind), string(a.Governorate), a.Area, a.Block,
			a.Street, a.Building, nullString(a.Floor), nullString(a.Apartment), nullString(a.Notes),
		).
		Suffix("ON CONFLICT (order_id, kind) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save %s address: %w", kind, err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "line_no", "product_id", "name", "sku",
			"quantity", "unit_price", "line_total").
		Suffix("ON CONFLICT (order_id, line_no) DO NOTHING")

	for i, it := range items {
		q = q.Values(orderID, i+1, it.ProductID, it.Name, nullString(it.SKU),
			it.Quantity, it.UnitPrice, it.LineTotal)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// UpdateStatus moves an order from one status to another. It fails with
// ErrInvalidTransition when the order is no longer in the expected status.
func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, transactionID string) error {
	if !entities.CanTransition(from, to) {
		return entities.ErrInvalidTransition
	}

	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Set("transaction_id", nullString(transactionID)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n == 0 {
		return entities.ErrInvalidTransition
	}
	return nil
}

func (r *postgresRepo) SavePhones(ctx context.Context, phones []entities.Phone) error {
	if len(phones) == 0 {
		return nil
	}

	q := r.qb.Insert("phones").
		Columns("id", "name", "brand", "image_url", "price", "display", "camera",
			"battery", "storage", "ram", "processor", "os", "features",
			"release_date", "colors", "available", "source_url", "updated_at").
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, brand = EXCLUDED.brand, image_url = EXCLUDED.image_url,
			price = EXCLUDED.price, display = EXCLUDED.display, camera = EXCLUDED.camera,
			battery = EXCLUDED.battery, storage = EXCLUDED.storage, ram = EXCLUDED.ram,
			processor = EXCLUDED.processor, os = EXCLUDED.os, features = EXCLUDED.features,
			release_date = EXCLUDED.release_date, colors = EXCLUDED.colors,
			available = EXCLUDED.available, source_url = EXCLUDED.source_url,
			updated_at = EXCLUDED.updated_at`)

	now := time.Now().UTC()
	seen := make(map[string]bool, len(phones))
	for _, p := range phones {
		// a single INSERT cannot touch the same conflict key twice
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		row := PhoneFromEntity(p)
		q = q.Values(
			row.ID, row.Name, row.Brand, row.ImageURL, row.Price,
			row.Display, row.Camera, row.Battery, row.Storage, row.RAM, row.Processor,
			row.OS, row.Features, row.ReleaseDate, row.Colors, row.Available, row.SourceURL, now,
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save phones: %w", err)
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
