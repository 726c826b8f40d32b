package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/google/uuid"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository] working on the "orders" table. Items are stored as a
// JSONB array; customer_id carries no foreign key.
type orderRepository struct {
	*DB
	logger *logger.Logger
}

// NewOrderRepository constructs an [OrderRepository] backed by db.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		DB:     db,
		logger: logger,
	}
}

func scanOrder(row rowScanner) (models.Order, error) {
	var (
		o      models.Order
		status string
	)
	err := row.Scan(&o.ID, &o.CustomerID, &o.OrderNumber, &o.Items, &o.TotalAmount, &status, &o.CreatedAt, &o.UpdatedAt)
	o.Status = models.OrderStatus(status)
	return o, err
}

func (o *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	row := o.DB.QueryRowContext(ctx, createOrder,
		order.ID,
		order.CustomerID,
		order.OrderNumber,
		order.Items,
		order.TotalAmount,
		string(order.Status),
	)

	created, err := scanOrder(row)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "orderRepository.CreateOrder").
			Str("order_number", order.OrderNumber).
			Msg("failed to insert order")
		return models.Order{}, classifyError(err, ErrExecutingQuery)
	}

	return created, nil
}

func (o *orderRepository) ListOrders(ctx context.Context, page models.Pagination) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOrdersQuery(page)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.ListOrders").Msg("failed to create query")
		return nil, err
	}

	rows, err := o.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.ListOrders").
			Int("page", page.Page).
			Int("page_size", page.PageSize).
			Msg("failed to execute query for listing orders")
		return nil, classifyError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	orders := make([]models.Order, 0, 10)
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "orderRepository.ListOrders").Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "orderRepository.ListOrders").Msg("error occurred during rows iteration")
		return nil, classifyError(err, ErrScanningRows)
	}

	return orders, nil
}

func (o *orderRepository) CountOrders(ctx context.Context) (int64, error) {
	var total int64
	if err := o.DB.QueryRowContext(ctx, countOrders).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "orderRepository.CountOrders").
			Msg("failed to count orders")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

func (o *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (models.Order, error) {
	order, err := scanOrder(o.DB.QueryRowContext(ctx, findOrderByID, id))
	if err != nil {
		err = classifyError(err, ErrExecutingQuery)
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "orderRepository.FindOrderByID").
				Stringer("id", id).
				Msg("failed to find order")
		}
		return models.Order{}, err
	}

	return order, nil
}

func (o *orderRepository) UpdateOrder(ctx context.Context, id uuid.UUID, update models.OrderUpdate) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateOrderQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.UpdateOrder").Msg("failed to create query")
		return models.Order{}, err
	}

	updated, err := scanOrder(o.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = classifyError(err, ErrExecutingQuery)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).
				Str("func", "orderRepository.UpdateOrder").
				Stringer("id", id).
				Msg("failed to update order")
		}
		return models.Order{}, err
	}

	return updated, nil
}

func (o *orderRepository) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	result, err := o.DB.ExecContext(ctx, deleteOrder, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "orderRepository.DeleteOrder").
			Stringer("id", id).
			Msg("failed to delete order")
		return classifyError(err, ErrExecutingQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
