package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/google/uuid"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns     = []string{"id", "name", "email", "password", "created_at"}
	customerColumns = []string{"id", "name", "email", "phone", "address", "created_at"}
	orderColumns    = []string{"id", "customer_id", "order_number", "items", "total_amount", "status", "created_at", "updated_at"}
)

const (
	createUser = `INSERT INTO users (id, name, email, password)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, email, password, created_at;`

	findUserByEmail = `SELECT id, name, email, password, created_at
    FROM users
    WHERE email = $1;`

	createCustomer = `INSERT INTO customers (id, name, email, phone, address)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, email, phone, address, created_at;`

	findCustomerByID = `SELECT id, name, email, phone, address, created_at
    FROM customers
    WHERE id = $1;`

	countCustomers = `SELECT COUNT(*) FROM customers;`

	deleteCustomer = `DELETE FROM customers WHERE id = $1;`

	createOrder = `INSERT INTO orders (id, customer_id, order_number, items, total_amount, status)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, customer_id, order_number, items, total_amount, status, created_at, updated_at;`

	findOrderByID = `SELECT id, customer_id, order_number, items, total_amount, status, created_at, updated_at
    FROM orders
    WHERE id = $1;`

	countOrders = `SELECT COUNT(*) FROM orders;`

	deleteOrder = `DELETE FROM orders WHERE id = $1;`
)

// paginate appends LIMIT/OFFSET as bound parameters. Squirrel's Limit and
// Offset take unsigned values, which would silently turn a negative page
// into a huge one instead of letting PostgreSQL reject it.
func paginate(b sq.SelectBuilder, page models.Pagination) sq.SelectBuilder {
	return b.Suffix("LIMIT ? OFFSET ?", page.PageSize, page.Offset())
}

// buildListCustomersQuery selects one page of customers in insertion order.
func buildListCustomersQuery(page models.Pagination) (string, []any, error) {
	query, args, err := paginate(
		psql.Select(customerColumns...).
			From("customers").
			OrderBy("created_at ASC", "id ASC"),
		page,
	).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindCustomersByIDsQuery selects every customer whose id is in ids.
func buildFindCustomersByIDsQuery(ids []uuid.UUID) (string, []any, error) {
	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}

	query, args, err := psql.Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"id": strIDs}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateCustomerQuery writes only the non-nil fields of update and
// returns the resulting row. The caller must not pass an empty update.
func buildUpdateCustomerQuery(id uuid.UUID, update models.CustomerUpdate) (string, []any, error) {
	setMap := make(map[string]any, 4)
	if update.Name != nil {
		setMap["name"] = *update.Name
	}
	if update.Email != nil {
		setMap["email"] = *update.Email
	}
	if update.Phone != nil {
		setMap["phone"] = *update.Phone
	}
	if update.Address != nil {
		setMap["address"] = *update.Address
	}

	query, args, err := psql.Update("customers").
		SetMap(setMap).
		Where(sq.Eq{"id": id.String()}).
		Suffix("RETURNING " + strings.Join(customerColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListOrdersQuery selects one page of orders, newest first.
func buildListOrdersQuery(page models.Pagination) (string, []any, error) {
	query, args, err := paginate(
		psql.Select(orderColumns...).
			From("orders").
			OrderBy("created_at DESC", "id DESC"),
		page,
	).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateOrderQuery writes the non-nil fields of update, always bumps
// updated_at and returns the resulting row.
func buildUpdateOrderQuery(id uuid.UUID, update models.OrderUpdate) (string, []any, error) {
	b := psql.Update("orders").Set("updated_at", sq.Expr("NOW()"))

	if update.Customer != nil {
		b = b.Set("customer_id", *update.Customer)
	}
	if update.OrderNumber != nil {
		b = b.Set("order_number", *update.OrderNumber)
	}
	if update.Items != nil {
		b = b.Set("items", *update.Items)
	}
	if update.TotalAmount != nil {
		b = b.Set("total_amount", *update.TotalAmount)
	}
	if update.Status != nil {
		b = b.Set("status", string(*update.Status))
	}

	query, args, err := b.
		Where(sq.Eq{"id": id.String()}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
