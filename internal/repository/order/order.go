package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/repository"
	"storefront/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id",
	"user_id",
	"status",
	"payment_method",
	"payment_status",
	"price::text",
	"total_price::text",
	"delivery_address",
	"created_at",
	"updated_at",
}

const returningOrder = `RETURNING id, user_id, status, payment_method, payment_status,
	price::text, total_price::text, delivery_address, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel, err := FromDomainModify(&orderModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query := `INSERT INTO orders (user_id, status, payment_method, payment_status, price, total_price, delivery_address)
		VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7)
		` + returningOrder

	orderModel, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.UserID,
		orderModifyModel.Status,
		orderModifyModel.PaymentMethod,
		orderModifyModel.PaymentStatus,
		orderModifyModel.Price,
		orderModifyModel.TotalPrice,
		orderModifyModel.DeliveryAddress,
	))
	if err != nil {
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %w", order.ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate блокирует строку до конца текущей транзакции,
// вне транзакции блокировка снимается сразу же.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, id uuid.UUID, suffix string) (*entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id.String()})
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel)
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.PaymentStatus != nil {
		builder = builder.Where(sq.Eq{"payment_status": filter.PaymentStatus.String()})
	}
	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID.String()})
	}

	builder = builder.
		OrderBy("created_at DESC", "id").
		Limit(filter.Limit).
		Offset(filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, filter.Limit)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels)
}

// Update меняет только переданные поля. Способ оплаты и владелец заказа не обновляются.
func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	if orderModifyEntity.ID == nil {
		return nil, order.ErrInvalidOrderID
	}

	orderModifyModel, err := FromDomainModify(&orderModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	builder := qb.
		Update("orders")

	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.PaymentStatus != nil {
		builder = builder.Set("payment_status", orderModifyModel.PaymentStatus)
	}
	if orderModifyModel.Price != nil {
		builder = builder.Set("price", sq.Expr("?::numeric", orderModifyModel.Price))
	}
	if orderModifyModel.TotalPrice != nil {
		builder = builder.Set("total_price", sq.Expr("?::numeric", orderModifyModel.TotalPrice))
	}
	if orderModifyModel.DeliveryAddress != nil {
		builder = builder.Set("delivery_address", orderModifyModel.DeliveryAddress)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID.String()}).
		Suffix(returningOrder)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %w", order.ErrConstraintViolation, err)
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel)
}

func (r *Repository) CountByStatus(ctx context.Context) ([]entities.OrderStatusCount, error) {
	query := `SELECT status, COUNT(*)
		FROM orders
		GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make([]StatusCountDB, 0, len(entities.OrderStatuses()))
	for rows.Next() {
		var c StatusCountDB
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
		}
		counts = append(counts, c)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}

	return ToDomainStatusCounts(counts), nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.UserID,
		&orderModel.Status,
		&orderModel.PaymentMethod,
		&orderModel.PaymentStatus,
		&orderModel.Price,
		&orderModel.TotalPrice,
		&orderModel.DeliveryAddress,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}

func isConstraintViolation(err error) bool {
	return repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) ||
		repository.IsPgErrorWithCode(err, repository.PgErrNotNullViolation) ||
		repository.IsPgErrorWithCode(err, repository.PgErrNumericValueOutOfRange)
}
