package queries

import (
	"context"

	"washcubes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler retrieves a single order summary by its
// customer-facing number.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for order number lookups.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// with the given number exists.
func (h GetOrderByNumberQueryHandler) Handle(ctx context.Context, query GetOrderByNumberQuery) (OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return OrderSummary{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE order_number = ?
	`, query.OrderNumber()).Rows()
	if err != nil {
		return OrderSummary{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderSummary{}, err
		}
		return OrderSummary{}, errs.NewObjectNotFoundError("order", query.OrderNumber())
	}

	summary, err := scanOrderSummary(rows)
	if err != nil {
		return OrderSummary{}, err
	}

	return summary, rows.Err()
}
