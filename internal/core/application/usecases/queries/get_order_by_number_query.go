package queries

import (
	"errors"

	"washcubes/internal/core/domain/model/order"
	"washcubes/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves the read model of a single order by the
// customer-facing order number printed on the locker receipt.
type GetOrderByNumberQuery struct { //nolint:recvcheck //using for validation
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for one order by its number.
func NewGetOrderByNumberQuery(orderNumber string) (GetOrderByNumberQuery, error) {
	q := GetOrderByNumberQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderNumber(orderNumber); err != nil {
		return GetOrderByNumberQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// OrderNumber returns the requested order number.
func (q GetOrderByNumberQuery) OrderNumber() string {
	return q.orderNumber
}

func (q *GetOrderByNumberQuery) setOrderNumber(orderNumber string) error {
	if err := order.ValidateOrderNumber(orderNumber); err != nil {
		return err
	}
	q.orderNumber = orderNumber
	return nil
}
