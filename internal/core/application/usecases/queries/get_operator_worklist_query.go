package queries

import (
	"errors"

	"washcubes/internal/pkg/guard"
)

var ErrGetOperatorWorklistQueryIsNotConstructed = errors.New(
	"GetOperatorWorklistQuery must be created via NewGetOperatorWorklistQuery constructor",
)

// GetOperatorWorklistQuery retrieves the orders that need laundry-side
// attention: bags awaiting verification, orders in processing, orders
// suspended on an open discrepancy, and orders waiting in a locker for
// customer collection.
//
// Example:
//
//	query := NewGetOperatorWorklistQuery()
//	handler := NewGetOperatorWorklistQueryHandler(db)
//
//	worklist, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get worklist: %w", err)
//	}
//
//	fmt.Printf("%d orders waiting on an operator\n", len(worklist))
type GetOperatorWorklistQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOperatorWorklistQuery creates a query for the operator worklist.
// This is a parameterless query; the worklist spans all sites.
func NewGetOperatorWorklistQuery() GetOperatorWorklistQuery {
	return GetOperatorWorklistQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOperatorWorklistQuery) Validate() error {
	return q.guard.Validate(ErrGetOperatorWorklistQueryIsNotConstructed)
}
