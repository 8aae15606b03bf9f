package order_test

import (
	"testing"
	"time"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validOrderNumber = "123456AB3D"

func createValidItem(t *testing.T) order.Item {
	t.Helper()
	item, err := order.NewItem("Shirt", "per piece", 4.50, 2)
	require.NoError(t, err)
	return item
}

func createValidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		validOrderNumber,
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"L01",
		kernel.NewUUID(),
		[]order.Item{createValidItem(t)},
	)
	require.NoError(t, err)
	return o
}

// createProcessingOrder walks a fresh order through drop-off and operator
// approval so tests can start from the processing state.
func createProcessingOrder(t *testing.T, now time.Time) *order.Order {
	t.Helper()
	o := createValidOrder(t)
	require.NoError(t, o.ConfirmDropOff(now))
	require.NoError(t, o.OperatorApprove(now))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()
		item := createValidItem(t)

		o, err := order.NewOrder(id, validOrderNumber, userID, kernel.NewUUID(),
			kernel.NewUUID(), "L01", kernel.NewUUID(), []order.Item{item})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, validOrderNumber, o.OrderNumber())
		assert.True(t, o.UserID().IsEqual(userID))
		assert.Equal(t, "L01", o.DropOffCompartment())
		assert.Empty(t, o.CollectionCompartment())
		assert.InDelta(t, 9.00, o.EstimatedPrice(), 0.001)
		assert.InDelta(t, 9.00, o.FinalPrice(), 0.001)
		assert.False(t, o.SelectedByRider())
		assert.False(t, o.Cancelled())
		assert.Zero(t, o.Version())
		assert.False(t, o.Stage().DropOff.Status)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validOrderNumber, kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "L01", kernel.NewUUID(), []order.Item{createValidItem(t)})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with malformed order number", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "short", kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "L01", kernel.NewUUID(), []order.Item{createValidItem(t)})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "orderNumber is invalid")
	})

	t.Run("should fail with empty drop-off compartment", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), validOrderNumber, kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "", kernel.NewUUID(), []order.Item{createValidItem(t)})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "dropOffCompartment is required")
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), validOrderNumber, kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "L01", kernel.NewUUID(), nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "bad", kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "", kernel.NewUUID(), nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "orderNumber is invalid")
		assert.Contains(t, err.Error(), "dropOffCompartment is required")
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderCancel(t *testing.T) {
	now := time.Now()

	t.Run("should cancel before drop-off", func(t *testing.T) {
		o := createValidOrder(t)

		require.NoError(t, o.Cancel())
		assert.True(t, o.Cancelled())
	})

	t.Run("should reject cancel after drop-off", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))

		err := o.Cancel()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.False(t, o.Cancelled())
	})

	t.Run("should reject double cancel", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Cancel())

		assert.ErrorIs(t, o.Cancel(), order.ErrInvalidTransition)
	})
}

func TestOrderConfirmDropOff(t *testing.T) {
	now := time.Now()

	t.Run("should set drop-off checkpoint", func(t *testing.T) {
		o := createValidOrder(t)

		require.NoError(t, o.ConfirmDropOff(now))
		assert.True(t, o.Stage().DropOff.Status)
		assert.Equal(t, now, o.Stage().DropOff.DateUpdated)
	})

	t.Run("should reject repeated drop-off", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))

		assert.ErrorIs(t, o.ConfirmDropOff(now), order.ErrInvalidTransition)
	})

	t.Run("should reject drop-off on cancelled order", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Cancel())

		assert.ErrorIs(t, o.ConfirmDropOff(now), order.ErrInvalidTransition)
	})
}

func TestOrderOperatorApprove(t *testing.T) {
	now := time.Now()

	t.Run("should start processing and fix final price", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))

		require.NoError(t, o.OperatorApprove(now))
		assert.True(t, o.Stage().InProgress.Verified)
		assert.True(t, o.Stage().InProgress.Processing)
		assert.InDelta(t, o.EstimatedPrice(), o.FinalPrice(), 0.001)
	})

	t.Run("should reject approval before drop-off", func(t *testing.T) {
		o := createValidOrder(t)

		assert.ErrorIs(t, o.OperatorApprove(now), order.ErrInvalidTransition)
	})

	t.Run("should reject approval while discrepancy is open", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))
		require.NoError(t, o.OperatorEdit([]order.Item{createValidItem(t)}, nil, 12.00, now))

		assert.ErrorIs(t, o.OperatorApprove(now), order.ErrInvalidTransition)
	})
}

func TestOrderOperatorEdit(t *testing.T) {
	now := time.Now()

	t.Run("should keep audit copy and open discrepancy", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))
		originalItems := o.Items()
		revised, err := order.NewItem("Shirt", "per piece", 4.50, 5)
		require.NoError(t, err)

		require.NoError(t, o.OperatorEdit([]order.Item{revised},
			[]string{"https://cdn.example.com/proof-1.jpg"}, 22.50, now))

		assert.Equal(t, originalItems, o.OldItems())
		assert.Equal(t, []order.Item{revised}, o.Items())
		assert.InDelta(t, 22.50, o.FinalPrice(), 0.001)
		assert.True(t, o.Stage().OrderError.Status)
		assert.True(t, o.Stage().InProgress.Verified)
		assert.False(t, o.Stage().InProgress.Processing)
		assert.Equal(t, []string{"https://cdn.example.com/proof-1.jpg"}, o.Stage().OrderError.ProofPicURLs)
	})

	t.Run("should reject edit before drop-off", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.OperatorEdit([]order.Item{createValidItem(t)}, nil, 10.00, now)

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))

		assert.ErrorIs(t, o.OperatorEdit(nil, nil, 10.00, now), order.ErrItemsAreRequired)
	})

	t.Run("should reject negative final price", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))

		err := o.OperatorEdit([]order.Item{createValidItem(t)}, nil, -1.00, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "finalPrice is invalid")
		assert.False(t, o.Stage().OrderError.Status)
	})
}

func TestOrderErrorResolution(t *testing.T) {
	now := time.Now()

	createErroredOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))
		require.NoError(t, o.OperatorEdit([]order.Item{createValidItem(t)}, nil, 15.00, now))
		return o
	}

	t.Run("should resume processing when customer accepts", func(t *testing.T) {
		o := createErroredOrder(t)

		require.NoError(t, o.ResolveError(now))
		assert.False(t, o.Stage().OrderError.Status)
		assert.True(t, o.Stage().OrderError.UserAccepted)
		assert.True(t, o.Stage().InProgress.Processing)
		assert.False(t, o.Stage().AwaitingManualResolution())
	})

	t.Run("should suspend order when customer rejects", func(t *testing.T) {
		o := createErroredOrder(t)

		require.NoError(t, o.RejectError(now))
		assert.True(t, o.Stage().OrderError.Status)
		assert.True(t, o.Stage().OrderError.UserRejected)
		assert.True(t, o.Stage().AwaitingManualResolution())
		assert.ErrorIs(t, o.ConfirmProcessingComplete(now), order.ErrInvalidTransition)
	})

	t.Run("should close rejected discrepancy through return approval", func(t *testing.T) {
		o := createErroredOrder(t)
		require.NoError(t, o.RejectError(now))

		require.NoError(t, o.ApproveReturn(now))
		assert.True(t, o.Stage().OrderError.ReturnProcessed)
		assert.True(t, o.Stage().ProcessingComplete.Status)
	})

	t.Run("should reject resolution without open discrepancy", func(t *testing.T) {
		o := createValidOrder(t)

		assert.ErrorIs(t, o.ResolveError(now), order.ErrInvalidTransition)
		assert.ErrorIs(t, o.RejectError(now), order.ErrInvalidTransition)
		assert.ErrorIs(t, o.ApproveReturn(now), order.ErrInvalidTransition)
	})
}

func TestOrderConfirmProcessingComplete(t *testing.T) {
	now := time.Now()

	t.Run("should complete processing", func(t *testing.T) {
		o := createProcessingOrder(t, now)

		require.NoError(t, o.ConfirmProcessingComplete(now))
		assert.True(t, o.Stage().ProcessingComplete.Status)
	})

	t.Run("should reject completion before processing starts", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))

		assert.ErrorIs(t, o.ConfirmProcessingComplete(now), order.ErrInvalidTransition)
	})
}

func TestOrderRiderSelection(t *testing.T) {
	now := time.Now()

	t.Run("should claim order for a job exactly once", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))

		require.NoError(t, o.MarkSelectedByRider())
		assert.True(t, o.SelectedByRider())
		assert.ErrorIs(t, o.MarkSelectedByRider(), order.ErrAlreadySelectedByRider)
	})

	t.Run("should collect and release selection", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))
		require.NoError(t, o.MarkSelectedByRider())

		require.NoError(t, o.MarkCollectedByRider(now))
		assert.True(t, o.Stage().CollectedByRider.Status)
		assert.False(t, o.SelectedByRider())
	})

	t.Run("should reject collection without a job claim", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ConfirmDropOff(now))

		assert.ErrorIs(t, o.MarkCollectedByRider(now), order.ErrInvalidTransition)
	})
}

func TestOrderDeliveryAndCollection(t *testing.T) {
	now := time.Now()

	createReadyForDelivery := func(t *testing.T) *order.Order {
		t.Helper()
		o := createProcessingOrder(t, now)
		require.NoError(t, o.ConfirmProcessingComplete(now))
		require.NoError(t, o.MarkSelectedByRider())
		return o
	}

	t.Run("should dispatch out for delivery with a collection compartment", func(t *testing.T) {
		o := createReadyForDelivery(t)

		require.NoError(t, o.MarkOutForDelivery("L07", now))
		assert.True(t, o.Stage().OutForDelivery.Status)
		assert.Equal(t, "L07", o.CollectionCompartment())
		assert.False(t, o.SelectedByRider())
	})

	t.Run("should reject dispatch before processing completes", func(t *testing.T) {
		o := createProcessingOrder(t, now)
		require.NoError(t, o.MarkSelectedByRider())

		assert.ErrorIs(t, o.MarkOutForDelivery("L07", now), order.ErrInvalidTransition)
	})

	t.Run("should reject dispatch without a compartment", func(t *testing.T) {
		o := createReadyForDelivery(t)

		err := o.MarkOutForDelivery("", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "collectionCompartment is required")
	})

	t.Run("should complete order on customer collection", func(t *testing.T) {
		o := createReadyForDelivery(t)
		require.NoError(t, o.MarkOutForDelivery("L07", now))

		require.NoError(t, o.ConfirmCollection(now))
		assert.True(t, o.Stage().Completed.Status)
	})

	t.Run("should reject collection before delivery", func(t *testing.T) {
		o := createProcessingOrder(t, now)

		assert.ErrorIs(t, o.ConfirmCollection(now), order.ErrInvalidTransition)
	})

	t.Run("should reject double collection", func(t *testing.T) {
		o := createReadyForDelivery(t)
		require.NoError(t, o.MarkOutForDelivery("L07", now))
		require.NoError(t, o.ConfirmCollection(now))

		assert.ErrorIs(t, o.ConfirmCollection(now), order.ErrInvalidTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()

	t.Run("should restore full persisted state", func(t *testing.T) {
		item := createValidItem(t)
		oldItem, err := order.NewItem("Shirt", "per piece", 4.50, 1)
		require.NoError(t, err)

		stage := order.Stage{}
		stage.DropOff = order.Checkpoint{Status: true, DateUpdated: now}
		stage.InProgress = order.InProgressStage{Verified: true, Processing: true, DateUpdated: now}

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:                 kernel.NewUUID(),
			OrderNumber:        validOrderNumber,
			UserID:             kernel.NewUUID(),
			ServiceID:          kernel.NewUUID(),
			DropOffSiteID:      kernel.NewUUID(),
			DropOffCompartment: "L01",
			CollectionSiteID:   kernel.NewUUID(),
			Items:              []order.Item{item},
			OldItems:           []order.Item{oldItem},
			EstimatedPrice:     4.50,
			FinalPrice:         9.00,
			Stage:              stage,
			SelectedByRider:    true,
			CreatedAt:          now,
			Version:            3,
		})

		require.NoError(t, err)
		assert.Equal(t, []order.Item{oldItem}, o.OldItems())
		assert.InDelta(t, 4.50, o.EstimatedPrice(), 0.001)
		assert.InDelta(t, 9.00, o.FinalPrice(), 0.001)
		assert.True(t, o.Stage().InProgress.Processing)
		assert.True(t, o.SelectedByRider())
		assert.Equal(t, 3, o.Version())
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("should fail on corrupt persisted state", func(t *testing.T) {
		o, err := order.RestoreOrder(order.RestoreOrderParams{})

		require.Error(t, err)
		assert.Nil(t, o)
	})
}
