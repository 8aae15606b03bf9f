package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"washcubes/internal/adapters/out/postgres/orderrepo"
	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/order"
	"washcubes/internal/core/ports"
	"washcubes/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositorySQLiteTestSuite exercises the order repository against an
// in-memory SQLite database. The SQL it relies on (unique index, conditional
// UPDATE with RETURNING) behaves the same on PostgreSQL.
type OrderRepositorySQLiteTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositorySQLiteTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.db = db
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(db, suite.tracker)
}

func (suite *OrderRepositorySQLiteTestSuite) createTestOrder(orderNumber string) *order.Order {
	item, err := order.NewItem("Shirt", "per piece", 4.50, 2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), orderNumber, kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), "L01", kernel.NewUUID(), []order.Item{item},
	)
	suite.Require().NoError(err)
	testOrder.SetCreatedAt(time.Now().UTC())
	return testOrder
}

func (suite *OrderRepositorySQLiteTestSuite) addOrder(testOrder *order.Order) {
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), testOrder))
}

func (suite *OrderRepositorySQLiteTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("123456AB3D")
	suite.addOrder(testOrder)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal("123456AB3D", retrieved.OrderNumber())
	suite.Equal(testOrder.UserID(), retrieved.UserID())
	suite.Equal("L01", retrieved.DropOffCompartment())
	suite.InDelta(9.00, retrieved.EstimatedPrice(), 0.001)
	suite.Len(retrieved.Items(), 1)
	suite.Equal("Shirt", retrieved.Items()[0].Name())
	suite.Equal(2, retrieved.Items()[0].Quantity())
	suite.False(retrieved.Stage().DropOff.Status)
	suite.Equal(0, retrieved.Version())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositorySQLiteTestSuite) TestAdd_DuplicateOrderNumber() {
	ctx := context.Background()

	first := suite.createTestOrder("123456AB3D")
	suite.addOrder(first)

	second := suite.createTestOrder("123456AB3D")
	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, ports.ErrDuplicateOrderNumber)
}

func (suite *OrderRepositorySQLiteTestSuite) TestUpdate_PersistsStageAndBumpsVersion() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("123456AB3D")
	suite.addOrder(testOrder)

	suite.Require().NoError(testOrder.ConfirmDropOff(time.Now().UTC()))
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.Stage().DropOff.Status)
	suite.Equal(1, retrieved.Version())
}

func (suite *OrderRepositorySQLiteTestSuite) TestUpdate_ConcurrentModification() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("123456AB3D")
	suite.addOrder(testOrder)

	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ConfirmDropOff(time.Now().UTC()))
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Cancel())
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, ports.ErrConcurrentUpdate)
}

func (suite *OrderRepositorySQLiteTestSuite) TestUpdate_NonExistentOrder() {
	testOrder := suite.createTestOrder("123456AB3D")

	err := suite.repository.Update(context.Background(), testOrder)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositorySQLiteTestSuite) TestGet_NonExistentOrder() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *OrderRepositorySQLiteTestSuite) TestGetByNumber() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("123456AB3D")
	suite.addOrder(testOrder)

	retrieved, err := suite.repository.GetByNumber(ctx, "123456AB3D")
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())

	_, err = suite.repository.GetByNumber(ctx, "000000ZZZZ")
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *OrderRepositorySQLiteTestSuite) TestGetReadyForLockerPickup() {
	ctx := context.Background()
	now := time.Now().UTC()

	siteID := kernel.NewUUID()

	makeOrderAtSite := func(orderNumber string) *order.Order {
		item, err := order.NewItem("Shirt", "per piece", 4.50, 1)
		suite.Require().NoError(err)
		o, err := order.NewOrder(
			kernel.NewUUID(), orderNumber, kernel.NewUUID(), kernel.NewUUID(),
			siteID, "L01", kernel.NewUUID(), []order.Item{item},
		)
		suite.Require().NoError(err)
		o.SetCreatedAt(now)
		return o
	}

	ready := makeOrderAtSite("111111AAA1")
	suite.Require().NoError(ready.ConfirmDropOff(now))

	notDroppedOff := makeOrderAtSite("222222BBB2")

	alreadySelected := makeOrderAtSite("333333CCC3")
	suite.Require().NoError(alreadySelected.ConfirmDropOff(now))
	suite.Require().NoError(alreadySelected.MarkSelectedByRider())

	for _, o := range []*order.Order{ready, notDroppedOff, alreadySelected} {
		suite.addOrder(o)
	}

	orders, err := suite.repository.GetReadyForLockerPickup(ctx, siteID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(ready.ID(), orders[0].ID())
}

func (suite *OrderRepositorySQLiteTestSuite) TestGetReadyForLaundryPickup() {
	ctx := context.Background()
	now := time.Now().UTC()

	collectionSiteID := kernel.NewUUID()

	makeProcessedOrder := func(orderNumber string) *order.Order {
		item, err := order.NewItem("Shirt", "per piece", 4.50, 1)
		suite.Require().NoError(err)
		o, err := order.NewOrder(
			kernel.NewUUID(), orderNumber, kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "L01", collectionSiteID, []order.Item{item},
		)
		suite.Require().NoError(err)
		o.SetCreatedAt(now)
		suite.Require().NoError(o.ConfirmDropOff(now))
		suite.Require().NoError(o.OperatorApprove(now))
		return o
	}

	cleaned := makeProcessedOrder("111111AAA1")
	suite.Require().NoError(cleaned.ConfirmProcessingComplete(now))

	stillProcessing := makeProcessedOrder("222222BBB2")

	for _, o := range []*order.Order{cleaned, stillProcessing} {
		suite.addOrder(o)
	}

	orders, err := suite.repository.GetReadyForLaundryPickup(ctx, collectionSiteID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(cleaned.ID(), orders[0].ID())
}

func (suite *OrderRepositorySQLiteTestSuite) TestSelectForJob_ClaimsOnlyUnclaimed() {
	ctx := context.Background()
	now := time.Now().UTC()

	free := suite.createTestOrder("111111AAA1")
	suite.Require().NoError(free.ConfirmDropOff(now))

	taken := suite.createTestOrder("222222BBB2")
	suite.Require().NoError(taken.ConfirmDropOff(now))
	suite.Require().NoError(taken.MarkSelectedByRider())

	suite.addOrder(free)
	suite.addOrder(taken)

	claimed, err := suite.repository.SelectForJob(ctx, []kernel.UUID{free.ID(), taken.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 1)
	suite.Equal(free.ID(), claimed[0])

	retrieved, err := suite.repository.Get(ctx, free.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.SelectedByRider())
	suite.Equal(1, retrieved.Version())
}

func (suite *OrderRepositorySQLiteTestSuite) TestSelectForJob_EmptyInput() {
	claimed, err := suite.repository.SelectForJob(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Empty(claimed)
}

func (suite *OrderRepositorySQLiteTestSuite) TestReleaseFromJob_UndoesClaim() {
	ctx := context.Background()
	now := time.Now().UTC()

	declined := suite.createTestOrder("111111AAA1")
	suite.Require().NoError(declined.ConfirmDropOff(now))

	kept := suite.createTestOrder("222222BBB2")
	suite.Require().NoError(kept.ConfirmDropOff(now))

	suite.addOrder(declined)
	suite.addOrder(kept)

	claimed, err := suite.repository.SelectForJob(ctx, []kernel.UUID{declined.ID(), kept.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 2)

	suite.Require().NoError(suite.repository.ReleaseFromJob(ctx, []kernel.UUID{declined.ID()}))

	released, err := suite.repository.Get(ctx, declined.ID())
	suite.Require().NoError(err)
	suite.False(released.SelectedByRider())
	suite.Equal(2, released.Version())

	untouched, err := suite.repository.Get(ctx, kept.ID())
	suite.Require().NoError(err)
	suite.True(untouched.SelectedByRider())
	suite.Equal(1, untouched.Version())
}

func (suite *OrderRepositorySQLiteTestSuite) TestReleaseFromJob_EmptyInput() {
	suite.Require().NoError(suite.repository.ReleaseFromJob(context.Background(), nil))
}

func (suite *OrderRepositorySQLiteTestSuite) TestGetStaleUnconfirmed() {
	ctx := context.Background()
	now := time.Now().UTC()

	stale := suite.createTestOrder("111111AAA1")
	stale.SetCreatedAt(now.Add(-2 * time.Hour))

	fresh := suite.createTestOrder("222222BBB2")

	droppedOff := suite.createTestOrder("333333CCC3")
	droppedOff.SetCreatedAt(now.Add(-2 * time.Hour))
	suite.Require().NoError(droppedOff.ConfirmDropOff(now))

	for _, o := range []*order.Order{stale, fresh, droppedOff} {
		suite.addOrder(o)
	}

	orders, err := suite.repository.GetStaleUnconfirmed(ctx, now.Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(stale.ID(), orders[0].ID())
}

func TestOrderRepositorySQLiteTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositorySQLiteTestSuite))
}
