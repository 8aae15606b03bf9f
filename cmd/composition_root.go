package cmd

import (
	"log/slog"

	"washcubes/internal/adapters/in/http"
	"washcubes/internal/adapters/out/kafka"
	"washcubes/internal/adapters/out/postgres"
	"washcubes/internal/adapters/out/routing"
	"washcubes/internal/core/application/usecases/commands"
	"washcubes/internal/core/application/usecases/queries"
	"washcubes/internal/core/ports"
	"washcubes/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *kafka.NotificationPublisher
	jobClient  ports.RiderJobClient
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	writer := kafka.NewWriter(config.KafkaBrokers, config.KafkaOrderEventTopic)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewNotificationPublisher(writer),
		jobClient:  routing.NewHTTPRiderJobClient(config.RiderJobServiceURL),
		logger:     logger,
	}
}

// Close releases the composition root's outbound connections.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateConfirmDropOffCommandHandler() commands.ConfirmDropOffCommandHandler {
	return commands.NewConfirmDropOffCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.uow(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateResolveOrderErrorCommandHandler() commands.ResolveOrderErrorCommandHandler {
	return commands.NewResolveOrderErrorCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateRejectOrderErrorCommandHandler() commands.RejectOrderErrorCommandHandler {
	return commands.NewRejectOrderErrorCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateApproveReturnCommandHandler() commands.ApproveReturnCommandHandler {
	return commands.NewApproveReturnCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateCompleteProcessingCommandHandler() commands.CompleteProcessingCommandHandler {
	return commands.NewCompleteProcessingCommandHandler(c.orderUoW(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAssignPickupBatchCommandHandler() commands.AssignPickupBatchCommandHandler {
	return commands.NewAssignPickupBatchCommandHandler(c.orderUoW(), c.jobClient, c.logger)
}

func (c *CompositionRoot) CreateAssignDeliveryBatchCommandHandler() commands.AssignDeliveryBatchCommandHandler {
	return commands.NewAssignDeliveryBatchCommandHandler(c.orderUoW(), c.jobClient, c.logger)
}

func (c *CompositionRoot) CreateConfirmRiderCollectionCommandHandler() commands.ConfirmRiderCollectionCommandHandler {
	return commands.NewConfirmRiderCollectionCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateConfirmRiderDeliveryCommandHandler() commands.ConfirmRiderDeliveryCommandHandler {
	return commands.NewConfirmRiderDeliveryCommandHandler(c.uow(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateConfirmCollectionCommandHandler() commands.ConfirmCollectionCommandHandler {
	return commands.NewConfirmCollectionCommandHandler(c.uow(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateExpireStaleReservationsCommandHandler() commands.ExpireStaleReservationsCommandHandler {
	return commands.NewExpireStaleReservationsCommandHandler(c.uow(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOperatorWorklistQueryHandler() queries.GetOperatorWorklistQueryHandler {
	return queries.NewGetOperatorWorklistQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSiteAvailabilityQueryHandler() queries.GetSiteAvailabilityQueryHandler {
	return queries.NewGetSiteAvailabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllSitesQueryHandler() queries.GetAllSitesQueryHandler {
	return queries.NewGetAllSitesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickupQueueQueryHandler() queries.GetPickupQueueQueryHandler {
	return queries.NewGetPickupQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueueQueryHandler() queries.GetDeliveryQueueQueryHandler {
	return queries.NewGetDeliveryQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReadyCountsQueryHandler() queries.GetReadyCountsQueryHandler {
	return queries.NewGetReadyCountsQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server from every use case handler.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.ServerHandlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		CancelOrder:            c.CreateCancelOrderCommandHandler(),
		ConfirmDropOff:         c.CreateConfirmDropOffCommandHandler(),
		ApproveOrder:           c.CreateApproveOrderCommandHandler(),
		EditOrder:              c.CreateEditOrderCommandHandler(),
		ResolveOrderError:      c.CreateResolveOrderErrorCommandHandler(),
		RejectOrderError:       c.CreateRejectOrderErrorCommandHandler(),
		ApproveReturn:          c.CreateApproveReturnCommandHandler(),
		CompleteProcessing:     c.CreateCompleteProcessingCommandHandler(),
		AssignPickupBatch:      c.CreateAssignPickupBatchCommandHandler(),
		AssignDeliveryBatch:    c.CreateAssignDeliveryBatchCommandHandler(),
		ConfirmRiderCollection: c.CreateConfirmRiderCollectionCommandHandler(),
		ConfirmRiderDelivery:   c.CreateConfirmRiderDeliveryCommandHandler(),
		ConfirmCollection:      c.CreateConfirmCollectionCommandHandler(),
		GetOrder:               c.CreateGetOrderQueryHandler(),
		GetOrderByNumber:       c.CreateGetOrderByNumberQueryHandler(),
		GetUserOrders:          c.CreateGetUserOrdersQueryHandler(),
		GetOperatorWorklist:    c.CreateGetOperatorWorklistQueryHandler(),
		GetSiteAvailability:    c.CreateGetSiteAvailabilityQueryHandler(),
		GetAllSites:            c.CreateGetAllSitesQueryHandler(),
		GetPickupQueue:         c.CreateGetPickupQueueQueryHandler(),
		GetDeliveryQueue:       c.CreateGetDeliveryQueueQueryHandler(),
		GetReadyCounts:         c.CreateGetReadyCountsQueryHandler(),
	})
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireStaleReservationsCommandHandler(),
		config.ReservationTTL,
		config.ReservationSweepSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
