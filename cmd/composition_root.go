package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/memory"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/redis"
	"procurement/internal/adapters/out/ws"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/ports"
	"procurement/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived dependencies and builds every handler.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	redis      *goredis.Client
	carts      ports.CartStore
	profiles   ports.ProfileCache
	hub        *ws.Hub
}

// NewCompositionRoot wires the stores. With REDIS_ENABLED carts and cached
// profiles live in Redis; otherwise they are kept in process memory.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        ws.NewHub(logger),
	}

	if config.RedisEnabled {
		client, err := redis.Connect(ctx, config.Redis())
		if err != nil {
			return nil, err
		}
		root.redis = client
		root.carts = redis.NewCartStore(client, config.CartTTL)
		root.profiles = redis.NewProfileCache(client, config.ProfileCacheTTL)
	} else {
		logger.Warn("Redis disabled, carts and profiles are kept in memory")
		root.carts = memory.NewCartStore()
		root.profiles = memory.NewProfileCache(config.ProfileCacheTTL)
	}

	return root, nil
}

// Hub is the order event hub; the caller runs it.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

// Close releases the Redis client and the database pool.
func (c *CompositionRoot) Close() error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() *commands.AddToCartCommandHandler {
	h := commands.NewAddToCartCommandHandler(c.productUoWFactory(), c.carts)
	return &h
}

func (c *CompositionRoot) CreateSetCartQuantityCommandHandler() *commands.SetCartQuantityCommandHandler {
	h := commands.NewSetCartQuantityCommandHandler(c.carts)
	return &h
}

func (c *CompositionRoot) CreateClearCartCommandHandler() *commands.ClearCartCommandHandler {
	h := commands.NewClearCartCommandHandler(c.carts)
	return &h
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() *commands.SubmitOrderCommandHandler {
	var f commands.SubmissionUoWFactory = FuncSubmissionUoWFactory(func() commands.SubmissionUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewSubmitOrderCommandHandler(f, c.carts, c.hub, c.logger)
	return &h
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() *commands.ApproveOrderCommandHandler {
	h := commands.NewApproveOrderCommandHandler(c.orderUoWFactory(), c.hub)
	return &h
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() *commands.RejectOrderCommandHandler {
	h := commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.hub)
	return &h
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() *commands.CompleteOrderCommandHandler {
	h := commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.hub)
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.hub)
	return &h
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() *commands.CreateClientCommandHandler {
	h := commands.NewCreateClientCommandHandler(c.clientUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() *commands.UpdateClientCommandHandler {
	h := commands.NewUpdateClientCommandHandler(c.clientUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() *commands.DeleteClientCommandHandler {
	h := commands.NewDeleteClientCommandHandler(c.clientUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() *commands.CreateProductCommandHandler {
	h := commands.NewCreateProductCommandHandler(c.productUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() *commands.UpdateProductCommandHandler {
	h := commands.NewUpdateProductCommandHandler(c.productUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() *commands.DeleteProductCommandHandler {
	h := commands.NewDeleteProductCommandHandler(c.productUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeUserRoleCommandHandler() *commands.ChangeUserRoleCommandHandler {
	h := commands.NewChangeUserRoleCommandHandler(c.userUoWFactory(), c.profiles, c.logger)
	return &h
}

func (c *CompositionRoot) CreateResolveProfileCommandHandler() *commands.ResolveProfileCommandHandler {
	h := commands.NewResolveProfileCommandHandler(c.userUoWFactory(), c.profiles, c.logger)
	return &h
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts)
}

func (c *CompositionRoot) CreateListCatalogQueryHandler() queries.ListCatalogQueryHandler {
	return queries.NewListCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListClientsQueryHandler() queries.ListClientsQueryHandler {
	return queries.NewListClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrderQueryHandler() queries.ExportOrderQueryHandler {
	return queries.NewExportOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStaleOrdersQueryHandler() queries.ListStaleOrdersQueryHandler {
	return queries.NewListStaleOrdersQueryHandler(c.gormDB)
}

// CreateHTTPHandlers collects the use cases served by the HTTP adapter.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	listClients := c.CreateListClientsQueryHandler()

	return httpadapter.Handlers{
		AddToCart:       c.CreateAddToCartCommandHandler(),
		SetCartQuantity: c.CreateSetCartQuantityCommandHandler(),
		ClearCart:       c.CreateClearCartCommandHandler(),
		SubmitOrder:     c.CreateSubmitOrderCommandHandler(),
		ApproveOrder:    c.CreateApproveOrderCommandHandler(),
		RejectOrder:     c.CreateRejectOrderCommandHandler(),
		CompleteOrder:   c.CreateCompleteOrderCommandHandler(),
		DeleteOrder:     c.CreateDeleteOrderCommandHandler(),
		CreateClient:    c.CreateCreateClientCommandHandler(),
		UpdateClient:    c.CreateUpdateClientCommandHandler(),
		DeleteClient:    c.CreateDeleteClientCommandHandler(),
		CreateProduct:   c.CreateCreateProductCommandHandler(),
		UpdateProduct:   c.CreateUpdateProductCommandHandler(),
		DeleteProduct:   c.CreateDeleteProductCommandHandler(),
		ChangeUserRole:  c.CreateChangeUserRoleCommandHandler(),

		GetCart:     c.CreateGetCartQueryHandler(),
		ListCatalog: c.CreateListCatalogQueryHandler(),
		ListClients: listClients,
		ListAvailableClients: httpadapter.HandlerFunc[queries.ListAvailableClientsQuery, []queries.ClientResponse](
			listClients.HandleAvailable,
		),
		ListOrders:  c.CreateListOrdersQueryHandler(),
		GetOrder:    c.CreateGetOrderQueryHandler(),
		ExportOrder: c.CreateExportOrderQueryHandler(),
		ListUsers:   c.CreateListUsersQueryHandler(),
		GetStats:    c.CreateGetStatsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateAuthenticator() *httpadapter.Authenticator {
	return httpadapter.NewAuthenticator(c.config.JWTSecret, c.CreateResolveProfileCommandHandler())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListStaleOrdersQueryHandler(), jobs.Settings{
		StaleOrderAfter:    c.config.StaleOrderAfter,
		StaleOrderSchedule: c.config.StaleOrderSchedule,
	}, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSubmissionUoWFactory func() commands.SubmissionUoW

func (f FuncSubmissionUoWFactory) Create() commands.SubmissionUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
