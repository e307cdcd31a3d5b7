package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sgdesh/bank-api/internal/command"
	"github.com/sgdesh/bank-api/internal/config"
	"github.com/sgdesh/bank-api/internal/events"
	"github.com/sgdesh/bank-api/internal/handler"
	"github.com/sgdesh/bank-api/internal/middleware"
	"github.com/sgdesh/bank-api/internal/models"
	"github.com/sgdesh/bank-api/internal/query"
	"github.com/sgdesh/bank-api/internal/redis"
	"github.com/sgdesh/bank-api/internal/repository"
)

// app holds the long-lived dependencies shared by the subcommands.
type app struct {
	cfg   *config.Config
	db    *gorm.DB
	store repository.Store
	redis *redis.Client
}

// newApp opens the configured store and, when enabled, Redis.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	switch cfg.Store {
	case config.StoreMemory:
		log.Println("Using in-memory store; data is lost on exit")
		a.store = repository.NewMemoryStore()
	default:
		db, err := repository.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.db = db
		a.store = repository.NewGormStore(db)
	}

	if cfg.RedisEnabled() {
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.redis = client
	} else {
		log.Println("REDIS_ADDR not set; view cache and event publishing disabled")
	}
	return a, nil
}

func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Printf("Failed to close Redis: %v", err)
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func (a *app) publisher() command.EventPublisher {
	if a.redis == nil {
		return events.Discard
	}
	return events.NewPublisher(a.redis.Client)
}

func viewCache[T any](a *app, prefix string) redis.Cache[T] {
	if a.redis == nil {
		return redis.NopCache[T]{}
	}
	return redis.NewViewCache[T](a.redis.Client, prefix, a.cfg.CacheTTL)
}

// router assembles the CQRS services and the gin engine on top of them.
func (a *app) router(approver command.Approver) *gin.Engine {
	publisher := a.publisher()

	customerRead := repository.NewCustomerReadRepository(a.store, viewCache[models.Customer](a, repository.CustomerViewKeyPrefix))
	accountRead := repository.NewAccountReadRepository(a.store)
	loanRead := repository.NewLoanReadRepository(a.store, viewCache[models.LoanAccount](a, repository.LoanAccountViewKeyPrefix))

	return handler.NewRouter(handler.Handlers{
		Customers: handler.NewCustomerHandler(
			command.NewCustomerCommandService(a.store, customerRead, publisher),
			query.NewCustomerQueryService(customerRead),
		),
		Accounts: handler.NewAccountHandler(
			command.NewAccountCommandService(a.store, publisher),
			query.NewAccountQueryService(accountRead),
		),
		Transactions: handler.NewTransactionHandler(
			command.NewTransactionCommandService(a.store, publisher),
			query.NewTransactionQueryService(accountRead),
		),
		Loans: handler.NewLoanHandler(
			command.NewLoanCommandService(a.store, loanRead, approver, publisher),
			query.NewLoanQueryService(loanRead),
		),
	},
		middleware.LoggingMiddleware(),
		middleware.CORS(a.cfg.CORSOrigins),
	)
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
