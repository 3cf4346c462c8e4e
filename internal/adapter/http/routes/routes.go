package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "palettepad/docs"
	"palettepad/internal/adapter/http/handlers"
	"palettepad/internal/adapter/persistence/localstore"
	"palettepad/internal/adapter/persistence/memory"
	"palettepad/internal/adapter/persistence/repository"
	"palettepad/internal/config"
	"palettepad/internal/domain/offerbuilder"
	"palettepad/internal/infrastructure/database"
	"palettepad/internal/infrastructure/export"
	"palettepad/internal/infrastructure/payments"
	"palettepad/internal/usecase"
	"palettepad/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Entries *handlers.EntryHandler
	Tracker *handlers.TrackerHandler
	Builder *handlers.OfferBuilderHandler
}

type repositories struct {
	entries  interfaces.IEntryRepository
	clients  interfaces.IClientRepository
	offers   interfaces.IOfferRepository
	payments interfaces.IPaymentRepository
}

// Run wires the application from cfg and starts the server.
func Run(cfg config.Config) error {
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	h, cleanup, err := Build(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	router := NewRouter(h)
	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	zap.S().Infof("[http][routes] listening port=%d backend=%s", cfg.Port, cfg.Backend)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter mounts the handlers on a fresh engine.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEntryRoutes(v1, h.Entries)
	addTrackerRoutes(v1, h.Tracker)
	addBuilderRoutes(v1, h.Builder)
	return router
}

// Build creates storage, gateways and usecases for cfg. The returned function
// releases whatever Build opened.
func Build(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return Handlers{}, nil, err
	}

	store, closeStore, err := newSavedOfferStore(cfg)
	if err != nil {
		return Handlers{}, nil, err
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		zap.S().Warnf("[http][routes] Mercado Pago gateway not configured err=%v", err)
	} else {
		paymentGateway = mpGateway
	}

	entryUseCase := usecase.NewEntryUseCase(repos.entries)
	clientUseCase := usecase.NewClientUseCase(repos.clients, repos.offers, repos.payments)
	offerUseCase := usecase.NewOfferUseCase(repos.offers, repos.payments)
	paymentUseCase := usecase.NewPaymentUseCase(repos.payments, paymentGateway, cfg.MercadoPagoTestPayerEmail)
	builderUseCase := usecase.NewOfferBuilderUseCase(offerbuilder.DefaultCatalog(), store, export.NewDocxExporter(), cfg.DefaultVATRate)

	h := Handlers{
		Entries: handlers.NewEntryHandler(entryUseCase),
		Tracker: handlers.NewTrackerHandler(clientUseCase, offerUseCase, paymentUseCase),
		Builder: handlers.NewOfferBuilderHandler(builderUseCase),
	}
	return h, closeStore, nil
}

func newRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	if cfg.Backend == config.BackendMemory {
		zap.S().Infof("[http][routes] using in-memory tracker storage")
		return repositories{
			entries:  memory.NewEntryRepository(),
			clients:  memory.NewClientRepository(),
			offers:   memory.NewOfferRepository(),
			payments: memory.NewPaymentRepository(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}
	return repositories{
		entries:  repository.NewEntryDynamoRepository(ddb, cfg.EntriesTable),
		clients:  repository.NewClientDynamoRepository(ddb, cfg.ClientsTable),
		offers:   repository.NewOfferDynamoRepository(ddb, cfg.OffersTable),
		payments: repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable),
	}, nil
}

func newSavedOfferStore(cfg config.Config) (interfaces.ISavedOfferStore, func(), error) {
	if cfg.LocalStorePath == "" {
		return localstore.NewMemoryStore(), func() {}, nil
	}
	store, err := localstore.NewSQLiteStore(cfg.LocalStorePath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {
		if err := store.Close(); err != nil {
			zap.S().Warnf("[http][routes] closing saved offers store err=%v", err)
		}
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.S().Errorf("[http][routes] recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
