package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tractus/internal/adapter/http/handlers"
	"tractus/internal/adapter/http/middleware"
	"tractus/internal/adapter/persistence/repository"
	"tractus/internal/infrastructure/ai"
	"tractus/internal/infrastructure/auth"
	"tractus/internal/infrastructure/config"
	"tractus/internal/infrastructure/database"
	"tractus/internal/infrastructure/metrics"
	"tractus/internal/infrastructure/payments"
	"tractus/internal/usecase"
	"tractus/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Ping         *handlers.PingHandler
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Vendedor     *handlers.VendedorHandler
	Cliente      *handlers.ClienteHandler
	Proposta     *handlers.PropostaHandler
	OrdemServico *handlers.OrdemServicoHandler
	Venda        *handlers.VendaHandler
	Visita       *handlers.VisitaTecnicaHandler
	Laudo        *handlers.LaudoHandler
	Despesa      *handlers.DespesaVeiculoHandler
	Manutencao   *handlers.ManutencaoHandler
	Dashboard    *handlers.DashboardHandler
}

type Options struct {
	Tokens         middleware.TokenParser
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
	AllowedOrigins []string
	AILimiter      *middleware.RateLimiter
}

// Run wires the application against cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	if err := Bootstrap(ctx, cfg, db); err != nil {
		return err
	}

	m := metrics.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	h, err := buildHandlers(ctx, cfg, db, m, tokens)
	if err != nil {
		return err
	}
	router := NewRouter(h, Options{
		Tokens:         tokens,
		Metrics:        m,
		Logger:         zap.L(),
		AllowedOrigins: cfg.AllowedOrigins(),
		AILimiter:      middleware.NewRateLimiter(cfg.AIRateLimitRPS, cfg.AIRateLimitBurst),
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info("http server listening", zap.String("scope", "http"), zap.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down", zap.String("scope", "http"))
	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(stopCtx)
}

// NewRouter mounts the public and authenticated routes on a fresh engine.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	// Rotas publicas
	v1 := router.Group("/v1")
	v1.GET("/ping", h.Ping.Ping)
	v1.POST("/auth/login", h.Auth.Login)

	private := v1.Group("", middleware.Auth(opts.Tokens))
	aiLimit := opts.AILimiter.Handler()
	addAdminRoutes(private, h)
	addComercialRoutes(private, h, aiLimit)
	addCampoRoutes(private, h, aiLimit)
	addFrotaRoutes(private, h)

	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.L().Error("recovered from panic", zap.String("scope", "http"), zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(middleware.Metrics(opts.Metrics))
}

func buildHandlers(ctx context.Context, cfg config.Config, db *gorm.DB, m *metrics.Metrics, tokens *auth.TokenManager) (Handlers, error) {
	userRepo := repository.NewUserGormRepository(db)
	vendedorRepo := repository.NewVendedorGormRepository(db)
	clienteRepo := repository.NewClienteGormRepository(db)
	propostaRepo := repository.NewPropostaGormRepository(db)
	ordemRepo := repository.NewOrdemServicoGormRepository(db)
	vendaRepo := repository.NewVendaGormRepository(db)
	visitaRepo := repository.NewVisitaTecnicaGormRepository(db)
	laudoRepo := repository.NewLaudoGormRepository(db)
	despesaRepo := repository.NewDespesaVeiculoGormRepository(db)
	configRepo := repository.NewConfiguracaoManutencaoGormRepository(db)
	dashboardRepo := repository.NewDashboardGormRepository(db)

	anotacaoRepo, err := notesRepository(ctx, cfg, db)
	if err != nil {
		return Handlers{}, err
	}

	var assistant interfaces.ITextAssistant
	if gemini, err := ai.NewGeminiAssistant(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, m); err != nil {
		zap.L().Warn("text assistant disabled; AI endpoints return the original text", zap.String("scope", "ai"), zap.Error(err))
	} else {
		assistant = gemini
	}

	var gateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock); err != nil {
		zap.L().Warn("mercado pago gateway not configured", zap.String("scope", "payment_gateway"), zap.Error(err))
	} else {
		gateway = mp
	}

	texto := usecase.NewTextoUseCase(assistant)

	return Handlers{
		Ping: handlers.NewPingHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}),
		Auth:         handlers.NewAuthHandler(usecase.NewAuthUseCase(userRepo, tokens)),
		User:         handlers.NewUserHandler(usecase.NewUserUseCase(userRepo, vendedorRepo)),
		Vendedor:     handlers.NewVendedorHandler(usecase.NewVendedorUseCase(vendedorRepo)),
		Cliente:      handlers.NewClienteHandler(usecase.NewClienteUseCase(clienteRepo, vendedorRepo, anotacaoRepo), usecase.NewClienteAnotacaoUseCase(anotacaoRepo, clienteRepo, assistant), texto),
		Proposta:     handlers.NewPropostaHandler(usecase.NewPropostaUseCase(propostaRepo, clienteRepo)),
		OrdemServico: handlers.NewOrdemServicoHandler(usecase.NewOrdemServicoUseCase(ordemRepo, propostaRepo)),
		Venda:        handlers.NewVendaHandler(usecase.NewVendaUseCase(vendaRepo, gateway), cfg.PaymentGatewayMock),
		Visita:       handlers.NewVisitaTecnicaHandler(usecase.NewVisitaTecnicaUseCase(visitaRepo, clienteRepo, laudoRepo)),
		Laudo:        handlers.NewLaudoHandler(usecase.NewLaudoUseCase(laudoRepo, visitaRepo), texto),
		Despesa:      handlers.NewDespesaVeiculoHandler(usecase.NewDespesaVeiculoUseCase(despesaRepo, vendedorRepo)),
		Manutencao:   handlers.NewManutencaoHandler(usecase.NewManutencaoUseCase(configRepo, despesaRepo, vendedorRepo)),
		Dashboard:    handlers.NewDashboardHandler(usecase.NewDashboardUseCase(dashboardRepo)),
	}, nil
}

func notesRepository(ctx context.Context, cfg config.Config, db *gorm.DB) (interfaces.IClienteAnotacaoRepository, error) {
	if cfg.NotesBackend != config.NotesBackendDynamo {
		return repository.NewClienteAnotacaoGormRepository(db), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	zap.L().Info("client notes stored in dynamodb", zap.String("scope", "notes"), zap.String("table", cfg.NotesTable))
	return repository.NewClienteAnotacaoDynamoRepository(ddb, cfg.NotesTable), nil
}
