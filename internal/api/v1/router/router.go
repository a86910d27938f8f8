package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/api/v1/handler"
	"app/internal/config"
	"app/internal/identity"
	"app/internal/middleware"
	"app/internal/payout"
	"app/internal/pgmq"
	"app/internal/repository"
	"app/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsmiddleware "github.com/aws/smithy-go/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New wires the full API: database pool, object storage, payout gateway,
// identity client, repositories, services, handlers and middleware. The pool
// is returned so the caller can close it on shutdown.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (http.Handler, *pgxpool.Pool, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initializing")

	// 1. Open DB connection pool
	pool, err := newPool(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open DB connection pool")
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to ping DB")
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	// 2. Initialize S3 client for course content
	s3Config, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
	)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load S3 config")
		return nil, nil, err
	}
	s3Client := s3.NewFromConfig(s3Config, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3URL)
		o.UsePathStyle = true
	})
	presignClient := s3.NewPresignClient(s3Client)

	// 3. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 4. Initialize external clients: identity resolver and payout gateway
	identityClient := identity.NewClient(cfg.IdentityServiceBaseURL, time.Duration(cfg.IdentityTimeoutSec)*time.Second)

	secrets, err := service.NewSecretManagerService(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create Secret Manager service")
		return nil, nil, err
	}
	stripeKey, err := secrets.GetStripeAPIKey(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load Stripe API key")
		return nil, nil, err
	}
	gateway := payout.NewStripeGateway(stripeKey, cfg.PayoutCurrency, logger)

	// 5. Initialize repositories & services & handlers
	courseRepo := repository.NewCourseRepo(pool, cfg.EventsQueueName)
	receiptRepo := repository.NewReceiptRepo(pool)
	feeRepo := repository.NewFeeRepo(pool, cfg.EventsQueueName)
	purchaseRepo := repository.NewPurchaseRepo(pool, cfg.EventsQueueName)
	dlqRepo := repository.NewDLQRepository(pool)

	courseSvc := service.NewCourseService(courseRepo, identityClient, logger)
	receiptSvc := service.NewReceiptService(receiptRepo, logger)
	feeSvc := service.NewFeeService(feeRepo, cfg.OperatorAddress, logger)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, courseRepo, identityClient, gateway, cfg.TreasuryAccount, logger)
	contentSvc := service.NewContentService(courseRepo, receiptRepo, presignClient, cfg.S3Bucket, time.Duration(cfg.ContentURLTTLMin)*time.Minute, logger)
	dlqSvc := service.NewDLQService(dlqRepo, pgmq.New(pool), cfg.EventsQueueName)

	courseHandler := handler.NewCourseHandler(courseSvc, contentSvc, validate, logger)
	purchaseHandler := handler.NewPurchaseHandler(purchaseSvc, validate, logger)
	receiptHandler := handler.NewReceiptHandler(receiptSvc, validate, logger)
	feeHandler := handler.NewFeeHandler(feeSvc, validate, logger)
	dlqHandler := handler.NewDLQHandler(dlqSvc, logger)

	// 6. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret, logger)
	isLocalDev := cfg.PubSubEmulatorHost != ""
	pubsubAuthMiddleware := middleware.PubSubAuthMiddleware(isLocalDev, cfg.DLQEndpointURL, cfg.PubSubPushServiceAccountEmail, logger)

	// 7. Create ServeMux router
	mux := http.NewServeMux()

	apiV1Mux := http.NewServeMux()
	courseHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	purchaseHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	receiptHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	feeHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	dlqHandler.RegisterRoutes(apiV1Mux, pubsubAuthMiddleware, authMiddleware)

	// Mount the API v1 routes under /v1
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))

	// Liveness endpoint for the deployment platform
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	// Swagger documentation
	mux.HandleFunc("/swagger/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger/swagger.json")
	})
	mux.Handle("/swagger/", http.StripPrefix("/swagger/", http.FileServer(http.Dir("./docs/swagger/swagger-ui"))))

	// 8. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	})

	return middleware.LoggerMiddleware(logger, c.Handler(mux)), pool, nil
}

// newPool opens a pgx pool, normalizing the DSN for the environment.
func newPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := cfg.DBConnectionString
	// Local databases usually run without TLS; production connection strings
	// are expected to carry their own SSL settings.
	if cfg.Environment == "development" && !strings.Contains(dsn, "sslmode") {
		dsn += dsnSeparator(dsn) + "sslmode=disable"
	}
	// Transaction poolers like pgbouncer break server-side prepared
	// statements, so force the simple protocol outside development.
	if cfg.Environment != "development" && !strings.Contains(dsn, "default_query_exec_mode") {
		dsn += dsnSeparator(dsn) + "default_query_exec_mode=simple_protocol"
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConns = 25
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	return pgxpool.NewWithConfig(ctx, poolCfg)
}

func dsnSeparator(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		if strings.Contains(dsn, "?") {
			return "&"
		}
		return "?"
	}
	return " "
}

// removeDisableGzip is a workaround for S3 signature errors with some
// S3-compatible services. See: https://github.com/supabase/storage/issues/577
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}
