package routes

import (
	"context"
	"os"
	"strconv"
	"time"

	_ "packtrack/docs" // This will be auto-generated
	"packtrack/internal/adapter/http/handlers"
	repository2 "packtrack/internal/adapter/persistence/repository"
	"packtrack/internal/infrastructure/database"
	"packtrack/internal/infrastructure/extraction"
	"packtrack/internal/infrastructure/gateway"
	"packtrack/internal/infrastructure/imaging"
	"packtrack/internal/infrastructure/storage"
	"packtrack/internal/logger"
	"packtrack/internal/usecase"
	"packtrack/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	logger.Setup()
	log := logger.WithComponent("routes")

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(log)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes(log zerolog.Logger) {
	ctx := context.Background()

	store := usecase.NewBillStore()
	remote := buildRemoteGateway(ctx, log)

	syncRuntime := usecase.NewSyncRuntime(store, remote, log)
	if err := syncRuntime.Start(ctx); err != nil {
		log.Warn().Err(err).Msg("remote subscription unavailable, continuing without live sync")
	}

	var extractor interfaces.IFieldExtractor
	openAIExtractor, err := extraction.NewOpenAIExtractor(os.Getenv("OPENAI_API_KEY"), log)
	if err != nil {
		log.Warn().Err(err).Msg("field extractor not configured")
	} else {
		extractor = openAIExtractor
	}

	billUseCase := usecase.NewBillUseCase(store, syncRuntime, extractor, imaging.NewJPEGCompressor(log), log)
	bulkUseCase := usecase.NewBulkUseCase(store, syncRuntime, log)

	billHandler := handlers.NewBillHandler(billUseCase)
	bulkHandler := handlers.NewBulkHandler(bulkUseCase)
	reportHandler := handlers.NewReportHandler(billUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillRoutes(v1, billHandler, bulkHandler, reportHandler)
}

// buildRemoteGateway wires DynamoDB and S3 behind the remote gateway.
// Any configuration failure degrades to offline mode (nil gateway):
// bills then live in the local store only, with placeholder image URLs.
func buildRemoteGateway(ctx context.Context, log zerolog.Logger) interfaces.IRemoteGateway {
	if offline, _ := strconv.ParseBool(os.Getenv("PACKTRACK_OFFLINE")); offline {
		log.Info().Msg("offline mode requested, remote gateway disabled")
		return nil
	}

	ddb, err := database.Connect(ctx, database.ConfigFromEnv())
	if err != nil {
		log.Warn().Err(err).Msg("remote gateway not configured")
		return nil
	}

	records := repository2.NewBillDynamoRepository(ddb)
	images, err := storage.NewS3ImageStore(ctx, storage.ConfigFromEnv())
	if err != nil {
		log.Warn().Err(err).Msg("remote gateway not configured")
		return nil
	}

	return gateway.NewRemoteGateway(records, images, pollIntervalFromEnv(), log)
}

func pollIntervalFromEnv() time.Duration {
	raw := os.Getenv("SYNC_POLL_INTERVAL")
	if raw == "" {
		return 0
	}
	interval, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return interval
}

func setMiddlewares(log zerolog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
