package main

import (
	"fmt"
	"net/http"
	"time"

	"slack-delay-sender/src/infrastructure/di"
	logger "slack-delay-sender/src/infrastructure/logger"
	"slack-delay-sender/src/infrastructure/rest/middlewares"
	"slack-delay-sender/src/infrastructure/rest/routes"
	"slack-delay-sender/src/infrastructure/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// defaultPort matches the relay URL the client uses out of the box.
const defaultPort = "5000"

func main() {
	env := utils.GetEnv("GO_ENV", "development")
	var loggerInstance *logger.Logger
	var err error

	if env == "development" {
		loggerInstance, err = logger.NewDevelopmentLogger()
	} else {
		loggerInstance, err = logger.NewLogger()
	}

	if err != nil {
		panic(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() {
		if err := loggerInstance.Log.Sync(); err != nil {
			loggerInstance.Log.Error("Failed to sync logger", zap.Error(err))
		}
	}()

	loggerInstance.Info("Starting slack-delay-sender relay")

	appContext, err := di.SetupDependencies(loggerInstance)
	if err != nil {
		loggerInstance.Panic("Error initializing application context", zap.Error(err))
	}

	router := setupRouter(appContext, loggerInstance, env)
	port := utils.GetEnv("SERVER_PORT", defaultPort)
	server := setupServer(router, port)

	loggerInstance.Info("Server starting", zap.String("url", "http://localhost:"+port))
	if err := server.ListenAndServe(); err != nil {
		loggerInstance.Panic("Server failed to start", zap.Error(err))
	}
}

func setupRouter(appContext *di.ApplicationContext, logger *logger.Logger, env string) *gin.Engine {
	if env == "development" {
		logger.SetupGinWithZapLoggerInDevelopment()
	} else {
		logger.SetupGinWithZapLogger()
	}

	router := gin.New()

	router.Use(gin.Recovery())
	// Browser UIs on other origins call the relay directly.
	router.Use(cors.Default())

	router.Use(middlewares.ErrorHandler(logger))
	router.Use(middlewares.GinBodyLogMiddleware(logger))
	router.Use(middlewares.CommonHeaders)

	router.Use(logger.GinZapLogger())

	routes.ApplicationRouter(router, appContext)
	return router
}

func setupServer(router *gin.Engine, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
