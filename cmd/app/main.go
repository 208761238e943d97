package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"parcelflow/cmd"
	httpadapter "parcelflow/internal/adapters/in/http"
	"parcelflow/internal/adapters/out/postgres/carrierrepo"
	"parcelflow/internal/adapters/out/postgres/requestrepo"
	"parcelflow/internal/adapters/out/postgres/taskrepo"
	"parcelflow/internal/adapters/out/postgres/warehouserepo"
	"parcelflow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateListClaimableTasksQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustConnectDB opens the database connection and migrates the schema.
// TranslateError is required: the claim race resolution depends on
// duplicate-key violations surfacing as gorm.ErrDuplicatedKey.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&requestrepo.RequestDTO{},
		&taskrepo.TaskDTO{},
		&warehouserepo.WarehouseDTO{},
		&carrierrepo.CarrierDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateRequestCommandHandler(),
		app.CreateClaimCompleteCommandHandler(),
		app.CreateClaimSegmentCommandHandler(),
		app.CreateStartTaskCommandHandler(),
		app.CreateCompleteTaskCommandHandler(),
		app.CreateCancelTaskCommandHandler(),
		app.CreateCancelRequestCommandHandler(),
		app.CreateListClaimableTasksQueryHandler(),
		app.CreateGetSegmentsInfoQueryHandler(),
		app.CreateGetCarrierTasksQueryHandler(),
		app.CreateGetStoredInWarehouseQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
