package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"servicearea/cmd"
	httpadapter "servicearea/internal/adapters/in/http"
	"servicearea/internal/adapters/out/postgres/assignmentrepo"
	"servicearea/internal/adapters/out/postgres/auditrepo"
	"servicearea/internal/adapters/out/postgres/splitrepo"
	"servicearea/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		CoverageCacheTTL:      goDotEnvVariable("COVERAGE_CACHE_TTL"),
		CoverageAuditSchedule: goDotEnvVariable("COVERAGE_AUDIT_SCHEDULE"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// The warehouses table is owned by the admin service and migrated there.
	err = gormDB.AutoMigrate(
		&assignmentrepo.ProvinceAssignmentDTO{},
		&assignmentrepo.CityAssignmentDTO{},
		&splitrepo.CitySplitProvinceDTO{},
		&auditrepo.AssignmentAuditDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	schedule := configs.CoverageAuditSchedule
	if schedule == "" {
		schedule = "0 */5 * * * *"
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetCoverageAdvisoryQueryHandler(), schedule, logger)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	validator, err := httpadapter.NewOpenAPIValidator()
	if err != nil {
		log.Fatalf("Failed to build OpenAPI validator: %v", err)
	}
	e.Use(validator)

	server := httpadapter.NewServer(
		app.CreateReplaceServiceProvincesCommandHandler(),
		app.CreateReplaceServiceCitiesCommandHandler(),
		app.CreateReplaceCitySplitCommandHandler(),
		app.CreateAddCitySplitCommandHandler(),
		app.CreateRemoveCitySplitCommandHandler(),
		app.CreateGetWarehouseProvincesQueryHandler(),
		app.CreateGetWarehouseCitiesQueryHandler(),
		app.CreateGetProvinceOccupancyQueryHandler(),
		app.CreateGetCityOccupancyQueryHandler(),
		app.CreateGetCitySplitProvincesQueryHandler(),
		app.CreateGetFulfillmentCoverageQueryHandler(),
		app.CreateGetCoverageAdvisoryQueryHandler(),
		app.CreateResolveServiceWarehouseQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
