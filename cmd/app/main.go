package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shipsync/cmd"
	"shipsync/internal/adapters/out/postgres/archiverepo"
	"shipsync/internal/adapters/out/postgres/orderrepo"
	"shipsync/internal/adapters/out/postgres/productrepo"
	"shipsync/internal/adapters/out/postgres/tagrepo"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting scheduled jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort: envOr("HTTP_PORT", "3001"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		ShipStationV1BaseURL: os.Getenv("SHIPSTATION_V1_BASE_URL"),
		ShipStationV2BaseURL: os.Getenv("SHIPSTATION_V2_BASE_URL"),
		ShipStationAPIKey:    os.Getenv("SHIPSTATION_API_KEY"),
		ShipStationAPISecret: os.Getenv("SHIPSTATION_API_SECRET"),
		ShipStationV2APIKey:  os.Getenv("SHIPSTATION_V2_API_KEY"),

		DefaultServiceCode:       os.Getenv("SHIPSTATION_DEFAULT_SERVICE_CODE"),
		DefaultInsuranceProvider: envOr("SHIPSTATION_DEFAULT_INSURANCE_PROVIDER", "carrier"),

		ShipFromName:        os.Getenv("SHIPSTATION_SHIP_FROM_NAME"),
		ShipFromCompany:     os.Getenv("SHIPSTATION_SHIP_FROM_COMPANY"),
		ShipFromPhone:       os.Getenv("SHIPSTATION_SHIP_FROM_PHONE"),
		ShipFromAddress1:    os.Getenv("SHIPSTATION_SHIP_FROM_ADDRESS1"),
		ShipFromAddress2:    os.Getenv("SHIPSTATION_SHIP_FROM_ADDRESS2"),
		ShipFromCity:        os.Getenv("SHIPSTATION_SHIP_FROM_CITY"),
		ShipFromState:       os.Getenv("SHIPSTATION_SHIP_FROM_STATE"),
		ShipFromPostalCode:  os.Getenv("SHIPSTATION_SHIP_FROM_POSTAL_CODE"),
		ShipFromCountryCode: envOr("SHIPSTATION_SHIP_FROM_COUNTRY_CODE", "US"),
		ShipFromResidential: envOr("SHIPSTATION_SHIP_FROM_RESIDENTIAL", "no"),

		DefaultPackageWeightValue:   envFloatOr("SHIPSTATION_DEFAULT_PACKAGE_WEIGHT_VALUE", 16),
		DefaultPackageWeightUnit:    envOr("SHIPSTATION_DEFAULT_PACKAGE_WEIGHT_UNIT", "ounce"),
		DefaultPackageLength:        envFloatOr("SHIPSTATION_DEFAULT_PACKAGE_LENGTH", 10),
		DefaultPackageWidth:         envFloatOr("SHIPSTATION_DEFAULT_PACKAGE_WIDTH", 10),
		DefaultPackageHeight:        envFloatOr("SHIPSTATION_DEFAULT_PACKAGE_HEIGHT", 10),
		DefaultPackageDimensionUnit: envOr("SHIPSTATION_DEFAULT_PACKAGE_DIMENSION_UNIT", "inch"),

		ERPMode: envOr("ERP_MODE", "simulated"),

		D365URL:          os.Getenv("D365_URL"),
		D365TenantID:     os.Getenv("D365_TENANT_ID"),
		D365ClientID:     os.Getenv("D365_CLIENT_ID"),
		D365ClientSecret: os.Getenv("D365_CLIENT_SECRET"),

		AutoProcessingDefault: envBoolOr("AUTO_PROCESSING_ENABLED", true),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	parsed, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBoolOr(key string, fallback bool) bool {
	parsed, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

func mustOpenDatabase(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&archiverepo.ArchivedOrderDTO{},
		&tagrepo.TagDTO{},
		&productrepo.ProductDTO{},
		&productrepo.ProductAliasDTO{},
		&productrepo.UOMLookupDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
