package cmd

import (
	"log/slog"
	"strings"

	"gorm.io/gorm"

	httpadapter "shipsync/internal/adapters/in/http"
	"shipsync/internal/adapters/out/dynamics"
	"shipsync/internal/adapters/out/postgres"
	"shipsync/internal/adapters/out/shipstation"
	"shipsync/internal/core/application/settings"
	"shipsync/internal/core/application/usecases/commands"
	"shipsync/internal/core/application/usecases/queries"
	"shipsync/internal/core/domain/model/measure"
	"shipsync/internal/core/domain/model/shipment"
	"shipsync/internal/core/domain/services"
	"shipsync/internal/core/ports"
	"shipsync/internal/jobs"
)

// CompositionRoot wires adapters, domain services and use case handlers
// from a Config and an open database handle.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	platformClient ports.PlatformClient
	submitter      ports.SalesOrderSubmitter
	builder        services.ShipmentBuilder
	classifier     services.TagClassifier
	settings       *settings.Settings
	logger         *slog.Logger
}

// NewCompositionRoot builds the object graph.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB, logger)

	platformClient := shipstation.NewClient(shipstation.Config{
		V1BaseURL: config.ShipStationV1BaseURL,
		V2BaseURL: config.ShipStationV2BaseURL,
		APIKey:    config.ShipStationAPIKey,
		APISecret: config.ShipStationAPISecret,
		V2APIKey:  config.ShipStationV2APIKey,
	}, logger)

	root := CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *uowFactory,
		platformClient: platformClient,
		builder:        services.NewShipmentBuilder(buildShipmentDefaults(config)),
		classifier:     services.NewTagClassifier(),
		settings:       settings.New(config.AutoProcessingDefault),
		logger:         logger,
	}
	root.submitter = root.buildSubmitter(config)
	return root
}

// Settings exposes the process-wide auto-processing toggle.
func (c *CompositionRoot) Settings() *settings.Settings {
	return c.settings
}

// buildSubmitter selects the ERP strategy: the real Dynamics 365 client
// when ERP_MODE says so, the simulated submitter otherwise.
func (c *CompositionRoot) buildSubmitter(config Config) ports.SalesOrderSubmitter {
	if strings.EqualFold(config.ERPMode, "dynamics") {
		// The UOM lookup runs outside the processing transaction; it is
		// read-only reference data.
		uomResolver := c.uowFactory.Create().ProductRepository()
		return dynamics.NewClient(dynamics.Config{
			ResourceURL:  config.D365URL,
			TenantID:     config.D365TenantID,
			ClientID:     config.D365ClientID,
			ClientSecret: config.D365ClientSecret,
		}, uomResolver, c.logger)
	}
	return dynamics.NewSimulatedSubmitter(c.logger)
}

func buildShipmentDefaults(config Config) services.ShipmentDefaults {
	defaults := services.ShipmentDefaults{
		ServiceCode:       config.DefaultServiceCode,
		InsuranceProvider: config.DefaultInsuranceProvider,
		ShipFrom: shipment.Address{
			Name:                 config.ShipFromName,
			CompanyName:          config.ShipFromCompany,
			Phone:                config.ShipFromPhone,
			AddressLine1:         config.ShipFromAddress1,
			AddressLine2:         config.ShipFromAddress2,
			CityLocality:         config.ShipFromCity,
			StateProvince:        config.ShipFromState,
			PostalCode:           config.ShipFromPostalCode,
			CountryCode:          config.ShipFromCountryCode,
			ResidentialIndicator: shipment.NormalizeYesNo(config.ShipFromResidential),
		},
	}

	if weight, ok := measure.NewWeight(config.DefaultPackageWeightValue, config.DefaultPackageWeightUnit); ok {
		defaults.PackageWeight = weight
	}
	if dims, ok := measure.NewDimensions(
		config.DefaultPackageLength, config.DefaultPackageWidth, config.DefaultPackageHeight,
		config.DefaultPackageDimensionUnit,
	); ok {
		defaults.PackageDimensions = &dims
	}
	return defaults
}

func (c *CompositionRoot) CreateIngestOrdersCommandHandler() commands.IngestOrdersCommandHandler {
	var f commands.IngestUoWFactory = FuncIngestUoWFactory(func() commands.IngestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIngestOrdersCommandHandler(f, c.platformClient, c.classifier, c.logger)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	var f commands.ProcessUoWFactory = FuncProcessUoWFactory(func() commands.ProcessUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrderCommandHandler(f, c.platformClient, c.builder, c.submitter, c.logger)
}

func (c *CompositionRoot) CreateProcessReadyOrdersCommandHandler() commands.ProcessReadyOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessReadyOrdersCommandHandler(
		f, c.CreateProcessOrderCommandHandler(), c.settings, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRefreshTagsCommandHandler() commands.RefreshTagsCommandHandler {
	var f commands.TagUoWFactory = FuncTagUoWFactory(func() commands.TagUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshTagsCommandHandler(f, c.platformClient, c.logger)
}

func (c *CompositionRoot) CreateRefreshProductsCommandHandler() commands.RefreshProductsCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshProductsCommandHandler(f, c.platformClient, c.logger)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateGetPendingApprovalsQueryHandler() queries.GetPendingApprovalsQueryHandler {
	return queries.NewGetPendingApprovalsQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateGetArchivedOrdersQueryHandler() queries.GetArchivedOrdersQueryHandler {
	return queries.NewGetArchivedOrdersQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateGetAllTagsQueryHandler() queries.GetAllTagsQueryHandler {
	return queries.NewGetAllTagsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the route layer.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateIngestOrdersCommandHandler(),
		c.CreateApproveOrderCommandHandler(),
		c.CreateProcessOrderCommandHandler(),
		c.CreateProcessReadyOrdersCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateRefreshTagsCommandHandler(),
		c.CreateRefreshProductsCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetPendingApprovalsQueryHandler(),
		c.CreateGetArchivedOrdersQueryHandler(),
		c.CreateGetAllTagsQueryHandler(),
		c.settings,
		c.logger,
	)
}

// CreateJobManager assembles the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateIngestOrdersCommandHandler(),
		c.CreateProcessReadyOrdersCommandHandler(),
		c.CreateRefreshTagsCommandHandler(),
		c.CreateRefreshProductsCommandHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncIngestUoWFactory func() commands.IngestUoW

func (f FuncIngestUoWFactory) Create() commands.IngestUoW {
	return f()
}

type FuncProcessUoWFactory func() commands.ProcessUoW

func (f FuncProcessUoWFactory) Create() commands.ProcessUoW {
	return f()
}

type FuncTagUoWFactory func() commands.TagUoW

func (f FuncTagUoWFactory) Create() commands.TagUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
