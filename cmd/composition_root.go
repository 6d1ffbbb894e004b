package cmd

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"servicearea/internal/adapters/out/postgres"
	"servicearea/internal/core/application/usecases/commands"
	"servicearea/internal/core/application/usecases/queries"
	"servicearea/internal/core/domain/model/kernel"
	"servicearea/internal/core/domain/services"
)

const defaultCoverageCacheTTL = 5 * time.Minute

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	gate          *commands.ReplaceGate
	coverageCache *gocache.Cache
	classifier    services.CoverageClassifier
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	ttl := defaultCoverageCacheTTL
	if parsed, err := time.ParseDuration(configs.CoverageCacheTTL); err == nil && parsed > 0 {
		ttl = parsed
	}

	classifier, err := services.NewCoverageClassifier(kernel.DefaultUniverse())
	if err != nil {
		panic(err)
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		gate:          commands.NewReplaceGate(),
		coverageCache: gocache.New(ttl, 2*ttl),
		classifier:    classifier,
	}
}

func (c *CompositionRoot) CreateReplaceServiceProvincesCommandHandler() commands.ReplaceServiceProvincesCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceServiceProvincesCommandHandler(f, c.gate, c.coverageCache)
}

func (c *CompositionRoot) CreateReplaceServiceCitiesCommandHandler() commands.ReplaceServiceCitiesCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceServiceCitiesCommandHandler(f, c.gate, c.coverageCache)
}

func (c *CompositionRoot) CreateReplaceCitySplitCommandHandler() commands.ReplaceCitySplitCommandHandler {
	var f commands.SplitUoWFactory = FuncSplitUoWFactory(func() commands.SplitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceCitySplitCommandHandler(f, c.gate, c.coverageCache)
}

func (c *CompositionRoot) CreateAddCitySplitCommandHandler() commands.AddCitySplitCommandHandler {
	var f commands.SplitUoWFactory = FuncSplitUoWFactory(func() commands.SplitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCitySplitCommandHandler(f, c.gate, c.coverageCache)
}

func (c *CompositionRoot) CreateRemoveCitySplitCommandHandler() commands.RemoveCitySplitCommandHandler {
	var f commands.SplitUoWFactory = FuncSplitUoWFactory(func() commands.SplitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCitySplitCommandHandler(f, c.gate, c.coverageCache)
}

func (c *CompositionRoot) CreateGetWarehouseProvincesQueryHandler() queries.GetWarehouseProvincesQueryHandler {
	return queries.NewGetWarehouseProvincesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWarehouseCitiesQueryHandler() queries.GetWarehouseCitiesQueryHandler {
	return queries.NewGetWarehouseCitiesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProvinceOccupancyQueryHandler() queries.GetProvinceOccupancyQueryHandler {
	return queries.NewGetProvinceOccupancyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCityOccupancyQueryHandler() queries.GetCityOccupancyQueryHandler {
	return queries.NewGetCityOccupancyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCitySplitProvincesQueryHandler() queries.GetCitySplitProvincesQueryHandler {
	return queries.NewGetCitySplitProvincesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFulfillmentCoverageQueryHandler() queries.GetFulfillmentCoverageQueryHandler {
	return queries.NewGetFulfillmentCoverageQueryHandler(c.gormDB, c.classifier, c.coverageCache)
}

func (c *CompositionRoot) CreateGetCoverageAdvisoryQueryHandler() queries.GetCoverageAdvisoryQueryHandler {
	return queries.NewGetCoverageAdvisoryQueryHandler(c.gormDB, c.classifier, c.coverageCache)
}

func (c *CompositionRoot) CreateResolveServiceWarehouseQueryHandler() queries.ResolveServiceWarehouseQueryHandler {
	return queries.NewResolveServiceWarehouseQueryHandler(c.gormDB, services.NewRegionResolver())
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncSplitUoWFactory func() commands.SplitUoW

func (f FuncSplitUoWFactory) Create() commands.SplitUoW {
	return f()
}
