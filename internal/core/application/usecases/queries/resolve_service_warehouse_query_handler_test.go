package queries_test

import (
	"context"
	"testing"
	"time"

	"servicearea/internal/adapters/out/postgres/assignmentrepo"
	"servicearea/internal/adapters/out/postgres/splitrepo"
	"servicearea/internal/core/application/usecases/queries"
	"servicearea/internal/core/domain/services"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ResolveServiceWarehouseQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ResolveServiceWarehouseQueryHandler
}

func (suite *ResolveServiceWarehouseQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&assignmentrepo.ProvinceAssignmentDTO{},
		&assignmentrepo.CityAssignmentDTO{},
		&splitrepo.CitySplitProvinceDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewResolveServiceWarehouseQueryHandler(db, services.NewRegionResolver())
}

func (suite *ResolveServiceWarehouseQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ResolveServiceWarehouseQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE province_assignments, city_assignments, city_split_provinces").Error
	suite.Require().NoError(err)
}

func (suite *ResolveServiceWarehouseQueryHandlerTestSuite) resolve(province, city string) services.Resolution {
	query, err := queries.NewResolveServiceWarehouseQuery(province, city)
	suite.Require().NoError(err)

	resolution, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return resolution
}

func (suite *ResolveServiceWarehouseQueryHandlerTestSuite) TestHandle_ProvinceLevelResolution() {
	err := suite.db.Create(&assignmentrepo.ProvinceAssignmentDTO{Region: "浙江省", WarehouseID: 1}).Error
	suite.Require().NoError(err)

	resolution := suite.resolve("浙江省", "杭州市")

	suite.True(resolution.Found)
	suite.Equal(int64(1), resolution.Warehouse.Int64())
}

func (suite *ResolveServiceWarehouseQueryHandlerTestSuite) TestHandle_SplitProvinceUsesCityTable() {
	err := suite.db.Create(&splitrepo.CitySplitProvinceDTO{Province: "广东省"}).Error
	suite.Require().NoError(err)
	err = suite.db.Create(&assignmentrepo.ProvinceAssignmentDTO{Region: "广东省", WarehouseID: 1}).Error
	suite.Require().NoError(err)
	err = suite.db.Create(&assignmentrepo.CityAssignmentDTO{Region: "深圳市", WarehouseID: 2}).Error
	suite.Require().NoError(err)

	resolution := suite.resolve("广东省", "深圳市")

	suite.True(resolution.Found)
	suite.Equal(int64(2), resolution.Warehouse.Int64())
}

func (suite *ResolveServiceWarehouseQueryHandlerTestSuite) TestHandle_SplitProvinceWithoutCityRow_NoService() {
	err := suite.db.Create(&splitrepo.CitySplitProvinceDTO{Province: "广东省"}).Error
	suite.Require().NoError(err)
	err = suite.db.Create(&assignmentrepo.ProvinceAssignmentDTO{Region: "广东省", WarehouseID: 1}).Error
	suite.Require().NoError(err)

	resolution := suite.resolve("广东省", "汕头市")

	suite.False(resolution.Found)
}

func (suite *ResolveServiceWarehouseQueryHandlerTestSuite) TestHandle_UnownedProvince_NoService() {
	resolution := suite.resolve("浙江省", "")

	suite.False(resolution.Found)
}

func TestResolveServiceWarehouseQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResolveServiceWarehouseQueryHandlerTestSuite))
}
