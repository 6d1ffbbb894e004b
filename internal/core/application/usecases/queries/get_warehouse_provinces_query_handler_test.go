package queries_test

import (
	"context"
	"testing"
	"time"

	"servicearea/internal/adapters/out/postgres/assignmentrepo"
	"servicearea/internal/adapters/out/postgres/warehouserepo"
	"servicearea/internal/core/application/usecases/queries"
	"servicearea/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetWarehouseProvincesQueryHandlerTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	provincesHandler queries.GetWarehouseProvincesQueryHandler
	citiesHandler    queries.GetWarehouseCitiesQueryHandler
}

func (suite *GetWarehouseProvincesQueryHandlerTestSuite) SetupSuite() {
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
		&warehouserepo.WarehouseDTO{},
		&assignmentrepo.ProvinceAssignmentDTO{},
		&assignmentrepo.CityAssignmentDTO{},
	)
	suite.Require().NoError(err)

	suite.provincesHandler = queries.NewGetWarehouseProvincesQueryHandler(db)
	suite.citiesHandler = queries.NewGetWarehouseCitiesQueryHandler(db)
}

func (suite *GetWarehouseProvincesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetWarehouseProvincesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE warehouses, province_assignments, city_assignments").Error
	suite.Require().NoError(err)
}

func (suite *GetWarehouseProvincesQueryHandlerTestSuite) seedWarehouse(id int64) {
	err := suite.db.Create(&warehouserepo.WarehouseDTO{ID: id, Active: true}).Error
	suite.Require().NoError(err)
}

func (suite *GetWarehouseProvincesQueryHandlerTestSuite) seedProvince(region string, warehouseID int64) {
	err := suite.db.Create(&assignmentrepo.ProvinceAssignmentDTO{
		Region:      region,
		WarehouseID: warehouseID,
	}).Error
	suite.Require().NoError(err)
}

func (suite *GetWarehouseProvincesQueryHandlerTestSuite) seedCity(region string, warehouseID int64) {
	err := suite.db.Create(&assignmentrepo.CityAssignmentDTO{
		Region:      region,
		WarehouseID: warehouseID,
	}).Error
	suite.Require().NoError(err)
}

func (suite *GetWarehouseProvincesQueryHandlerTestSuite) TestHandle_UnknownWarehouse_ReturnsNotFound() {
	query, err := queries.NewGetWarehouseProvincesQuery(42)
	suite.Require().NoError(err)

	_, err = suite.provincesHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetWarehouseProvincesQueryHandlerTestSuite) TestHandle_NoAssignments_ReturnsEmptySlice() {
	suite.seedWarehouse(1)

	query, err := queries.NewGetWarehouseProvincesQuery(1)
	suite.Require().NoError(err)

	result, err := suite.provincesHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetWarehouseProvincesQueryHandlerTestSuite) TestHandle_ReturnsOwnProvincesSorted() {
	suite.seedWarehouse(1)
	suite.seedWarehouse(2)
	suite.seedProvince("浙江省", 1)
	suite.seedProvince("江苏省", 1)
	suite.seedProvince("广东省", 2)

	query, err := queries.NewGetWarehouseProvincesQuery(1)
	suite.Require().NoError(err)

	result, err := suite.provincesHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]string{"江苏省", "浙江省"}, result)
}

func (suite *GetWarehouseProvincesQueryHandlerTestSuite) TestHandle_Cities_ReturnsOwnCitiesSorted() {
	suite.seedWarehouse(1)
	suite.seedCity("杭州市", 1)
	suite.seedCity("宁波市", 1)
	suite.seedCity("深圳市", 2)

	query, err := queries.NewGetWarehouseCitiesQuery(1)
	suite.Require().NoError(err)

	result, err := suite.citiesHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]string{"宁波市", "杭州市"}, result)
}

func (suite *GetWarehouseProvincesQueryHandlerTestSuite) TestHandle_Cities_UnknownWarehouse_ReturnsNotFound() {
	query, err := queries.NewGetWarehouseCitiesQuery(42)
	suite.Require().NoError(err)

	_, err = suite.citiesHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetWarehouseProvincesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetWarehouseProvincesQueryHandlerTestSuite))
}
