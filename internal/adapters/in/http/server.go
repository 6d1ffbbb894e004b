// Package http is the inbound HTTP adapter: it translates echo requests into
// commands and queries and maps domain errors to the API's error taxonomy.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"servicearea/internal/core/application/usecases/commands"
	"servicearea/internal/core/application/usecases/queries"
	"servicearea/internal/core/domain/model/partition"
	"servicearea/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	replaceProvincesHandler commands.ReplaceServiceProvincesCommandHandler
	replaceCitiesHandler    commands.ReplaceServiceCitiesCommandHandler
	replaceSplitHandler     commands.ReplaceCitySplitCommandHandler
	addSplitHandler         commands.AddCitySplitCommandHandler
	removeSplitHandler      commands.RemoveCitySplitCommandHandler

	// Query handlers
	getWarehouseProvincesHandler queries.GetWarehouseProvincesQueryHandler
	getWarehouseCitiesHandler    queries.GetWarehouseCitiesQueryHandler
	getProvinceOccupancyHandler  queries.GetProvinceOccupancyQueryHandler
	getCityOccupancyHandler      queries.GetCityOccupancyQueryHandler
	getSplitProvincesHandler     queries.GetCitySplitProvincesQueryHandler
	getCoverageHandler           queries.GetFulfillmentCoverageQueryHandler
	getAdvisoryHandler           queries.GetCoverageAdvisoryQueryHandler
	resolveHandler               queries.ResolveServiceWarehouseQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	replaceProvincesHandler commands.ReplaceServiceProvincesCommandHandler,
	replaceCitiesHandler commands.ReplaceServiceCitiesCommandHandler,
	replaceSplitHandler commands.ReplaceCitySplitCommandHandler,
	addSplitHandler commands.AddCitySplitCommandHandler,
	removeSplitHandler commands.RemoveCitySplitCommandHandler,
	getWarehouseProvincesHandler queries.GetWarehouseProvincesQueryHandler,
	getWarehouseCitiesHandler queries.GetWarehouseCitiesQueryHandler,
	getProvinceOccupancyHandler queries.GetProvinceOccupancyQueryHandler,
	getCityOccupancyHandler queries.GetCityOccupancyQueryHandler,
	getSplitProvincesHandler queries.GetCitySplitProvincesQueryHandler,
	getCoverageHandler queries.GetFulfillmentCoverageQueryHandler,
	getAdvisoryHandler queries.GetCoverageAdvisoryQueryHandler,
	resolveHandler queries.ResolveServiceWarehouseQueryHandler,
) *Server {
	return &Server{
		replaceProvincesHandler:      replaceProvincesHandler,
		replaceCitiesHandler:         replaceCitiesHandler,
		replaceSplitHandler:          replaceSplitHandler,
		addSplitHandler:              addSplitHandler,
		removeSplitHandler:           removeSplitHandler,
		getWarehouseProvincesHandler: getWarehouseProvincesHandler,
		getWarehouseCitiesHandler:    getWarehouseCitiesHandler,
		getProvinceOccupancyHandler:  getProvinceOccupancyHandler,
		getCityOccupancyHandler:      getCityOccupancyHandler,
		getSplitProvincesHandler:     getSplitProvincesHandler,
		getCoverageHandler:           getCoverageHandler,
		getAdvisoryHandler:           getAdvisoryHandler,
		resolveHandler:               resolveHandler,
	}
}

// RegisterRoutes attaches all partition API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/warehouses/:id/service-provinces", s.GetWarehouseProvinces)
	v1.PUT("/warehouses/:id/service-provinces", s.ReplaceWarehouseProvinces)
	v1.GET("/service-provinces/occupancy", s.GetProvinceOccupancy)

	v1.GET("/warehouses/:id/service-cities", s.GetWarehouseCities)
	v1.PUT("/warehouses/:id/service-cities", s.ReplaceWarehouseCities)
	v1.GET("/service-cities/occupancy", s.GetCityOccupancy)

	v1.GET("/city-split-provinces", s.GetCitySplitProvinces)
	v1.PUT("/city-split-provinces", s.ReplaceCitySplitProvinces)
	v1.POST("/city-split-provinces", s.AddCitySplitProvinces)
	v1.DELETE("/city-split-provinces/:province", s.RemoveCitySplitProvince)

	v1.GET("/warehouses/:id/coverage", s.GetCoverage)
	v1.GET("/coverage/advisory", s.GetAdvisory)
	v1.GET("/service-areas/resolve", s.ResolveServiceWarehouse)

	e.GET("/health", s.Health)
}

// GetWarehouseProvinces handles GET /api/v1/warehouses/:id/service-provinces.
func (s *Server) GetWarehouseProvinces(ctx echo.Context) error {
	warehouseID, err := pathWarehouseID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetWarehouseProvincesQuery(warehouseID)
	if err != nil {
		return mapError(ctx, err)
	}

	provinces, err := s.getWarehouseProvincesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WarehouseProvincesResponse{
		WarehouseID: warehouseID,
		Provinces:   provinces,
	})
}

// ReplaceWarehouseProvinces handles PUT /api/v1/warehouses/:id/service-provinces.
func (s *Server) ReplaceWarehouseProvinces(ctx echo.Context) error {
	warehouseID, err := pathWarehouseID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req ProvinceSetRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewReplaceServiceProvincesCommand(warehouseID, req.Provinces)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.replaceProvincesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProvinceSetResponse{Provinces: cmd.ProvinceStrings()})
}

// GetWarehouseCities handles GET /api/v1/warehouses/:id/service-cities.
func (s *Server) GetWarehouseCities(ctx echo.Context) error {
	warehouseID, err := pathWarehouseID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetWarehouseCitiesQuery(warehouseID)
	if err != nil {
		return mapError(ctx, err)
	}

	cities, err := s.getWarehouseCitiesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WarehouseCitiesResponse{
		WarehouseID: warehouseID,
		Cities:      cities,
	})
}

// ReplaceWarehouseCities handles PUT /api/v1/warehouses/:id/service-cities.
func (s *Server) ReplaceWarehouseCities(ctx echo.Context) error {
	warehouseID, err := pathWarehouseID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CitySetRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewReplaceServiceCitiesCommand(warehouseID, req.Cities)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.replaceCitiesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CitySetResponse{Cities: cmd.CityStrings()})
}

// GetProvinceOccupancy handles GET /api/v1/service-provinces/occupancy.
func (s *Server) GetProvinceOccupancy(ctx echo.Context) error {
	occupancy, err := s.getProvinceOccupancyHandler.Handle(
		ctx.Request().Context(), queries.NewGetProvinceOccupancyQuery(),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	rows := make([]ProvinceOccupancyRow, len(occupancy))
	for i, row := range occupancy {
		rows[i] = ProvinceOccupancyRow{ProvinceCode: row.Region, WarehouseID: row.WarehouseID}
	}

	return ctx.JSON(http.StatusOK, ProvinceOccupancyResponse{Rows: rows})
}

// GetCityOccupancy handles GET /api/v1/service-cities/occupancy.
func (s *Server) GetCityOccupancy(ctx echo.Context) error {
	occupancy, err := s.getCityOccupancyHandler.Handle(
		ctx.Request().Context(), queries.NewGetCityOccupancyQuery(),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	rows := make([]CityOccupancyRow, len(occupancy))
	for i, row := range occupancy {
		rows[i] = CityOccupancyRow{CityCode: row.Region, WarehouseID: row.WarehouseID}
	}

	return ctx.JSON(http.StatusOK, CityOccupancyResponse{Rows: rows})
}

// GetCitySplitProvinces handles GET /api/v1/city-split-provinces.
func (s *Server) GetCitySplitProvinces(ctx echo.Context) error {
	provinces, err := s.getSplitProvincesHandler.Handle(
		ctx.Request().Context(), queries.NewGetCitySplitProvincesQuery(),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProvinceSetResponse{Provinces: provinces})
}

// ReplaceCitySplitProvinces handles PUT /api/v1/city-split-provinces.
func (s *Server) ReplaceCitySplitProvinces(ctx echo.Context) error {
	var req ProvinceSetRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewReplaceCitySplitCommand(req.Provinces)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.replaceSplitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProvinceSetResponse{Provinces: cmd.ProvinceStrings()})
}

// AddCitySplitProvinces handles POST /api/v1/city-split-provinces.
func (s *Server) AddCitySplitProvinces(ctx echo.Context) error {
	var req ProvinceSetRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddCitySplitCommand(req.Provinces)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.addSplitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.GetCitySplitProvinces(ctx)
}

// RemoveCitySplitProvince handles DELETE /api/v1/city-split-provinces/:province.
func (s *Server) RemoveCitySplitProvince(ctx echo.Context) error {
	cmd, err := commands.NewRemoveCitySplitCommand([]string{ctx.Param("province")})
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.removeSplitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.GetCitySplitProvinces(ctx)
}

// GetCoverage handles GET /api/v1/warehouses/:id/coverage.
func (s *Server) GetCoverage(ctx echo.Context) error {
	warehouseID, err := pathWarehouseID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetFulfillmentCoverageQuery(warehouseID)
	if err != nil {
		return mapError(ctx, err)
	}

	coverage, err := s.getCoverageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CoverageResponse{
		WarehouseID: coverage.WarehouseID.Int64(),
		ProvinceN:   coverage.ProvinceCount,
		CityN:       coverage.CityCount,
		Label:       string(coverage.Label),
	})
}

// GetAdvisory handles GET /api/v1/coverage/advisory.
func (s *Server) GetAdvisory(ctx echo.Context) error {
	advisory, err := s.getAdvisoryHandler.Handle(
		ctx.Request().Context(), queries.NewGetCoverageAdvisoryQuery(),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	ids := make([]int64, len(advisory.NationalWarehouses))
	for i, id := range advisory.NationalWarehouses {
		ids[i] = id.Int64()
	}

	return ctx.JSON(http.StatusOK, AdvisoryResponse{NationalWarehouseIDs: ids})
}

// ResolveServiceWarehouse handles GET /api/v1/service-areas/resolve.
func (s *Server) ResolveServiceWarehouse(ctx echo.Context) error {
	query, err := queries.NewResolveServiceWarehouseQuery(
		ctx.QueryParam("province"), ctx.QueryParam("city"),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	resolution, err := s.resolveHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := ResolveResponse{Found: resolution.Found}
	if resolution.Found {
		id := resolution.Warehouse.Int64()
		response.WarehouseID = &id
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func pathWarehouseID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// mapError translates domain errors into the API error taxonomy:
// partition conflicts become 409 with the complete conflict list, unknown
// objects become 404, validation failures become 400, everything else 500.
func mapError(ctx echo.Context, err error) error {
	var conflictErr *partition.ConflictError
	if errors.As(err, &conflictErr) {
		conflicts := make([]ConflictDetail, len(conflictErr.Conflicts))
		for i, conflict := range conflictErr.Conflicts {
			conflicts[i] = ConflictDetail{
				Region:           conflict.Region.String(),
				OwnerWarehouseID: conflict.Owner.Int64(),
			}
		}
		return ctx.JSON(http.StatusConflict, ConflictResponse{
			Message:   conflictErr.Message(),
			Conflicts: conflicts,
		})
	}

	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return badRequest(ctx, err)
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}
