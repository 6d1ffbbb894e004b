package http

// Request and response payloads for the partition API. Region lists are
// always returned deduplicated and sorted, regardless of request order.

// ProvinceSetRequest is the body of the province replace operation and of
// the split-registry mutations.
type ProvinceSetRequest struct {
	Provinces []string `json:"provinces"`
}

// CitySetRequest is the body of the city replace operation.
type CitySetRequest struct {
	Cities []string `json:"cities"`
}

// WarehouseProvincesResponse returns one warehouse's owned province set.
type WarehouseProvincesResponse struct {
	WarehouseID int64    `json:"warehouse_id"`
	Provinces   []string `json:"provinces"`
}

// WarehouseCitiesResponse returns one warehouse's owned city set.
type WarehouseCitiesResponse struct {
	WarehouseID int64    `json:"warehouse_id"`
	Cities      []string `json:"cities"`
}

// ProvinceSetResponse returns a province set: the applied set of a province
// replace, or the global split-province set.
type ProvinceSetResponse struct {
	Provinces []string `json:"provinces"`
}

// CitySetResponse returns the applied set of a city replace.
type CitySetResponse struct {
	Cities []string `json:"cities"`
}

// ProvinceOccupancyResponse is the full province ownership map.
type ProvinceOccupancyResponse struct {
	Rows []ProvinceOccupancyRow `json:"rows"`
}

// ProvinceOccupancyRow is one row of the province occupancy map.
type ProvinceOccupancyRow struct {
	ProvinceCode string `json:"province_code"`
	WarehouseID  int64  `json:"warehouse_id"`
}

// CityOccupancyResponse is the full city ownership map.
type CityOccupancyResponse struct {
	Rows []CityOccupancyRow `json:"rows"`
}

// CityOccupancyRow is one row of the city occupancy map.
type CityOccupancyRow struct {
	CityCode    string `json:"city_code"`
	WarehouseID int64  `json:"warehouse_id"`
}

// CoverageResponse returns one warehouse's derived coverage. CityN is null
// while the split registry is empty, meaning city rules are not in effect.
type CoverageResponse struct {
	WarehouseID int64  `json:"warehouse_id"`
	ProvinceN   int    `json:"province_n"`
	CityN       *int   `json:"city_n"`
	Label       string `json:"label"`
}

// AdvisoryResponse returns the system-level partition advisory. The ID list
// is empty when the partition is healthy.
type AdvisoryResponse struct {
	NationalWarehouseIDs []int64 `json:"national_warehouse_ids"`
}

// ResolveResponse returns the routing outcome for a destination.
// WarehouseID is null when no warehouse serves it.
type ResolveResponse struct {
	Found       bool   `json:"found"`
	WarehouseID *int64 `json:"warehouse_id"`
}

// ConflictResponse is the 409 payload of the replace-set operations. It
// lists every requested region already owned by another warehouse.
type ConflictResponse struct {
	Message   string           `json:"message"`
	Conflicts []ConflictDetail `json:"conflicts"`
}

// ConflictDetail names one colliding region and its current owner.
type ConflictDetail struct {
	Region           string `json:"region"`
	OwnerWarehouseID int64  `json:"owner_warehouse_id"`
}

// ErrorResponse is the generic error payload for non-conflict failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
