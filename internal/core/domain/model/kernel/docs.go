// Package kernel provides core domain primitives for the service-area engine.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - RegionCode: A value object for the opaque province/city codes that are
//     the atomic unit of service-area ownership
//   - WarehouseID: A value object for identifiers from the external warehouse registry
//   - Universe: The static enumeration of the full addressable province set,
//     used only as the denominator for coverage classification
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
