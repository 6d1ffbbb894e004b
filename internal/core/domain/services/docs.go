// Package services contains domain services for the service-area engine:
// operations that span multiple aggregates and therefore do not belong to
// any single one of them.
//
// The package includes:
//   - CoverageClassifier: Derives per-warehouse fulfillment coverage and the
//     system-level misconfiguration advisory from the partition tables, the
//     split registry, and the province universe
//   - RegionResolver: Decides which warehouse owns a destination region for
//     order routing, with strict province/city tiering
//
// Both services are pure: they read aggregate state and compute, leaving all
// mutation to the aggregates themselves.
package services
