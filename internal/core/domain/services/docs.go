// Package services provides domain services that span several aggregates of the
// procurement model.
//
// The package includes:
//   - AccessPolicy: the role gate deciding which actions a profile may perform
//     and which orders and clients it may observe
//   - OrderExporter: the CSV rendering of approved and completed orders handed
//     to purchasing
//
// Both services are stateless and safe for concurrent use.
package services
