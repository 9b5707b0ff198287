// Package order provides the Order aggregate of the procurement workflow.
//
// The package includes:
//   - Order: the aggregate root holding the supervisor and client snapshots,
//     the line items and the lifecycle timestamps
//   - Item: a line item with its requested and approved quantities
//   - Status: the state machine that governs the order lifecycle
//
// Key business rules:
//   - Orders are created in Pending status with at least one line item
//   - Pending orders are approved or rejected; approved orders are completed
//   - Rejected and Completed are terminal
//   - Approval may lower each item's quantity but never raise it above the request
//   - Supervisor, client and product names are snapshots taken at creation
//     and are never updated afterwards
package order
