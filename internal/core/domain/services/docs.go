// Package services provides the domain services of the order bridge:
// workflow routing of incoming orders, catalog enrichment of line items,
// and construction of carrier-ready shipment requests.
//
// The package includes:
//   - TagClassifier: maps an order's tag set to its initial workflow state
//   - item mapping and enrichment from the cached product catalog
//   - ShipmentBuilder: pure construction of the label request payload,
//     including unit conversion, multi-package expansion, and
//     address/service-code resolution with configured fallbacks
//
// All services here are state-free beyond their configured defaults, so
// the processing logic can be tested without a database or any external
// collaborator.
package services
