// Package measure contains the unit model shared by order line items and
// carrier shipment packages: weights with unit normalization and ounce
// conversion, dimension triples, and insured values.
//
// The types here are deliberately permissive. Upstream order payloads carry
// weights and dimensions in whatever shape the merchant configured, so a
// bad value never fails an operation: a non-positive or unparseable weight
// contributes zero, an incomplete dimension triple is treated as absent.
package measure
