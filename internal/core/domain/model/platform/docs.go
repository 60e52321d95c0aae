// Package platform models the wire payloads of the upstream shipping
// platform: awaiting-shipment orders, per-order detail, the account tag
// vocabulary and the product catalog.
//
// The platform is not strict about field names or types, so the types
// here keep the synonym fields (street1 vs address1, unit vs units) and
// loosely typed flags exactly as they arrive. Normalization into canonical
// domain values happens in the domain services, never here.
package platform
