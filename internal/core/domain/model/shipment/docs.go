// Package shipment contains the carrier-API-ready shipment model: cleaned
// addresses, canonical packages and the label request payload.
//
// All payload types use omitempty JSON tags so the encoded request never
// carries null or empty-string fields; the carrier API rejects them.
// Canonical packages are ephemeral values constructed fresh per label
// request and never shared between orders.
package shipment
