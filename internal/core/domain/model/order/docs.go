// Package order contains the Order aggregate and its workflow state
// machine.
//
// An Order is created exactly once by ingestion from the shipping
// platform, mutated only by status transitions and label-URL writes, and
// leaves the live table exactly once: either archived (terminal) or
// explicitly cleared by an operator. The platform-assigned identifier is
// the aggregate identity and is unique across the live table; an order is
// present in at most one of the live and archive tables at any time.
package order
