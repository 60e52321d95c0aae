package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"shipsync/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ShipTo is the destination snapshot captured at ingestion. The
// authoritative address lives on the platform and is re-fetched at label
// time; this snapshot backs the dashboard and fills gaps in the remote
// payload.
type ShipTo struct {
	Name       string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Details carries the descriptive order attributes captured at ingestion.
// They are immutable after construction; only status, ERP reference and
// label URLs change over the order's life.
type Details struct {
	CustomerEmail    string
	ShipTo           ShipTo
	OrderDate        time.Time
	Total            decimal.Decimal
	RequestedService string
	Items            []Item
	TagIDs           []int64
}

// Order is the central aggregate: one live order synchronized from the
// shipping platform, routed through the approval workflow and eventually
// archived.
//
// Invariants:
//   - the platform identifier is positive and unique across live orders
//   - the order number is never empty
//   - status transitions follow the Status state machine
//   - instances are only created via NewOrder / RestoreOrder
type Order struct {
	id           int64
	orderNumber  string
	status       Status
	erpReference string
	details      Details
	labelURLs    []string
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates a live order at ingestion time. The initial status
// comes from tag classification and must be a valid workflow state.
func NewOrder(id int64, orderNumber string, status Status, details Details) (*Order, error) {
	o := &Order{
		details:       details,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including the
// mutable attributes NewOrder does not accept.
func RestoreOrder(
	id int64,
	orderNumber string,
	status Status,
	details Details,
	erpReference string,
	labelURLs []string,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, status, details)
	if err != nil {
		return nil, err
	}

	o.erpReference = erpReference
	o.labelURLs = labelURLs
	if !createdAt.IsZero() {
		o.createdAt = createdAt
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed. Call it
// when reconstructing orders from persistence or accepting them across a
// port boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their platform identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the platform-assigned identifier.
func (o *Order) ID() int64 {
	return o.id
}

// OrderNumber returns the human-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// ERPReference returns the ERP sales order reference, empty until the ERP
// submission has produced one.
func (o *Order) ERPReference() string {
	return o.erpReference
}

// CustomerEmail returns the buyer's email address.
func (o *Order) CustomerEmail() string {
	return o.details.CustomerEmail
}

// ShipTo returns the destination snapshot captured at ingestion.
func (o *Order) ShipTo() ShipTo {
	return o.details.ShipTo
}

// OrderDate returns the date the order was placed on the platform.
func (o *Order) OrderDate() time.Time {
	return o.details.OrderDate
}

// Total returns the monetary order total.
func (o *Order) Total() decimal.Decimal {
	return o.details.Total
}

// RequestedService returns the shipping service the buyer requested.
func (o *Order) RequestedService() string {
	return o.details.RequestedService
}

// Items returns the stored line item snapshot.
func (o *Order) Items() []Item {
	return o.details.Items
}

// TagIDs returns the platform tag ids applied to the order.
func (o *Order) TagIDs() []int64 {
	return o.details.TagIDs
}

// LabelURLs returns the shipping label URLs produced for the order.
func (o *Order) LabelURLs() []string {
	return o.labelURLs
}

// CreatedAt returns the local ingestion timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Approve releases the order from its approval queue into
// ReadyForProcessing. Approving an already released order is a no-op
// success, keeping repeated operator clicks idempotent.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// BeginProcessing reserves the order for ERP submission. Fails unless the
// order is currently ReadyForProcessing.
func (o *Order) BeginProcessing() error {
	newStatus, err := o.status.BeginProcessing()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkSynced sets the terminal status written into the archive record.
func (o *Order) MarkSynced() error {
	newStatus, err := o.status.MarkSynced()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkError flags a failed ERP submission for operator attention.
func (o *Order) MarkError() error {
	newStatus, err := o.status.MarkError()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// AttachLabelURLs records the label URLs returned by the carrier API.
// Replaces any previous set; label creation is not additive.
func (o *Order) AttachLabelURLs(urls []string) {
	o.labelURLs = urls
}

// SetERPReference records the sales order reference returned by the ERP.
func (o *Order) SetERPReference(ref string) {
	o.erpReference = ref
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%d is not a positive platform identifier", id),
		)
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
