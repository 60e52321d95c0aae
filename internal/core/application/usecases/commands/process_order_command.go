package commands

import (
	"errors"
	"fmt"

	"shipsync/internal/pkg/errs"
	"shipsync/internal/pkg/guard"
)

var ErrProcessOrderCommandIsNotConstructed = errors.New(
	"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
)

// ProcessOrderCommand represents a request to run one order through the
// processing pipeline: label purchase, ERP submission and the archive
// move.
//
// Example:
//
//	cmd, err := NewProcessOrderCommand(orderID, false)
//	if err != nil {
//	    return fmt.Errorf("invalid processing request: %w", err)
//	}
//
//	handler := NewProcessOrderCommandHandler(uowFactory, client, builder, submitter, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to process order: %w", err)
//	}
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	multipack bool

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates a command to process one order.
// Validates that the order id is a positive platform identifier.
// Multipack requests one label package per unit of quantity instead of a
// single aggregated package.
func NewProcessOrderCommand(orderID int64, multipack bool) (ProcessOrderCommand, error) {
	command := ProcessOrderCommand{
		multipack: multipack,
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ProcessOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrderCommandIsNotConstructed if validation fails.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// OrderID returns the platform identifier of the order to process.
func (c ProcessOrderCommand) OrderID() int64 {
	return c.orderID
}

// Multipack reports whether the label request should carry one package
// per unit of quantity.
func (c ProcessOrderCommand) Multipack() bool {
	return c.multipack
}

func (c *ProcessOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%d is not a positive platform identifier", orderID),
		)
	}

	c.orderID = orderID
	return nil
}
