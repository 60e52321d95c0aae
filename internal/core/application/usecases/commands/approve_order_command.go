package commands

import (
	"errors"
	"fmt"

	"shipsync/internal/pkg/errs"
	"shipsync/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand represents an operator's request to release an
// order from its approval queue into Ready for Processing.
//
// Example:
//
//	cmd, err := NewApproveOrderCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid approval request: %w", err)
//	}
//
//	handler := NewApproveOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to approve order: %w", err)
//	}
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve a held order.
// Validates that the order id is a positive platform identifier.
func NewApproveOrderCommand(orderID int64) (ApproveOrderCommand, error) {
	command := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ApproveOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApproveOrderCommandIsNotConstructed if validation fails.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the platform identifier of the order to approve.
func (c ApproveOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *ApproveOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%d is not a positive platform identifier", orderID),
		)
	}

	c.orderID = orderID
	return nil
}
