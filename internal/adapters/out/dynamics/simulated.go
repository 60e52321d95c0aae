package dynamics

import (
	"context"
	"log/slog"

	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/core/domain/model/platform"
)

// SimulatedSubmitter is the stand-in ERP: it accepts every sales order
// without any remote call and returns a synthetic reference. Selected by
// configuration when the Dynamics connection is not enabled.
type SimulatedSubmitter struct {
	logger *slog.Logger
}

// NewSimulatedSubmitter creates the simulated ERP submitter.
func NewSimulatedSubmitter(logger *slog.Logger) *SimulatedSubmitter {
	return &SimulatedSubmitter{
		logger: logger.With("component", "simulated-erp"),
	}
}

// Submit logs the would-be sales order and reports success.
func (s *SimulatedSubmitter) Submit(_ context.Context, aggregate *order.Order, _ *platform.Order) (string, error) {
	if err := aggregate.Validate(); err != nil {
		return "", err
	}

	reference := "SIM-" + aggregate.OrderNumber()
	s.logger.Info("simulated sales order submission",
		"orderNumber", aggregate.OrderNumber(), "reference", reference)
	return reference, nil
}
