package commands

import (
	"context"
	"log/slog"

	"shipsync/internal/core/ports"
)

// RefreshTagsCommandHandler replaces the cached tag vocabulary with the
// platform's current one. The replace is transactional, so the cache is
// never observed half-swapped; a failed fetch leaves the previous
// vocabulary untouched.
type RefreshTagsCommandHandler struct {
	uowFactory TagUoWFactory
	client     ports.PlatformClient
	logger     *slog.Logger
}

// NewRefreshTagsCommandHandler creates a handler for tag cache refreshes.
func NewRefreshTagsCommandHandler(
	uowFactory TagUoWFactory,
	client ports.PlatformClient,
	logger *slog.Logger,
) RefreshTagsCommandHandler {
	return RefreshTagsCommandHandler{
		uowFactory: uowFactory,
		client:     client,
		logger:     logger.With("component", "refresh-tags"),
	}
}

// Handle runs one tag refresh and returns the new vocabulary size.
func (h *RefreshTagsCommandHandler) Handle(ctx context.Context, cmd RefreshTagsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	tags, err := h.client.FetchTags(ctx)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TagRepository().ReplaceAll(ctx, tags); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.logger.Info("tag vocabulary refreshed", "tags", len(tags))
	return len(tags), nil
}
