// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"shipsync/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest interface covering the
// repositories they touch.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the live order repository
	// within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ArchiveRepoFactory provides access to the archive repository
	// within a transaction.
	ArchiveRepoFactory interface {
		ArchiveRepository() ports.ArchiveRepository
	}

	// TagRepoFactory provides access to the tag cache repository within
	// a transaction.
	TagRepoFactory interface {
		TagRepository() ports.TagRepository
	}

	// ProductRepoFactory provides access to the product catalog
	// repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// IngestUoW manages the ingestion transaction: inserting orders
	// while reading the tag vocabulary and product catalog used for
	// classification and item enrichment.
	IngestUoW interface {
		TxManager
		OrderRepoFactory
		TagRepoFactory
		ProductRepoFactory
	}

	// IngestUoWFactory creates new ingestion unit of work instances.
	IngestUoWFactory interface {
		Create() IngestUoW
	}

	// ProcessUoW manages the processing transaction. The archive insert
	// and the live-row delete share it, which is what makes the archive
	// move atomic.
	ProcessUoW interface {
		TxManager
		OrderRepoFactory
		ArchiveRepoFactory
		ProductRepoFactory
	}

	// ProcessUoWFactory creates new processing unit of work instances.
	ProcessUoWFactory interface {
		Create() ProcessUoW
	}

	// TagUoW manages transactions for tag cache refreshes.
	TagUoW interface {
		TxManager
		TagRepoFactory
	}

	// TagUoWFactory creates new tag unit of work instances.
	TagUoWFactory interface {
		Create() TagUoW
	}

	// ProductUoW manages transactions for product catalog refreshes.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}
)
