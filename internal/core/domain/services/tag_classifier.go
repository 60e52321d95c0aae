package services

import (
	"strings"

	"shipsync/internal/core/domain/model/order"
)

// Routing tag names. Matching is by name, not id, so a tag rename on the
// platform takes effect after the next tag refresh.
const (
	ReplacementTagName = "replacement"
	PalletTagName      = "pallet"
)

// TagClassifier maps an order's tag-id set, resolved against the cached
// tag vocabulary, to the order's initial workflow state.
//
// The rule set is priority ordered:
//  1. a replacement tag routes the order to Pending Approval
//  2. otherwise a pallet tag routes it to Pending Pallet Processing
//  3. otherwise the order is Ready for Processing
//
// Tag names are compared case-insensitively as whole names. Unknown tag
// ids resolve to nothing and contribute no match; classification never
// fails.
type TagClassifier struct{}

// NewTagClassifier creates a TagClassifier.
func NewTagClassifier() TagClassifier {
	return TagClassifier{}
}

// InitialStatus classifies an order by its tag ids against the id-to-name
// vocabulary.
func (TagClassifier) InitialStatus(tagIDs []int64, names map[int64]string) order.Status {
	hasPallet := false

	for _, id := range tagIDs {
		name, ok := names[id]
		if !ok {
			continue
		}
		if strings.EqualFold(name, ReplacementTagName) {
			return order.PendingApproval
		}
		if strings.EqualFold(name, PalletTagName) {
			hasPallet = true
		}
	}

	if hasPallet {
		return order.PendingPalletProcessing
	}
	return order.ReadyForProcessing
}
