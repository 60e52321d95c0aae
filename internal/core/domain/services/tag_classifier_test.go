package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shipsync/internal/core/domain/model/order"
)

func TestTagClassifier_InitialStatus(t *testing.T) {
	names := map[int64]string{
		1: "Replacement",
		2: "pallet",
		3: "gift",
		4: "PALLET",
	}

	classifier := NewTagClassifier()

	tests := []struct {
		name   string
		tagIDs []int64
		want   order.Status
	}{
		{"no tags", nil, order.ReadyForProcessing},
		{"unrelated tag", []int64{3}, order.ReadyForProcessing},
		{"replacement tag", []int64{1}, order.PendingApproval},
		{"pallet tag", []int64{2}, order.PendingPalletProcessing},
		{"pallet tag uppercase name", []int64{4}, order.PendingPalletProcessing},
		{"replacement wins over pallet", []int64{2, 1}, order.PendingApproval},
		{"replacement wins regardless of order", []int64{1, 2}, order.PendingApproval},
		{"unknown ids contribute nothing", []int64{99, 100}, order.ReadyForProcessing},
		{"unknown id next to pallet", []int64{99, 2}, order.PendingPalletProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.InitialStatus(tt.tagIDs, names))
		})
	}
}

func TestTagClassifier_InitialStatusWithEmptyVocabulary(t *testing.T) {
	classifier := NewTagClassifier()

	assert.Equal(t, order.ReadyForProcessing, classifier.InitialStatus([]int64{1, 2, 3}, nil))
}
