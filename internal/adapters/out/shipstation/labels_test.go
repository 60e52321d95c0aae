package shipstation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLabelResponse(t *testing.T, raw string) *labelResponse {
	t.Helper()
	var response labelResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &response))
	return &response
}

func TestExtractLabelURLs(t *testing.T) {
	tests := map[string]struct {
		response string
		expected []string
	}{
		"nested labels array": {
			response: `{"labels":[{"label_download":{"href":"https://x/1.pdf"}}]}`,
			expected: []string{"https://x/1.pdf"},
		},
		"nested labels deduplicate repeated hrefs": {
			response: `{"labels":[
				{"label_download":{"href":"https://x/1.pdf"}},
				{"label_download":{"href":"https://x/1.pdf"}}
			]}`,
			expected: []string{"https://x/1.pdf"},
		},
		"top level snake case download": {
			response: `{"label_download":{"href":"https://x/top.pdf"}}`,
			expected: []string{"https://x/top.pdf"},
		},
		"top level camel case url": {
			response: `{"labelUrl":"https://x/camel.pdf"}`,
			expected: []string{"https://x/camel.pdf"},
		},
		"per package links": {
			response: `{"packages":[
				{"label_download":{"href":"https://x/p1.pdf"}},
				{"labelUrl":"https://x/p2.pdf"}
			]}`,
			expected: []string{"https://x/p1.pdf", "https://x/p2.pdf"},
		},
		"all shapes collected in strategy order": {
			response: `{
				"labels":[{"labelDataHref":"https://x/data.pdf"}],
				"label_url":"https://x/top.pdf",
				"packages":[{"labelUrl":"https://x/pkg.pdf"}]
			}`,
			expected: []string{"https://x/data.pdf", "https://x/top.pdf", "https://x/pkg.pdf"},
		},
		"same url across shapes reported once": {
			response: `{
				"labels":[{"label_url":"https://x/1.pdf"}],
				"label_download":{"href":"https://x/1.pdf"},
				"packages":[{"labelUrl":"https://x/1.pdf"}]
			}`,
			expected: []string{"https://x/1.pdf"},
		},
		"blank and whitespace urls dropped": {
			response: `{"labels":[{"label_url":"  "},{"labelUrl":""}],"label_url":" https://x/1.pdf "}`,
			expected: []string{"https://x/1.pdf"},
		},
		"empty response": {
			response: `{}`,
			expected: nil,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			urls := extractLabelURLs(decodeLabelResponse(t, test.response))
			assert.Equal(t, test.expected, urls)
		})
	}
}

func TestExtractLabelURLsNilResponse(t *testing.T) {
	assert.Nil(t, extractLabelURLs(nil))
}
