package shipstation

import "strings"

// The label endpoint does not return URLs in one stable place. Depending
// on the label type the download link shows up at the top level, inside a
// labels array, or per package, under either snake or camel casing. The
// response type below declares every known spot and an ordered list of
// extraction strategies probes them all.

type labelDownload struct {
	Href string `json:"href"`
}

type labelEntry struct {
	LabelDownload      *labelDownload `json:"label_download"`
	LabelDownloadCamel *labelDownload `json:"labelDownload"`
	LabelURL           string         `json:"label_url"`
	LabelURLCamel      string         `json:"labelUrl"`
	LabelDataHref      string         `json:"labelDataHref"`
}

type packageEntry struct {
	LabelDownload *labelDownload `json:"label_download"`
	LabelURL      string         `json:"labelUrl"`
}

type labelResponse struct {
	Labels   []labelEntry   `json:"labels"`
	Packages []packageEntry `json:"packages"`

	LabelDownload      *labelDownload `json:"label_download"`
	LabelDownloadCamel *labelDownload `json:"labelDownload"`
	LabelURL           string         `json:"label_url"`
	LabelURLCamel      string         `json:"labelUrl"`
}

// labelURLExtractor returns the URLs one known response shape carries,
// possibly none.
type labelURLExtractor func(*labelResponse) []string

// labelURLExtractors is ordered: nested label entries first, then the
// top-level link, then per-package links.
var labelURLExtractors = []labelURLExtractor{
	extractNestedLabels,
	extractTopLevel,
	extractPackageLinks,
}

func extractNestedLabels(r *labelResponse) []string {
	var urls []string
	for _, label := range r.Labels {
		urls = append(urls, hrefOf(label.LabelDownload), hrefOf(label.LabelDownloadCamel),
			label.LabelURL, label.LabelURLCamel, label.LabelDataHref)
	}
	return urls
}

func extractTopLevel(r *labelResponse) []string {
	return []string{
		hrefOf(r.LabelDownload), hrefOf(r.LabelDownloadCamel),
		r.LabelURL, r.LabelURLCamel,
	}
}

func extractPackageLinks(r *labelResponse) []string {
	var urls []string
	for _, pkg := range r.Packages {
		urls = append(urls, hrefOf(pkg.LabelDownload), pkg.LabelURL)
	}
	return urls
}

func hrefOf(d *labelDownload) string {
	if d == nil {
		return ""
	}
	return d.Href
}

// extractLabelURLs applies every extraction strategy in order, dropping
// blanks and deduplicating while preserving first-seen order.
func extractLabelURLs(r *labelResponse) []string {
	if r == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var urls []string
	for _, extract := range labelURLExtractors {
		for _, raw := range extract(r) {
			u := strings.TrimSpace(raw)
			if u == "" {
				continue
			}
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			urls = append(urls, u)
		}
	}
	return urls
}
