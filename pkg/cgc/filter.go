package cgc

import "github.com/yumyai/cgcfinder/pkg/model"

// FilterByBasePair keeps the clusters whose consecutive genes are never more
// than threshold base pairs apart (start of the next minus end of the previous).
// Clusters are kept or dropped whole and order is preserved.
func FilterByBasePair(clusters []model.Cluster, threshold int) []model.Cluster {
	kept := make([]model.Cluster, 0, len(clusters))
	for _, c := range clusters {
		if withinBasePair(&c, threshold) {
			kept = append(kept, c)
		}
	}
	return kept
}

func withinBasePair(c *model.Cluster, threshold int) bool {
	for _, gap := range c.Gaps() {
		if gap > threshold {
			return false
		}
	}
	return true
}
