// Package stats summarises a finder result.
package stats

import (
	"github.com/yumyai/cgcfinder/pkg/cgc"
	"github.com/yumyai/cgcfinder/pkg/model"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of the clusters of one run.
type Summary struct {
	Contigs  int `json:"contigs"`
	Genes    int `json:"genes"`
	Clusters int `json:"clusters"`
	Filtered int `json:"filtered"`

	MeanGenes   float64 `json:"mean_genes"`
	StdDevGenes float64 `json:"stddev_genes"`
	MeanSpanBP  float64 `json:"mean_span_bp"`
	StdDevSpan  float64 `json:"stddev_span_bp"`
	MaxGapBP    int     `json:"max_gap_bp"`
}

// Summarize computes the summary over the unfiltered clusters. Spreads are zero
// when fewer than two clusters exist.
func Summarize(res cgc.Result) Summary {
	s := Summary{
		Contigs:  res.Contigs,
		Genes:    res.Genes,
		Clusters: len(res.Clusters),
		Filtered: len(res.Filtered),
	}
	if len(res.Clusters) == 0 {
		return s
	}

	genes := GeneCounts(res.Clusters)
	spans := make([]float64, 0, len(res.Clusters))
	for _, c := range res.Clusters {
		spans = append(spans, float64(c.EndBP()-c.StartBP()+1))
		for _, gap := range c.Gaps() {
			if gap > s.MaxGapBP {
				s.MaxGapBP = gap
			}
		}
	}

	s.MeanGenes = stat.Mean(genes, nil)
	s.MeanSpanBP = stat.Mean(spans, nil)
	if len(res.Clusters) > 1 {
		s.StdDevGenes = stat.StdDev(genes, nil)
		s.StdDevSpan = stat.StdDev(spans, nil)
	}
	return s
}

// GeneCounts returns the number of genes of each cluster.
func GeneCounts(clusters []model.Cluster) []float64 {
	counts := make([]float64, 0, len(clusters))
	for _, c := range clusters {
		counts = append(counts, float64(len(c.Genes)))
	}
	return counts
}
