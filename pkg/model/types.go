package model

import (
	"strconv"
	"strings"
)

// GeneRecord is one annotation row.
type GeneRecord struct {
	ContigID   string   `json:"contig_id"`
	Category   Category `json:"-"`
	Label      string   `json:"category"`
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Strand     string   `json:"strand"`
	Attributes string   `json:"attributes"`
	FeatureID  string   `json:"feature_id"`
}

// Contig holds the genes of one contig in file order.
type Contig struct {
	ID    string
	Genes []GeneRecord
}

// Neighbors are the counts of unimportant genes between a gene and the nearest
// important gene on each side, NoNeighbor when none exists.
type Neighbors struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// ClusterGene is a gene inside a cluster with its positions stored at creation.
type ClusterGene struct {
	Record      GeneRecord `json:"record"`
	ContigIndex int        `json:"contig_index"`
	SpanIndex   int        `json:"span_index"`
	Important   bool       `json:"important"`
	InContig    Neighbors  `json:"in_contig"`
	InSpan      Neighbors  `json:"in_span"`
}

// Cluster is an accepted run of genes, Start and End are inclusive contig indices.
type Cluster struct {
	ContigID    string        `json:"contig_id"`
	Number      int           `json:"number"`
	Start       int           `json:"start_index"`
	End         int           `json:"end_index"`
	Composition Composition   `json:"composition"`
	Genes       []ClusterGene `json:"genes"`
}

func (c Cluster) Label() string {
	return ClusterLabelPrefix + strconv.Itoa(c.Number)
}

// Len is the number of genes in the span.
func (c Cluster) Len() int {
	return c.End - c.Start + 1
}

// StartBP and EndBP are the outer genomic coordinates of the cluster.
func (c Cluster) StartBP() int {
	if len(c.Genes) == 0 {
		return 0
	}
	return c.Genes[0].Record.Start
}

func (c Cluster) EndBP() int {
	if len(c.Genes) == 0 {
		return 0
	}
	return c.Genes[len(c.Genes)-1].Record.End
}

// Gaps returns start(i+1) - end(i) for every consecutive gene pair.
func (c Cluster) Gaps() []int {
	if len(c.Genes) < 2 {
		return nil
	}
	gaps := make([]int, 0, len(c.Genes)-1)
	for i := 0; i < len(c.Genes)-1; i++ {
		gaps = append(gaps, c.Genes[i+1].Record.Start-c.Genes[i].Record.End)
	}
	return gaps
}

// ParseFeatureID extracts the value of the ID key from a key=value;... string.
func ParseFeatureID(attributes string) string {
	for _, note := range strings.Split(attributes, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(note), "=")
		if ok && key == "ID" {
			return value
		}
	}
	return ""
}
