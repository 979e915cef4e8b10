// Render the tab delimited cluster tables

package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yumyai/cgcfinder/logger"
	"github.com/yumyai/cgcfinder/pkg/cgc"
	"github.com/yumyai/cgcfinder/pkg/model"
	"go.uber.org/zap"
)

// Stream selects how rows of a cluster table are indexed.
type Stream int

const (
	// StreamUnfiltered numbers genes by contig position and measures
	// neighbor gaps over the whole contig.
	StreamUnfiltered Stream = iota

	// StreamFiltered numbers genes by position within the cluster and measures
	// neighbor gaps within the cluster only.
	StreamFiltered
)

func (s Stream) String() string {
	switch s {
	case StreamUnfiltered:
		return "unfiltered"
	case StreamFiltered:
		return "filtered"
	default:
		return "unknown"
	}
}

// WriteClusters writes one row per gene and a separator line after each cluster.
func WriteClusters(w io.Writer, clusters []model.Cluster, stream Stream) error {
	bw := bufio.NewWriter(w)

	for i := range clusters {
		c := &clusters[i]
		for _, g := range c.Genes {
			if _, err := bw.WriteString(geneRow(c, g, stream)); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(model.BlockSeparator + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func geneRow(c *model.Cluster, g model.ClusterGene, stream Stream) string {
	index, near := g.ContigIndex, g.InContig
	if stream == StreamFiltered {
		index, near = g.SpanIndex, g.InSpan
	}

	category, right, left, feature := model.NullField, model.NullField, model.NullField, ""
	if g.Important {
		category = g.Record.Category.String()
		right = formatGap(near.Right)
		left = formatGap(near.Left)
		feature = g.Record.FeatureID
	}

	return strings.Join([]string{
		strconv.Itoa(index),
		category,
		right,
		left,
		c.Label(),
		g.Record.ContigID,
		strconv.Itoa(g.Record.Start),
		strconv.Itoa(g.Record.End),
		feature,
		g.Record.Strand,
		g.Record.Attributes,
	}, "\t")
}

func formatGap(n int) string {
	if n == model.NoNeighbor {
		return model.NullField
	}
	return strconv.Itoa(n)
}

// WriteClusterFile creates (or truncates) path and writes clusters to it.
func WriteClusterFile(path string, clusters []model.Cluster, stream Stream) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s output: %w", stream, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := WriteClusters(f, clusters, stream); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Info("Clusters written to output",
		zap.String("stream", stream.String()),
		zap.String("file", path),
		zap.Int("clusters", len(clusters)))
	return nil
}

// WriteResult writes the unfiltered and filtered tables of a run.
func WriteResult(output, filteredOutput string, res cgc.Result) error {
	if err := WriteClusterFile(output, res.Clusters, StreamUnfiltered); err != nil {
		return err
	}
	return WriteClusterFile(filteredOutput, res.Filtered, StreamFiltered)
}
