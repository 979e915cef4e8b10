package cgc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumyai/cgcfinder/pkg/model"
)

func TestFilterByBasePairRejectsWideGap(t *testing.T) {
	contig := makeContig("C", "CAZyme", "TC")
	contig.Genes[0].Start, contig.Genes[0].End = 100, 200
	contig.Genes[1].Start, contig.Genes[1].End = 2100, 2200

	clusters := Scanner{Mode: model.ModeTP, Distance: 0}.Scan(contig)
	require.Len(t, clusters, 1, "passes the gene count rule")

	assert.Empty(t, FilterByBasePair(clusters, 1000))
	assert.Len(t, FilterByBasePair(clusters, 1900), 1)
}

func TestFilterByBasePairKeepsOrderAndValues(t *testing.T) {
	a := makeContig("A", "CAZyme", "TC", "other", "other", "CAZyme", "TC")
	a.Genes[5].Start = a.Genes[4].End + 5000

	clusters := Scanner{Mode: model.ModeTP, Distance: 1}.Scan(a)
	require.Len(t, clusters, 2)

	got := FilterByBasePair(clusters, 1000)
	require.Len(t, got, 1)
	assert.Equal(t, clusters[0], got[0])
}

func TestFilterByBasePairIdempotent(t *testing.T) {
	contig := makeContig("C", "CAZyme", "TC", "other", "CAZyme", "TC", "other", "other", "TC", "CAZyme")
	contig.Genes[4].Start += 3000
	clusters := Scanner{Mode: model.ModeTP, Distance: 1}.Scan(contig)

	once := FilterByBasePair(clusters, 1500)
	twice := FilterByBasePair(once, 1500)

	assert.Equal(t, once, twice)
	assert.Less(t, len(once), len(clusters))
}
