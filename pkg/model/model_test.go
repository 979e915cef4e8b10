package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label string
		want  Category
	}{
		{"CAZyme", CategoryCAZyme},
		{"TC", CategoryTC},
		{"TF", CategoryTF},
		{"STP", CategorySTP},
		{"null", CategoryOther},
		{"cazyme", CategoryOther},
		{"", CategoryOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCategory(tt.label), tt.label)
	}
	assert.Equal(t, "null", CategoryOther.String())
}

func TestParseSignatureMode(t *testing.T) {
	for _, m := range AllModes {
		got, err := ParseSignatureMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseSignatureMode("tp+tc")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestCompositionIsValue(t *testing.T) {
	var c Composition
	d := c.Add(CategoryCAZyme).Add(CategoryTC).Add(CategoryOther)

	assert.Equal(t, 0, c.Total())
	assert.Equal(t, 2, d.Total())
	assert.Equal(t, 1, d.Count(CategoryTC))
	assert.Equal(t, 0, d.Count(CategoryOther))
}

func TestParseFeatureID(t *testing.T) {
	assert.Equal(t, "gene_0042", ParseFeatureID("ID=gene_0042;Name=xyl1"))
	assert.Equal(t, "abc", ParseFeatureID("DB=CAZy; ID=abc"))
	assert.Equal(t, "", ParseFeatureID("protein_id=WP_1;Name=x"))
	assert.Equal(t, "", ParseFeatureID(""))
}

func TestClusterGeometry(t *testing.T) {
	c := Cluster{
		Number: 3,
		Start:  4,
		End:    6,
		Genes: []ClusterGene{
			{Record: GeneRecord{Start: 100, End: 200}},
			{Record: GeneRecord{Start: 250, End: 300}},
			{Record: GeneRecord{Start: 1300, End: 1400}},
		},
	}

	assert.Equal(t, "CGC3", c.Label())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 100, c.StartBP())
	assert.Equal(t, 1400, c.EndBP())
	assert.Equal(t, []int{50, 1000}, c.Gaps())
}
