package cgc

import (
	"fmt"

	"github.com/yumyai/cgcfinder/pkg/model"
)

// makeContig builds a contig from category labels; gene i spans
// [1000*i+1, 1000*i+800] so consecutive genes are 201 bp apart.
func makeContig(id string, labels ...string) model.Contig {
	contig := model.Contig{ID: id}
	for i, label := range labels {
		contig.Genes = append(contig.Genes, model.GeneRecord{
			ContigID:   id,
			Category:   model.ParseCategory(label),
			Label:      label,
			Start:      1000*i + 1,
			End:        1000*i + 800,
			Strand:     "+",
			Attributes: fmt.Sprintf("ID=%s_%d", id, i+1),
			FeatureID:  fmt.Sprintf("%s_%d", id, i+1),
		})
	}
	return contig
}
