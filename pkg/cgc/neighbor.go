package cgc

import "github.com/yumyai/cgcfinder/pkg/model"

// FindNeighbors counts the unimportant genes between genes[index] and the
// nearest important gene on each side. A side without one is model.NoNeighbor.
func FindNeighbors(genes []model.GeneRecord, index int, mode model.SignatureMode) model.Neighbors {
	n := model.Neighbors{Left: model.NoNeighbor, Right: model.NoNeighbor}

	for k := index - 1; k >= 0; k-- {
		if IsImportant(genes[k].Category, mode) {
			n.Left = index - k - 1
			break
		}
	}
	for l := index + 1; l < len(genes); l++ {
		if IsImportant(genes[l].Category, mode) {
			n.Right = l - index - 1
			break
		}
	}
	return n
}
