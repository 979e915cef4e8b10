package cgc

import "github.com/yumyai/cgcfinder/pkg/model"

// Scanner walks one contig and cuts it into clusters.
type Scanner struct {
	Mode model.SignatureMode

	// Distance is the number of consecutive unimportant genes tolerated
	// between two important genes of the same cluster.
	Distance int
}

// candidate is the outcome of extending a run from an important seed gene.
type candidate struct {
	start       int
	last        int // last important gene
	exit        int // index at which the run was closed
	composition model.Composition
}

// Scan returns the clusters of contig in order, numbered from 1.
//
// The last gene of a contig is never used as a seed, so a lone important gene in
// that position starts nothing. Genes consumed by a closed run are not seeds
// either; scanning resumes where the run was closed.
func (s Scanner) Scan(contig model.Contig) []model.Cluster {
	genes := contig.Genes
	var clusters []model.Cluster

	i := 0
	for i < len(genes)-1 {
		if !IsImportant(genes[i].Category, s.Mode) {
			i++
			continue
		}

		cand := s.extend(genes, i)
		if IsSatisfied(cand.composition, s.Mode) {
			clusters = append(clusters, s.newCluster(contig, cand, len(clusters)+1))
		}
		i = cand.exit
	}

	return clusters
}

// extend grows a run from the important gene at start until the gap tolerance is
// exceeded or the contig ends. start must be below len(genes)-1.
func (s Scanner) extend(genes []model.GeneRecord, start int) candidate {
	cand := candidate{
		start:       start,
		last:        start,
		exit:        start,
		composition: model.Composition{}.Add(genes[start].Category),
	}

	gap := 0
	for cand.exit < len(genes)-1 {
		cand.exit++
		gene := genes[cand.exit]
		if IsImportant(gene.Category, s.Mode) {
			cand.composition = cand.composition.Add(gene.Category)
			cand.last = cand.exit
			gap = 0
		} else {
			gap++
		}

		if gap > s.Distance {
			break
		}
	}
	return cand
}

func (s Scanner) newCluster(contig model.Contig, cand candidate, number int) model.Cluster {
	span := contig.Genes[cand.start : cand.last+1]

	cluster := model.Cluster{
		ContigID:    contig.ID,
		Number:      number,
		Start:       cand.start,
		End:         cand.last,
		Composition: cand.composition,
		Genes:       make([]model.ClusterGene, 0, len(span)),
	}

	none := model.Neighbors{Left: model.NoNeighbor, Right: model.NoNeighbor}
	for offset, record := range span {
		gene := model.ClusterGene{
			Record:      record,
			ContigIndex: cand.start + offset,
			SpanIndex:   offset,
			Important:   IsImportant(record.Category, s.Mode),
			InContig:    none,
			InSpan:      none,
		}
		if gene.Important {
			gene.InContig = FindNeighbors(contig.Genes, gene.ContigIndex, s.Mode)
			gene.InSpan = FindNeighbors(span, offset, s.Mode)
		}
		cluster.Genes = append(cluster.Genes, gene)
	}
	return cluster
}
