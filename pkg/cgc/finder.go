package cgc

import (
	"github.com/yumyai/cgcfinder/logger"
	"github.com/yumyai/cgcfinder/pkg/model"
	"go.uber.org/zap"
)

// Finder runs the cluster scan over every contig and applies the base pair filter.
type Finder struct {
	Mode     model.SignatureMode
	Distance int
	BasePair int
}

// Result of one run. Clusters holds every accepted cluster in contig order,
// Filtered the subset that passed the base pair filter.
type Result struct {
	Clusters []model.Cluster
	Filtered []model.Cluster
	Contigs  int
	Genes    int
}

func (f Finder) Find(contigs []model.Contig) Result {
	scanner := Scanner{Mode: f.Mode, Distance: f.Distance}

	var res Result
	for _, contig := range contigs {
		res.Contigs++
		res.Genes += len(contig.Genes)

		for _, c := range scanner.Scan(contig) {
			logger.Debug("Cluster found",
				zap.String("contig", c.ContigID),
				zap.String("cluster", c.Label()),
				zap.Int("start", c.Start),
				zap.Int("end", c.End))
			res.Clusters = append(res.Clusters, c)
		}
	}

	res.Filtered = FilterByBasePair(res.Clusters, f.BasePair)

	logger.Info("Cluster search completed",
		zap.Stringer("mode", f.Mode),
		zap.Int("distance", f.Distance),
		zap.Int("base_pair", f.BasePair),
		zap.Int("contigs", res.Contigs),
		zap.Int("clusters", len(res.Clusters)),
		zap.Int("filtered", len(res.Filtered)))

	return res
}
