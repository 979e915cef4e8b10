package model

const (
	// NullField is printed wherever a value does not apply to a row.
	NullField = "null"

	// BlockSeparator terminates every cluster block in the output streams.
	BlockSeparator = "+++++"

	// ClusterLabelPrefix prefixes the per-contig cluster number, e.g. CGC3.
	ClusterLabelPrefix = "CGC"

	// NoNeighbor marks a side on which no important gene was found.
	NoNeighbor = -1
)
