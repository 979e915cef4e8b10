package model

import "time"

// Run describes one stored invocation of the finder.
type Run struct {
	RunID     string    `json:"run_id"`
	Input     string    `json:"input"`
	Mode      string    `json:"mode"`
	Distance  int       `json:"distance"`
	BasePair  int       `json:"base_pair"`
	Contigs   int       `json:"contigs"`
	Genes     int       `json:"genes"`
	Clusters  int       `json:"clusters"`
	Filtered  int       `json:"filtered"`
	CreatedAt time.Time `json:"created_at"`
}
