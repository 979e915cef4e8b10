package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yumyai/cgcfinder/logger"
	"github.com/yumyai/cgcfinder/pkg/cgc"
	"github.com/yumyai/cgcfinder/pkg/model"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

var ErrRunNotFound = errors.New("run not found")

const schema = `
	CREATE TABLE IF NOT EXISTS cgc_runs (
		run_id     TEXT PRIMARY KEY,
		input      TEXT NOT NULL,
		mode       TEXT NOT NULL,
		distance   INTEGER NOT NULL,
		base_pair  INTEGER NOT NULL,
		contigs    INTEGER NOT NULL,
		genes      INTEGER NOT NULL,
		clusters   INTEGER NOT NULL,
		filtered   INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS cgc_clusters (
		run_id        TEXT NOT NULL REFERENCES cgc_runs(run_id),
		seq           INTEGER NOT NULL,
		contig_id     TEXT NOT NULL,
		cluster_no    INTEGER NOT NULL,
		start_index   INTEGER NOT NULL,
		end_index     INTEGER NOT NULL,
		cazyme        INTEGER NOT NULL,
		tc            INTEGER NOT NULL,
		tf            INTEGER NOT NULL,
		stp           INTEGER NOT NULL,
		passed_filter INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq)
	);
	CREATE TABLE IF NOT EXISTS cgc_genes (
		run_id       TEXT NOT NULL,
		seq          INTEGER NOT NULL,
		span_index   INTEGER NOT NULL,
		contig_index INTEGER NOT NULL,
		category     TEXT NOT NULL,
		important    INTEGER NOT NULL,
		feature_id   TEXT NOT NULL,
		start_bp     INTEGER NOT NULL,
		end_bp       INTEGER NOT NULL,
		strand       TEXT NOT NULL,
		attributes   TEXT NOT NULL,
		contig_left  INTEGER NOT NULL,
		contig_right INTEGER NOT NULL,
		span_left    INTEGER NOT NULL,
		span_right   INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq, span_index)
	);
`

// ClusterDB stores finder runs in a sqlite database.
type ClusterDB struct {
	DB *sql.DB
}

// OpenClusterDB opens (creating if needed) the sqlite database at path.
func OpenClusterDB(path string) (*ClusterDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cluster db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cluster db schema: %w", err)
	}

	return &ClusterDB{DB: db}, nil
}

func (cdb *ClusterDB) Close() error {
	return cdb.DB.Close()
}

// SaveRun stores run and every cluster of res under a new run id, which is
// also written back into run.
func (cdb *ClusterDB) SaveRun(ctx context.Context, run *model.Run, res cgc.Result) (string, error) {

	run.RunID = uuid.NewString()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	run.Contigs = res.Contigs
	run.Genes = res.Genes
	run.Clusters = len(res.Clusters)
	run.Filtered = len(res.Filtered)

	tx, err := cdb.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("fail to begin tx %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO cgc_runs (run_id, input, mode, distance, base_pair, contigs, genes, clusters, filtered, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Input, run.Mode, run.Distance, run.BasePair,
		run.Contigs, run.Genes, run.Clusters, run.Filtered,
		run.CreatedAt.Format(time.RFC3339Nano)); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	clusterStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cgc_clusters (run_id, seq, contig_id, cluster_no, start_index, end_index, cazyme, tc, tf, stp, passed_filter)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare cluster insert: %w", err)
	}
	defer clusterStmt.Close()

	geneStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cgc_genes (run_id, seq, span_index, contig_index, category, important, feature_id,
			start_bp, end_bp, strand, attributes, contig_left, contig_right, span_left, span_right)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare gene insert: %w", err)
	}
	defer geneStmt.Close()

	passed := make(map[clusterKey]bool, len(res.Filtered))
	for _, c := range res.Filtered {
		passed[keyOf(c)] = true
	}

	for seq, c := range res.Clusters {
		comp := c.Composition
		if _, err := clusterStmt.ExecContext(ctx, run.RunID, seq, c.ContigID, c.Number, c.Start, c.End,
			comp.CAZyme, comp.TC, comp.TF, comp.STP, passed[keyOf(c)]); err != nil {
			return "", fmt.Errorf("insert cluster %s %s: %w", c.ContigID, c.Label(), err)
		}

		for _, g := range c.Genes {
			r := g.Record
			if _, err := geneStmt.ExecContext(ctx, run.RunID, seq, g.SpanIndex, g.ContigIndex, r.Label, g.Important,
				r.FeatureID, r.Start, r.End, r.Strand, r.Attributes,
				g.InContig.Left, g.InContig.Right, g.InSpan.Left, g.InSpan.Right); err != nil {
				return "", fmt.Errorf("insert gene %d of %s %s: %w", g.SpanIndex, c.ContigID, c.Label(), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}

	logger.Info("Run stored",
		zap.String("run_id", run.RunID),
		zap.Int("clusters", run.Clusters))
	return run.RunID, nil
}

type clusterKey struct {
	contig string
	number int
}

func keyOf(c model.Cluster) clusterKey {
	return clusterKey{contig: c.ContigID, number: c.Number}
}

const runColumns = `run_id, input, mode, distance, base_pair, contigs, genes, clusters, filtered, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*model.Run, error) {
	var r model.Run
	var created string
	if err := row.Scan(&r.RunID, &r.Input, &r.Mode, &r.Distance, &r.BasePair,
		&r.Contigs, &r.Genes, &r.Clusters, &r.Filtered, &created); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("run %s: bad created_at %q: %w", r.RunID, created, err)
	}
	r.CreatedAt = t
	return &r, nil
}

// GetRun returns the run with the given id or ErrRunNotFound.
func (cdb *ClusterDB) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	row := cdb.DB.QueryRowContext(ctx, `SELECT `+runColumns+` FROM cgc_runs WHERE run_id = ?`, runID)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns every stored run, oldest first.
func (cdb *ClusterDB) ListRuns(ctx context.Context) ([]model.Run, error) {
	rows, err := cdb.DB.QueryContext(ctx, `SELECT `+runColumns+` FROM cgc_runs ORDER BY created_at, run_id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]model.Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// GetClusters returns the clusters of a run in their original order, only those
// that passed the base pair filter when filteredOnly is set.
func (cdb *ClusterDB) GetClusters(ctx context.Context, runID string, filteredOnly bool) ([]model.Cluster, error) {
	if _, err := cdb.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := cdb.DB.QueryContext(ctx, `
		SELECT seq, contig_id, cluster_no, start_index, end_index, cazyme, tc, tf, stp
		FROM cgc_clusters
		WHERE run_id = ? AND (passed_filter = 1 OR ? = 0)
		ORDER BY seq`, runID, filteredOnly)
	if err != nil {
		return nil, fmt.Errorf("query clusters: %w", err)
	}
	defer rows.Close()

	clusters := make([]model.Cluster, 0)
	bySeq := make(map[int]int)
	for rows.Next() {
		var seq int
		var c model.Cluster
		if err := rows.Scan(&seq, &c.ContigID, &c.Number, &c.Start, &c.End,
			&c.Composition.CAZyme, &c.Composition.TC, &c.Composition.TF, &c.Composition.STP); err != nil {
			return nil, fmt.Errorf("scan cluster: %w", err)
		}
		bySeq[seq] = len(clusters)
		clusters = append(clusters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query clusters: %w", err)
	}

	if err := cdb.attachGenes(ctx, runID, clusters, bySeq); err != nil {
		return nil, err
	}
	return clusters, nil
}

func (cdb *ClusterDB) attachGenes(ctx context.Context, runID string, clusters []model.Cluster, bySeq map[int]int) error {
	rows, err := cdb.DB.QueryContext(ctx, `
		SELECT seq, span_index, contig_index, category, important, feature_id, start_bp, end_bp, strand, attributes,
			contig_left, contig_right, span_left, span_right
		FROM cgc_genes
		WHERE run_id = ?
		ORDER BY seq, span_index`, runID)
	if err != nil {
		return fmt.Errorf("query genes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var seq int
		var g model.ClusterGene
		r := &g.Record
		if err := rows.Scan(&seq, &g.SpanIndex, &g.ContigIndex, &r.Label, &g.Important, &r.FeatureID,
			&r.Start, &r.End, &r.Strand, &r.Attributes,
			&g.InContig.Left, &g.InContig.Right, &g.InSpan.Left, &g.InSpan.Right); err != nil {
			return fmt.Errorf("scan gene: %w", err)
		}

		i, ok := bySeq[seq]
		if !ok {
			continue // cluster filtered out of this query
		}
		r.ContigID = clusters[i].ContigID
		r.Category = model.ParseCategory(r.Label)
		clusters[i].Genes = append(clusters[i].Genes, g)
	}
	return rows.Err()
}
