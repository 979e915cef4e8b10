package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/yumyai/cgcfinder/logger"
	ggdb "github.com/yumyai/cgcfinder/pkg/db"
	"github.com/yumyai/cgcfinder/pkg/model"
	"github.com/yumyai/cgcfinder/pkg/render"
	"go.uber.org/zap"
)

type ClustersResponse struct {
	Run      *model.Run      `json:"run"`
	Filtered bool            `json:"filtered"`
	Clusters []model.Cluster `json:"clusters"`
}

// ListRunsAPI lists every stored run as JSON.
func (dbctx *DBContext) ListRunsAPI(w http.ResponseWriter, r *http.Request) {

	runs, err := dbctx.Store.ListRuns(r.Context())
	if err != nil {
		logger.Error("Listing runs failed", zap.Error(err))
		http.Error(w, "Cannot list runs", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, runs)
}

// RunClustersAPI returns the clusters of one run, ?filtered=true keeps only the
// clusters that passed the base pair filter.
func (dbctx *DBContext) RunClustersAPI(w http.ResponseWriter, r *http.Request) {

	run, clusters, filtered, ok := dbctx.loadRun(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, ClustersResponse{
		Run:      run,
		Filtered: filtered,
		Clusters: clusters,
	})
}

// RunPage renders one run as HTML.
func (dbctx *DBContext) RunPage(w http.ResponseWriter, r *http.Request) {

	run, clusters, filtered, ok := dbctx.loadRun(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.RenderRunPage(w, run, clusters, filtered); err != nil {
		logger.Error("Rendering run page failed", zap.String("run_id", run.RunID), zap.Error(err))
	}
}

// loadRun reads the run named in the path and writes the error response itself
// when it cannot.
func (dbctx *DBContext) loadRun(w http.ResponseWriter, r *http.Request) (*model.Run, []model.Cluster, bool, bool) {

	run_id := r.PathValue("run_id")

	filtered := false
	if raw := r.URL.Query().Get("filtered"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "filtered need to be bool-like string", http.StatusBadRequest)
			return nil, nil, false, false
		}
		filtered = b
	}

	logger.Debug("Loading run", zap.String("run_id", run_id), zap.Bool("filtered", filtered))

	run, err := dbctx.Store.GetRun(r.Context(), run_id)
	if errors.Is(err, ggdb.ErrRunNotFound) {
		http.Error(w, "Run not found", http.StatusNotFound)
		return nil, nil, false, false
	}
	if err != nil {
		logger.Error("Loading run failed", zap.String("run_id", run_id), zap.Error(err))
		http.Error(w, "Cannot load run", http.StatusInternalServerError)
		return nil, nil, false, false
	}

	clusters, err := dbctx.Store.GetClusters(r.Context(), run_id, filtered)
	if err != nil {
		logger.Error("Loading clusters failed", zap.String("run_id", run_id), zap.Error(err))
		http.Error(w, "Cannot load clusters", http.StatusInternalServerError)
		return nil, nil, false, false
	}

	return run, clusters, filtered, true
}
