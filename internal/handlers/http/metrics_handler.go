// internal/handlers/http/metrics_handler.go
// Handler untuk metrics Prometheus format sederhana

package http

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

var (
	dashboardsBuilt atomic.Int64
	dataIssues      atomic.Int64
)

func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP app_up 1 if the app is up\n# TYPE app_up gauge\napp_up 1\n")
	fmt.Fprintf(w, "# HELP shopfloor_dashboards_built_total Dashboard summaries computed\n# TYPE shopfloor_dashboards_built_total counter\nshopfloor_dashboards_built_total %d\n", dashboardsBuilt.Load())
	fmt.Fprintf(w, "# HELP shopfloor_data_issues_total Malformed duration/time fields seen\n# TYPE shopfloor_data_issues_total counter\nshopfloor_data_issues_total %d\n", dataIssues.Load())
}
