package http

import (
	"net/http"
)

const buildCommitHeader = "X-Build-Commit"

// getServerVersion answers with the version as plain text so probes can
// compare it without parsing JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService

	build := info.GetBuildInfo(r.Context())
	if build.Commit() != "" {
		w.Header().Set(buildCommitHeader, build.Commit())
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(info.GetAppVersion(r.Context())))
}
