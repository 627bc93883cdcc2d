package http

import (
	"net/http"

	"github.com/MKhiriev/ergo/internal/utils"
)

const rootBanner = "Ergo api running here"

// root godoc
// @Summary  Liveness banner
// @Tags     ops
// @Produce  plain
// @Success  200  {string}  string  "Ergo api running here"
// @Router   / [get]
func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rootBanner))
}

// getServerVersion godoc
// @Summary  Build information
// @Tags     ops
// @Produce  json
// @Success  200  {object}  models.AppBuildInfo
// @Router   /api/version [get]
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
