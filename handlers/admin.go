// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/stemkompas/auth"
	"github.com/danielhkuo/stemkompas/cliparse"
	"github.com/danielhkuo/stemkompas/middleware"
	"github.com/danielhkuo/stemkompas/models"
	"github.com/danielhkuo/stemkompas/tables"
)

type AdminHandler struct {
	cfg    cliparse.Config
	tables *tables.Store
}

func NewAdminHandler(cfg cliparse.Config, store *tables.Store) *AdminHandler {
	return &AdminHandler{cfg: cfg, tables: store}
}

// ReloadTables handles POST /admin/tables/reload
// Re-reads the tables file; requires the X-Admin-Key header
func (h *AdminHandler) ReloadTables(w http.ResponseWriter, r *http.Request) {
	adminKey := r.Header.Get("X-Admin-Key")
	if adminKey == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Key header is required")
		return
	}
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid admin key")
		return
	}

	if _, err := h.tables.Reload(); err != nil {
		slog.Error("tables reload failed", "error", err)
		middleware.JSONResponse(w, http.StatusUnprocessableEntity, models.ReloadTablesResponse{
			Reloaded: false,
			Message:  err.Error(),
		})
		return
	}

	slog.Info("tables reloaded", "path", h.cfg.TablesPath)
	middleware.JSONResponse(w, http.StatusOK, models.ReloadTablesResponse{
		Reloaded: true,
		Message:  "tables reloaded",
	})
}
