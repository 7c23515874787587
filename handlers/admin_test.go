// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/stemkompas/auth"
	"github.com/danielhkuo/stemkompas/models"
	"github.com/danielhkuo/stemkompas/tables"
	"github.com/danielhkuo/stemkompas/testutil"
)

func TestReloadTables(t *testing.T) {
	cfg := testutil.GetTestConfig()
	adminKey := auth.GenerateAdminKey(cfg.AdminKeySalt)

	path := filepath.Join(t.TempDir(), "tables.toml")
	if err := os.WriteFile(path, []byte("[scoring]\nlambda = 0.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.TablesPath = path

	store, err := tables.NewStore(path)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	handler := NewAdminHandler(cfg, store)

	t.Run("missing admin key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/admin/tables/reload", nil)
		w := httptest.NewRecorder()
		handler.ReloadTables(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("wrong admin key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/admin/tables/reload", nil)
		req.Header.Set("X-Admin-Key", "not-the-key")
		w := httptest.NewRecorder()
		handler.ReloadTables(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("valid key reloads edits", func(t *testing.T) {
		if err := os.WriteFile(path, []byte("[scoring]\nlambda = 0.2\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		req := httptest.NewRequest("POST", "/admin/tables/reload", nil)
		req.Header.Set("X-Admin-Key", adminKey)
		w := httptest.NewRecorder()
		handler.ReloadTables(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ReloadTablesResponse
		testutil.AssertJSON(t, w, &resp)
		if !resp.Reloaded {
			t.Error("Expected reloaded=true")
		}
		if got := store.Current().Scoring.Lambda; got != 0.2 {
			t.Errorf("Expected lambda 0.2 after reload, got %v", got)
		}
	})

	t.Run("invalid file keeps current tables", func(t *testing.T) {
		if err := os.WriteFile(path, []byte("[scoring]\nlambda = 7\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		req := httptest.NewRequest("POST", "/admin/tables/reload", nil)
		req.Header.Set("X-Admin-Key", adminKey)
		w := httptest.NewRecorder()
		handler.ReloadTables(w, req)

		testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)

		if got := store.Current().Scoring.Lambda; got != 0.2 {
			t.Errorf("Expected lambda to stay 0.2, got %v", got)
		}
	})
}
