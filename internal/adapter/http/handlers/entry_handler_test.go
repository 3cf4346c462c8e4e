package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"palettepad/internal/adapter/http/handlers/mocks"
	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestEntryHandler_CreateEntry(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEntryUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/entries", NewEntryHandler(uc).CreateEntry)

		w := performRequest(r, http.MethodPost, "/v1/entries", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEntryUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/entries", NewEntryHandler(uc).CreateEntry)

		uc.EXPECT().Add(gomock.Any(), gomock.Any()).Return(entities.Entry{}, usecase.ErrInvalidEntryName)

		w := performRequest(r, http.MethodPost, "/v1/entries", `{"name":" ","palette":"NCS","code":"S 0502-Y"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "INVALID_REQUEST") {
			t.Fatalf("expected INVALID_REQUEST code, got %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEntryUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/entries", NewEntryHandler(uc).CreateEntry)

		uc.EXPECT().Add(gomock.Any(), usecase.NewEntry{When: "2026-03-01", Name: "Kitchen", Palette: "NCS", Code: "S 0502-Y"}).
			Return(entities.Entry{ID: "en_1", When: "2026-03-01", Name: "Kitchen", Palette: "NCS", Code: "S 0502-Y"}, nil)

		w := performRequest(r, http.MethodPost, "/v1/entries", `{"when":"2026-03-01","name":"Kitchen","palette":"NCS","code":"S 0502-Y"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["id"] != "en_1" {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestEntryHandler_ExportEntriesCSV(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEntryUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/entries/export.csv", NewEntryHandler(uc).ExportEntriesCSV)

		uc.EXPECT().ExportCSV(gomock.Any()).Return(nil, usecase.ErrNothingToExport)

		w := performRequest(r, http.MethodGet, "/v1/entries/export.csv", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "NOTHING_TO_EXPORT") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEntryUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/entries/export.csv", NewEntryHandler(uc).ExportEntriesCSV)

		csv := []byte("when,name,palette,code\n2026-03-01,Kitchen,NCS,S 0502-Y\n")
		uc.EXPECT().ExportCSV(gomock.Any()).Return(csv, nil)

		w := performRequest(r, http.MethodGet, "/v1/entries/export.csv", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Fatalf("unexpected content type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, usecase.EntriesCSVFilename) {
			t.Fatalf("unexpected content disposition %q", cd)
		}
		if w.Body.String() != string(csv) {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})
}

func TestEntryHandler_DeleteAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEntryUseCase(ctrl)
	h := NewEntryHandler(uc)
	r := newTestRouter()
	r.DELETE("/v1/entries/:id", h.DeleteEntry)
	r.DELETE("/v1/entries", h.ClearEntries)

	uc.EXPECT().Delete(gomock.Any(), "en_1").Return(nil)
	uc.EXPECT().Clear(gomock.Any()).Return(errors.New("boom"))

	if w := performRequest(r, http.MethodDelete, "/v1/entries/en_1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := performRequest(r, http.MethodDelete, "/v1/entries", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
