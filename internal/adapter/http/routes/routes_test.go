package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"palettepad/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:               8080,
		Backend:            config.BackendMemory,
		PaymentGatewayMock: true,
		DefaultVATRate:     24,
		LogLevel:           "info",
	}
	h, cleanup, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return NewRouter(h)
}

func call(t *testing.T, app http.Handler, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	if out != nil && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestPing(t *testing.T) {
	app := newTestApp(t)
	var got map[string]string
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/v1/ping", nil, &got))
	assert.Equal(t, "pong", got["message"])
}

func TestTrackerFlow(t *testing.T) {
	app := newTestApp(t)

	var client struct {
		ID string `json:"id"`
	}
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/v1/clients", map[string]any{"name": "Maria"}, &client))

	var offer struct {
		ID       string `json:"id"`
		Currency string `json:"currency"`
	}
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/v1/offers",
		map[string]any{"client_id": client.ID, "title": "Facade", "amount": 1000}, &offer))
	assert.Equal(t, "EUR", offer.Currency)

	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/v1/payments",
		map[string]any{"client_id": client.ID, "offer_id": offer.ID, "amount": 250, "method": "bank"}, nil))

	var totals struct {
		Offered     float64 `json:"offered"`
		Paid        float64 `json:"paid"`
		Outstanding float64 `json:"outstanding"`
	}
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/v1/clients/"+client.ID+"/totals", nil, &totals))
	assert.Equal(t, 1000.0, totals.Offered)
	assert.Equal(t, 250.0, totals.Paid)
	assert.Equal(t, 750.0, totals.Outstanding)

	require.Equal(t, http.StatusNoContent, call(t, app, http.MethodDelete, "/v1/clients/"+client.ID, nil, nil))

	var offers, payments []map[string]any
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/v1/offers?client_id="+client.ID, nil, &offers))
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/v1/payments?client_id="+client.ID, nil, &payments))
	assert.Empty(t, offers)
	assert.Empty(t, payments)
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodGet, "/v1/clients/"+client.ID, nil, nil))
}

func TestBuilderFlow(t *testing.T) {
	app := newTestApp(t)

	var session struct {
		ID string `json:"id"`
	}
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/v1/builder/sessions", nil, &session))

	var parsed struct {
		Added   []map[string]any `json:"added"`
		Pending []struct {
			ID string `json:"id"`
		} `json:"pending"`
	}
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/v1/builder/sessions/"+session.ID+"/parse",
		map[string]any{"area": "exterior", "sub_area": "walls", "keywords": "τρίψιμο αστάρι χρώμα"}, &parsed))
	require.Len(t, parsed.Added, 2)
	require.Len(t, parsed.Pending, 1)

	var view struct {
		Lines  []map[string]any `json:"lines"`
		Totals struct {
			Subtotal float64 `json:"subtotal"`
			Total    float64 `json:"total"`
		} `json:"totals"`
	}
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost,
		"/v1/builder/sessions/"+session.ID+"/choices/"+parsed.Pending[0].ID, map[string]any{"coats": 2}, &view))
	assert.Len(t, view.Lines, 3)

	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPost, "/v1/builder/sessions/"+session.ID+"/save", nil, nil))

	require.Equal(t, http.StatusOK, call(t, app, http.MethodPut, "/v1/builder/sessions/"+session.ID+"/header",
		map[string]any{"customer": "Νίκος", "project": "Κηφισιά"}, nil))

	var saved struct {
		ID     string  `json:"id"`
		Status string  `json:"status"`
		Total  float64 `json:"total"`
	}
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/v1/builder/sessions/"+session.ID+"/save", nil, &saved))
	assert.Equal(t, "pending", saved.Status)
	assert.Equal(t, view.Totals.Total, saved.Total)

	var list []map[string]any
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/v1/saved-offers", nil, &list))
	assert.Len(t, list, 1)

	assert.Equal(t, http.StatusOK, call(t, app, http.MethodPatch, "/v1/saved-offers/"+saved.ID+"/accept", nil, nil))
	assert.Equal(t, http.StatusConflict, call(t, app, http.MethodPatch, "/v1/saved-offers/"+saved.ID+"/accept", nil, nil))

	req := httptest.NewRequest(http.MethodGet, "/v1/builder/sessions/"+session.ID+"/export.docx", nil)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []byte("PK"), w.Body.Bytes()[:2])

	assert.Equal(t, http.StatusNoContent, call(t, app, http.MethodDelete, "/v1/builder/sessions/"+session.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodGet, "/v1/builder/sessions/"+session.ID, nil, nil))
}
