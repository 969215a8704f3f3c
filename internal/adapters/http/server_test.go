package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	greenscreen "github.com/greenscreenhq/greenscreen"
	httpAdapter "github.com/greenscreenhq/greenscreen/internal/adapters/http"
	"github.com/greenscreenhq/greenscreen/internal/adapters/memory"
	"github.com/greenscreenhq/greenscreen/pkg/domain"
	"github.com/greenscreenhq/greenscreen/pkg/ports"
)

func seededStore() *memory.Store {
	return memory.NewStoreFromDefinitions(domain.ScreenDefinition{
		Name:   "add-customer",
		Option: "80",
		Fields: []domain.FieldConfig{
			{Name: "customer_id", MaxLength: 4, Required: true, Kind: domain.FieldDigits, TabsFilled: 1, TabsEmpty: 1},
		},
		Steps: []domain.NavigationStep{
			{Order: 1, Action: domain.ActionCommand, Value: "80"},
			{Order: 2, Action: domain.ActionFormFill, ScreenContains: "ADD CUSTOMER"},
		},
	})
}

func newTestHandler(t *testing.T, store *memory.Store, factory httpAdapter.SessionFactory) http.Handler {
	t.Helper()
	eng := greenscreen.New(
		greenscreen.WithSleeper(func(ctx context.Context, d time.Duration) {}),
	)
	return httpAdapter.NewHandler(httpAdapter.Config{
		Store:    store,
		Engine:   eng,
		Sessions: factory,
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, seededStore(), nil)
	rec := doJSON(t, h, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestListScreens(t *testing.T) {
	h := newTestHandler(t, seededStore(), nil)
	rec := doJSON(t, h, http.MethodGet, "/api/screens", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Screens []string `json:"screens"`
		Count   int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, []string{"add-customer"}, body.Screens)
}

func TestCreateAndGetScreen(t *testing.T) {
	h := newTestHandler(t, memory.NewStore(), nil)

	payload := map[string]any{
		"name": "update-customer",
		"fields": []map[string]any{
			{"name": "customer_id", "max_length": 4, "required": true, "kind": "digits", "tabs_filled": 1, "tabs_empty": 1},
		},
		"steps": []map[string]any{
			{"order": 1, "action": "command", "value": "81", "wait_seconds": 2},
		},
	}
	rec := doJSON(t, h, http.MethodPost, "/api/screens", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/screens/update-customer", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Name  string `json:"name"`
		Steps []struct {
			WaitSeconds int `json:"wait_seconds"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "update-customer", got.Name)
	require.Len(t, got.Steps, 1)
	assert.Equal(t, 2, got.Steps[0].WaitSeconds)
}

func TestCreateScreen_RequiresName(t *testing.T) {
	h := newTestHandler(t, memory.NewStore(), nil)
	rec := doJSON(t, h, http.MethodPost, "/api/screens", map[string]any{"option": "80"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetScreen_NotFound(t *testing.T) {
	h := newTestHandler(t, seededStore(), nil)
	rec := doJSON(t, h, http.MethodGet, "/api/screens/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteScreen(t *testing.T) {
	h := newTestHandler(t, seededStore(), nil)

	rec := doJSON(t, h, http.MethodDelete, "/api/screens/add-customer", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/screens/add-customer", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidateScreen(t *testing.T) {
	h := newTestHandler(t, seededStore(), nil)

	rec := doJSON(t, h, http.MethodPost, "/api/screens/add-customer/validate", map[string]any{
		"inputs": []map[string]string{{"field": "customer_id", "value": "59x"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Valid    bool     `json:"valid"`
		Messages []string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Valid)
	require.NotEmpty(t, body.Messages)
	assert.Contains(t, body.Messages[0], "only digits")
}

func TestProcessScreen_NoTransport(t *testing.T) {
	h := newTestHandler(t, seededStore(), nil)
	rec := doJSON(t, h, http.MethodPost, "/api/screens/add-customer/process", map[string]any{
		"inputs": []map[string]string{{"field": "customer_id", "value": "594"}},
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestProcessScreen_Success(t *testing.T) {
	factory := func(ctx context.Context) (ports.Session, func(), error) {
		sess := memory.NewSession(
			"MAIN MENU",
			"ADD CUSTOMER",
			"Record added successfully",
		)
		return sess, func() {}, nil
	}
	h := newTestHandler(t, seededStore(), factory)

	rec := doJSON(t, h, http.MethodPost, "/api/screens/add-customer/process", map[string]any{
		"inputs": []map[string]string{{"field": "customer_id", "value": "594"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		RunID    string   `json:"run_id"`
		Success  bool     `json:"success"`
		Messages []string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.RunID)
	assert.NotEmpty(t, body.Messages)
}

func TestProcessScreen_ValidationFailure(t *testing.T) {
	factory := func(ctx context.Context) (ports.Session, func(), error) {
		return memory.NewSession("MAIN MENU"), func() {}, nil
	}
	h := newTestHandler(t, seededStore(), factory)

	rec := doJSON(t, h, http.MethodPost, "/api/screens/add-customer/process", map[string]any{
		"inputs": []map[string]string{{"field": "customer_id", "value": "59x"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success  bool     `json:"success"`
		Messages []string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Messages, "field validation failed; flow not started")
}
