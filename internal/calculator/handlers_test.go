package calculator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"separator-calculator/internal/observability"
	"separator-calculator/internal/testutil"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestHandler(t *testing.T) (http.Handler, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zap.InfoLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = oldLogger })

	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing metrics: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r)
	return r, logs
}

func TestTwoPhaseFieldsListsSchema(t *testing.T) {
	h, _ := newTestHandler(t)

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/separator/two-phase", nil), h)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp struct {
		Calculator string `json:"calculator"`
		Steps      int    `json:"steps"`
		Fields     []struct {
			Name    string  `json:"name"`
			Unit    string  `json:"unit"`
			Default float64 `json:"default"`
		} `json:"fields"`
	}
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.Calculator != "two-phase" || resp.Steps != 6 || len(resp.Fields) != 8 {
		t.Fatalf("unexpected schema response: %+v", resp)
	}
	if f := resp.Fields[0]; f.Name != "gasFlowRate" || f.Unit != "MMscfd" || f.Default != 10 {
		t.Fatalf("unexpected first field: %+v", f)
	}
}

func TestThreePhaseComputeReturnsNineSteps(t *testing.T) {
	h, logs := newTestHandler(t)

	r := testutil.NewJSONRequest(http.MethodPost, "/separator/three-phase?defaults=true",
		`{"inputs":{"oilFlowRate":"5000"}}`)
	w := testutil.ExecuteRequest(r, h)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp CalcResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.Calculator != "three-phase" || len(resp.Steps) != 9 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if got := resp.Steps[5].Result; got != "dMin = 2034.24 in" {
		t.Fatalf("expected %q, got %q", "dMin = 2034.24 in", got)
	}
	if resp.Steps[5].Value == nil || *resp.Steps[5].Value <= 0 {
		t.Fatalf("expected a finite dMin value, got %v", resp.Steps[5].Value)
	}
	if got := resp.Inputs["waterSG"]; got != "1.07" {
		t.Fatalf("expected echoed waterSG %q, got %q", "1.07", got)
	}

	entries := logs.FilterMessage("separator calculation completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 completion log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["calculator"] != "three-phase" {
		t.Fatalf("expected calculator %q, got %#v", "three-phase", fields["calculator"])
	}
	if fields["seam_to_seam_length"] != "Lss = 76.16 in" {
		t.Fatalf("expected seam_to_seam_length %q, got %#v", "Lss = 76.16 in", fields["seam_to_seam_length"])
	}
}

func TestTwoPhaseComputeKeepsInvalidTextVisible(t *testing.T) {
	h, logs := newTestHandler(t)

	r := testutil.NewJSONRequest(http.MethodPost, "/separator/two-phase?defaults=true",
		`{"inputs":{"pressure":"abc"}}`)
	w := testutil.ExecuteRequest(r, h)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp CalcResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if got := resp.Inputs["pressure"]; got != "NaN" {
		t.Fatalf("expected pressure to echo as NaN, got %q", got)
	}
	for _, s := range resp.Steps[1:] {
		if s.Value != nil {
			t.Fatalf("%s: expected null value, got %v", s.Symbol, *s.Value)
		}
		if !strings.Contains(s.Narrative, s.Symbol+" = NaN") {
			t.Fatalf("%s: expected NaN in narrative, got %q", s.Symbol, s.Narrative)
		}
	}

	fields := logs.FilterMessage("separator calculation completed").All()[0].ContextMap()
	if fields["nonfinite_steps"] != int64(5) {
		t.Fatalf("expected 5 non-finite steps logged, got %#v", fields["nonfinite_steps"])
	}
}

func TestComputeRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		msg  string
	}{
		{"malformed body", "/separator/two-phase", `{"inputs":`, "invalid request body"},
		{"unknown input", "/separator/three-phase", `{"inputs":{"viscosity":1}}`, `unknown input "viscosity"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, logs := newTestHandler(t)

			w := testutil.ExecuteRequest(testutil.NewJSONRequest(http.MethodPost, tc.path, tc.body), h)
			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)
			if body["error"] != tc.msg {
				t.Fatalf("expected error %q, got %q", tc.msg, body["error"])
			}

			if n := logs.FilterMessage(tc.msg).Len(); n != 1 {
				t.Fatalf("expected 1 error log, got %d", n)
			}
		})
	}
}
