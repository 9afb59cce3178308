package calculator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"separator-calculator/internal/handlers"
	"separator-calculator/internal/observability"
	"separator-calculator/internal/separator"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the separator calculators' dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("separator")

// ---------------------------------------------------------------------------
// Handlers: discovery
// ---------------------------------------------------------------------------

// Index handles GET /separator
func Index(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, index)
}

// TwoPhaseFields handles GET /separator/two-phase
func TwoPhaseFields(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, SchemaResponse[separator.TwoPhaseInput]{
		Calculator: separator.TwoPhase,
		Title:      "Two-Phase Separator",
		Steps:      separator.TwoPhaseStepCount,
		Fields:     separator.TwoPhaseSchema,
	})
}

// ThreePhaseFields handles GET /separator/three-phase
func ThreePhaseFields(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, SchemaResponse[separator.ThreePhaseInput]{
		Calculator: separator.ThreePhase,
		Title:      "Three-Phase Separator",
		Steps:      separator.ThreePhaseStepCount,
		Fields:     separator.ThreePhaseSchema,
	})
}

// ---------------------------------------------------------------------------
// Handlers: sizing calculations
// ---------------------------------------------------------------------------

// TwoPhase handles POST /separator/two-phase
func TwoPhase(w http.ResponseWriter, r *http.Request) {
	handleCompute(w, r, separator.TwoPhase, separator.TwoPhaseSchema, separator.ComputeTwoPhase)
}

// ThreePhase handles POST /separator/three-phase
func ThreePhase(w http.ResponseWriter, r *http.Request) {
	handleCompute(w, r, separator.ThreePhase, separator.ThreePhaseSchema, separator.ComputeThreePhase)
}

// handleCompute is the shared implementation for both calculators: it parses
// the raw inputs into the calculator's typed record, runs the engine, and
// reports every derivation step on the span, in metrics and in the log.
// NaN and Infinity results are not errors; they are returned as computed.
func handleCompute[T any](w http.ResponseWriter, r *http.Request, name string, schema separator.Schema[T], compute func(T) separator.Calculation) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	// --- 1. Child span ---
	ctx, span := tracer.Start(ctx, fmt.Sprintf("separator.%s", name),
		trace.WithAttributes(
			attribute.String("separator.calculator", name),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	// --- 2. Decode request body ---
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, name, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	useDefaults := r.URL.Query().Get("defaults") == "true"
	in, err := bindInputs(schema, req.Inputs, useDefaults)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, name, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	values := schema.Values(in)
	for field, v := range values {
		span.SetAttributes(attribute.Float64("separator.input."+field, v))
	}

	// --- 3. Run the engine (timed for histogram) ---
	start := time.Now()
	calc := compute(in)
	elapsed := float64(time.Since(start).Nanoseconds()) / 1e6 // ms

	// --- 4. Record metrics ---
	attrs := metric.WithAttributes(attribute.String("calculator", name))
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)

	nonFinite := calc.NonFinite()
	if nonFinite > 0 {
		nonFiniteCounter.Add(ctx, int64(nonFinite), attrs)
	}

	lss, _ := calc.Lookup("Lss")
	if lss.Finite() {
		lssGauge.Record(ctx, lss.Value, attrs)
	}

	// --- 5. Span events, one per step ---
	for _, s := range calc.Steps {
		span.AddEvent("step.computed", trace.WithAttributes(
			attribute.String("step.label", s.Label),
			attribute.String("step.symbol", s.Symbol),
			attribute.String("step.result", s.Result()),
		))
	}
	span.SetAttributes(
		attribute.Int("separator.steps", len(calc.Steps)),
		attribute.Int("separator.nonfinite_steps", nonFinite),
		attribute.String("separator.result", calc.Last().Result()),
	)
	span.SetStatus(codes.Ok, "")

	// --- 6. Structured log with trace correlation ---
	logger.Info("separator calculation completed",
		zap.String("calculator", name),
		zap.Int("steps", len(calc.Steps)),
		zap.Int("nonfinite_steps", nonFinite),
		zap.String("seam_to_seam_length", lss.Result()),
		zap.String("result", calc.Last().Result()),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	// --- 7. Write response ---
	if r.URL.Query().Get("format") == "markdown" {
		handlers.WriteText(w, http.StatusOK, "text/markdown; charset=utf-8", calc.Markdown())
		return
	}
	handlers.WriteJSON(w, http.StatusOK, newCalcResponse(calc, values))
}
