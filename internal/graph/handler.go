// AngelaMos | 2026
// handler.go

package graph

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"

	"github.com/fisherfans/backend/internal/core"
)

const (
	maxBodyBytes = 1 << 20

	CodeInternal         = "INTERNAL_SERVER_ERROR"
	CodeValidationFailed = "GRAPHQL_VALIDATION_FAILED"
)

type Handler struct {
	schema  *graphql.Schema
	metrics *core.Metrics
}

func NewHandler(schema *graphql.Schema, metrics *core.Metrics) *Handler {
	return &Handler{schema: schema, metrics: metrics}
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		core.JSONError(w, core.NewAppError(
			err,
			"invalid graphql request body",
			http.StatusBadRequest,
			"BAD_REQUEST",
		))
		return
	}

	resp := h.schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)
	for _, qe := range resp.Errors {
		h.classify(r.Context(), qe)
	}

	core.JSON(w, http.StatusOK, resp)
}

// classify sets extensions.code on every error. Business failures keep
// their message and stable code; anything else is logged and masked.
func (h *Handler) classify(ctx context.Context, qe *gqlerrors.QueryError) {
	if qe.ResolverError == nil {
		qe.Extensions = map[string]any{"code": CodeValidationFailed}
		h.count(CodeValidationFailed)
		return
	}

	core.RecordSpanError(ctx, qe.ResolverError)

	if be, ok := core.AsBusinessError(qe.ResolverError); ok {
		slog.DebugContext(ctx, "business rule rejected request",
			"code", be.Code,
			"path", qe.Path,
			"message", be.Message,
		)
		qe.Message = be.Message
		qe.Extensions = map[string]any{"code": be.Code}
		h.count(be.Code)
		return
	}

	slog.ErrorContext(ctx, "graphql resolver failed",
		"error", qe.ResolverError,
		"path", qe.Path,
	)
	qe.Message = "Internal server error"
	qe.Extensions = map[string]any{"code": CodeInternal}
	h.count(CodeInternal)
}

func (h *Handler) count(code string) {
	if h.metrics == nil {
		return
	}
	h.metrics.GraphQLErrors.WithLabelValues(code).Inc()
}
