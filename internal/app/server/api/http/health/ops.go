package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check endpoint",
		Description: "Liveness probe. Reports ok whenever the process can serve requests; no downstream checks.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
