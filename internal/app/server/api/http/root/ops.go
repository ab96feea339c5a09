package root

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) greetingOp() huma.Operation {
	return huma.Operation{
		OperationID: "root-greeting",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Greeting",
		Description: "Returns the plain-text welcome message.",
		Tags:        []string{"root"},
		Middlewares: h.middleware,
	}
}
