package root

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const contentType = "text/plain; charset=utf-8"

// Greeter is the part of the greeting service the root route needs.
type Greeter interface {
	Greeting() string
}

type Handler struct {
	service    Greeter
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Greeter, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.greetingOp(), h.greeting)
}

func (h *Handler) greeting(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("greeting request received")

	return &Output{
		ContentType: contentType,
		Body:        []byte(h.service.Greeting()),
	}, nil
}
