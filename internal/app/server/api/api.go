// GET /        # Приветствие (text/plain)
// GET /health  # Liveness probe (JSON)

package api

import (
	"encoding/json"
	"io"
	"net/http"

	healthAPI "greeter/internal/app/server/api/http/health"
	"greeter/internal/app/server/api/http/middleware"
	"greeter/internal/app/server/api/http/middleware/logger"
	rootAPI "greeter/internal/app/server/api/http/root"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	gorillahandlers "github.com/gorilla/handlers"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Root   *rootAPI.Handler
	Health *healthAPI.Handler
}

// New собирает роутер со всеми операциями и оборачивает его в CORS
func New(greeter rootAPI.Greeter, log *slog.Logger) http.Handler {
	mux, API := newRouter()

	h := handlers(greeter, log)
	h.Root.SetupRoutes(API)
	h.Health.SetupRoutes(API)

	return CORS()(mux)
}

func newRouter() (*chi.Mux, huma.API) {
	mux := chi.NewMux()
	// chi требует Use до регистрации маршрутов, humachi.New уже вешает /openapi и /docs
	mux.Use(chimw.Recoverer)

	return mux, humachi.New(mux, Config())
}

// Config is huma's default config without the $schema link transformer
// and with a JSON format that writes no trailing newline, so response
// bodies are exactly the documented fields.
func Config() huma.Config {
	config := huma.DefaultConfig("Greeter API", "1.0.0")
	config.Info.Description = "Greeting and liveness endpoints."
	config.CreateHooks = nil

	// DefaultConfig shares huma.DefaultFormats, copy before overriding
	formats := make(map[string]huma.Format, len(config.Formats)+2)
	for k, v := range config.Formats {
		formats[k] = v
	}
	formats["application/json"] = compactJSONFormat
	formats["json"] = compactJSONFormat
	config.Formats = formats

	return config
}

var compactJSONFormat = huma.Format{
	Marshal: func(w io.Writer, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	},
	Unmarshal: json.Unmarshal,
}

// CORS allows every origin, the usual request headers and every method
// browsers preflight for.
func CORS() func(http.Handler) http.Handler {
	return gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		}),
		gorillahandlers.AllowedHeaders([]string{
			"Content-Type",
			"Authorization",
			"X-Requested-With",
		}),
	)
}

func handlers(greeter rootAPI.Greeter, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer(loggerMW.Middleware())

	rootHandler := rootAPI.NewHandler(greeter, log, middlewares.GetAllAndClear())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	return &Handlers{
		Root:   rootHandler,
		Health: healthHandler,
	}
}
