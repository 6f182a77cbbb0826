// Package api assembles the HTTP surface: the REST resources, the health
// probe, the embedded front end and the middleware stack around them.
package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	"go.uber.org/zap"

	"github.com/Ethan7628/HTTP-Methods/internal/model"
	"github.com/Ethan7628/HTTP-Methods/internal/posts"
	"github.com/Ethan7628/HTTP-Methods/internal/store"
	"github.com/Ethan7628/HTTP-Methods/internal/users"
	"github.com/Ethan7628/HTTP-Methods/internal/web"
)

const ServiceName = "httpmethods"

type CtxKey int8

const (
	CtxKeyLogger CtxKey = iota
)

// Server owns the route table and the resources mounted on it.
type Server struct {
	sugarLogger *zap.SugaredLogger
	users       *users.Resource
	posts       *posts.Resource

	completedCount metric.Int64Counter
}

func NewServer(
	log *zap.SugaredLogger,
	usersStore *store.Collection[model.User],
	postsStore *store.Collection[model.Post],
) *Server {
	meter := global.Meter(ServiceName)

	return &Server{
		sugarLogger: log,
		users:       users.NewResource(usersStore, log),
		posts:       posts.NewResource(postsStore, log),
		completedCount: metric.Must(meter).NewInt64Counter(
			"http/server/completed_count",
			metric.WithDescription("Count of completed requests, by HTTP method and response status"),
		),
	}
}

// Router builds the application route table.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.Logger)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(s.CountCompleted)

	r.Get("/health", s.Health)

	// RESTy routes for the record collections
	r.Route("/api", func(r chi.Router) {
		r.Mount("/users", s.users.Routes())
		r.Mount("/posts", s.posts.Routes())
	})

	FileServer(r, "/assets", web.Assets())

	// Registered after the mounts so chi copies the handler into every
	// subrouter that has none of its own. Unmatched paths at any depth
	// then reach the front end instead of the default 404 page.
	r.NotFound(s.Fallback)

	return r
}

// Fallback answers unmatched GET requests with the front-end entry document,
// leaving routing of such paths to the client side. Other methods keep the
// plain 404.
func (s *Server) Fallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := w.Write(web.Index()); err != nil {
		s.sugarLogger.Errorw(err.Error())
	}
}

func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit any URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}

	path += "*"

	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, r)
	})
}
