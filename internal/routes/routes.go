package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"DOCSHELF_BACK-END/internal/config"
	"DOCSHELF_BACK-END/internal/dto"
	"DOCSHELF_BACK-END/internal/handlers"
	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/middleware"
	"DOCSHELF_BACK-END/internal/utils"
)

// Dependencies is everything the router needs, built once at startup
type Dependencies struct {
	CORS     config.CORSConfig
	Log      logger.Logger
	Resolver middleware.Resolver

	Auth          *handlers.AuthHandler
	Health        *handlers.HealthHandler
	Categories    *handlers.CategoriesHandler
	Subcategories *handlers.SubcategoriesHandler
	Documents     *handlers.DocumentsHandler
}

// NewRouter configures all application routes
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(middleware.Recoverer(deps.Log))
	r.Use(newCORS(deps.CORS).Handler)
	r.Use(chimw.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	// Health check routes
	r.Get("/healthz", deps.Health.HealthCheck)
	r.Get("/livez", deps.Health.LivenessCheck)
	r.Get("/readyz", deps.Health.ReadinessCheck)

	// API docs
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Authentication routes
	r.Post("/register", deps.Auth.Register)
	r.Post("/token", deps.Auth.Login)

	// Everything below requires a bearer token
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(deps.Resolver, deps.Log))

		r.Get("/users/me", deps.Auth.Me)

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", deps.Categories.CreateCategory)
			r.Get("/", deps.Categories.ListCategories)
			r.Get("/{id}", deps.Categories.GetCategory)
			r.Put("/{id}", deps.Categories.UpdateCategory)
			r.Delete("/{id}", deps.Categories.DeleteCategory)
		})

		r.Route("/subcategories", func(r chi.Router) {
			r.Post("/", deps.Subcategories.CreateSubcategory)
			r.Get("/", deps.Subcategories.ListSubcategories)
			r.Get("/{id}", deps.Subcategories.GetSubcategory)
			r.Put("/{id}", deps.Subcategories.UpdateSubcategory)
			r.Delete("/{id}", deps.Subcategories.DeleteSubcategory)
		})

		r.Route("/documents", func(r chi.Router) {
			r.Post("/", deps.Documents.CreateDocument)
			r.Get("/", deps.Documents.ListDocuments)
			r.Get("/{id}", deps.Documents.GetDocument)
			r.Put("/{id}", deps.Documents.UpdateDocument)
			r.Delete("/{id}", deps.Documents.DeleteDocument)
		})
	})

	r.Get("/", rootHandler)

	return r
}

func newCORS(cfg config.CORSConfig) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
	})
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Docshelf backend is running."})
}
