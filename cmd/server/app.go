package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vancomm/colorsort-server/internal/colorsort"
	"github.com/vancomm/colorsort-server/internal/config"
	"github.com/vancomm/colorsort-server/internal/middleware"
	"github.com/vancomm/colorsort-server/internal/repository"
)

type application struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	jwt     *config.JWT
	admin   *config.Admin
	ws      *config.WebSocket
	gen     *config.Generation
	colors  []colorsort.Object
}

func (app *application) Router() *mux.Router {
	router := mux.NewRouter()

	levelRouter := router.PathPrefix("/levels").Subrouter()
	levelRouter.Use(mux.MiddlewareFunc(middleware.Auth(app.logger, app.cookies)))
	levelRouter.Methods("GET").Path("/generate/watch").HandlerFunc(app.wsGenerate)
	levelRouter.Methods("GET").Path("/{n}/check").HandlerFunc(app.handleCheckLevel)
	levelRouter.Methods("GET").Path("/{n}/predecessors").HandlerFunc(app.handlePredecessors)
	levelRouter.Methods("GET").Path("/{n}").HandlerFunc(app.handleFetchLevel)
	levelRouter.Methods("DELETE").Path("/{n}").HandlerFunc(app.handleDeleteLevel)
	levelRouter.Methods("GET").HandlerFunc(app.handleListLevels)
	levelRouter.Methods("POST").HandlerFunc(app.handleCreateLevel)

	router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("OK"))
	})
	router.HandleFunc("/login", app.handleLogin)
	router.HandleFunc("/logout", app.handleLogout)

	return router
}

func (app *application) getLevelNumber(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	return strconv.Atoi(vars["n"])
}

// requireAdmin gates mutating endpoints on claims set by the auth
// middleware.
func (app *application) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := middleware.AdminClaims(r); !ok {
		app.unauthorized(w)
		return false
	}
	return true
}

func (app *application) badRequest(w http.ResponseWriter) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("Bad request"))
}

func (app *application) unauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte("Unauthorized"))
}

func (app *application) notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Not found"))
}

func (app *application) internalError(w http.ResponseWriter, msg string, args ...any) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("Internal error"))
	app.logger.Error(msg, args...)
}

func (app *application) replyWithJSON(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		app.internalError(w, "failed to marshal json", slog.Any("error", err))
		return
	}
	w.Header().Add("Content-Type", "application/json")
	_, err = w.Write(payload)
	if err != nil {
		w.Header().Del("Content-Type")
		app.logger.Error(
			"failed to send data", slog.Any("data", v), slog.Any("error", err),
		)
	}
}
