package main

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/vancomm/colorsort-server/internal/config"
)

func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.badRequest(w)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if subtle.ConstantTimeCompare(
		[]byte(username), []byte(app.admin.Username),
	) != 1 {
		app.unauthorized(w)
		return
	}

	err = bcrypt.CompareHashAndPassword(app.admin.PasswordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			app.unauthorized(w)
		} else {
			w.WriteHeader(http.StatusUnauthorized)
			app.logger.Error("bcrypt compare error", slog.Any("error", err))
		}
		return
	}

	claims := config.NewAdminClaims(username, app.jwt.TokenLifetime())
	err = app.cookies.Refresh(w, claims)
	if err != nil {
		app.internalError(w, "failed to set auth cookies", slog.Any("error", err))
		return
	}

	app.replyWithJSON(w, "ok")
}
