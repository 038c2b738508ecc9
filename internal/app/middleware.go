package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId, ok := app.sessionUser(r)
		if !ok {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		isAdmin := app.sessionManager.GetBool(r.Context(), SessionKeyIsAdmin.String())

		ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
		ctx = context.WithValue(ctx, SessionKeyIsAdmin, isAdmin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) requireAdmin(next http.Handler) http.Handler {
	return app.requireAuthentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.contextGetIsAdmin(r) {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	}))
}

// requireUser admits authenticated non-admin users only. Reviews are written
// by customers, not administrators.
func (app *application) requireUser(next http.Handler) http.Handler {
	return app.requireAuthentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.contextGetIsAdmin(r) {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	}))
}

func (app *application) sessionUser(r *http.Request) (uuid.UUID, bool) {
	raw := app.sessionManager.GetString(r.Context(), SessionKeyUserId.String())
	if raw == "" {
		return uuid.Nil, false
	}

	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return userId, true
}
