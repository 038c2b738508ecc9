package app

import (
	"net/http"

	"github.com/google/uuid"
)

type sessionKey string

const (
	SessionKeyUserId  = sessionKey("userID")
	SessionKeyIsAdmin = sessionKey("isAdmin")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *application) contextGetUserId(r *http.Request) uuid.UUID {
	userId, ok := r.Context().Value(SessionKeyUserId).(uuid.UUID)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

func (app *application) contextGetIsAdmin(r *http.Request) bool {
	isAdmin, ok := r.Context().Value(SessionKeyIsAdmin).(bool)
	if !ok {
		panic("missing admin flag from context")
	}

	return isAdmin
}
