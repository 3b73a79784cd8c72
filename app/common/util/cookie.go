package util

import (
	"net/http"
	"time"

	"restobot/app/common/consts/biz"
)

// SetSessionCookie writes the session token cookie for the conversation.
func SetSessionCookie(w http.ResponseWriter, token string, expiresIn int64) {
	if token == "" {
		return
	}

	ttl := biz.SessionExpire
	if expiresIn > 0 {
		ttl = time.Duration(expiresIn) * time.Second
	}
	http.SetCookie(w, &http.Cookie{
		Name:     biz.SESSIONTOKEN,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
	})
}

// ClearSessionCookie drops the session token cookie after a close.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     biz.SESSIONTOKEN,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
