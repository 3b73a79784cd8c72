package middleware

import (
	"net/http"

	"restobot/app/common/consts/biz"
	"restobot/app/common/consts/errno"
	"restobot/app/common/session"
	"restobot/app/common/util"

	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

// SessionMiddleware resolves the session token from cookie or header and
// injects the session id into the request context.
type SessionMiddleware struct {
	secret string
}

func NewSessionMiddleware(secret string) *SessionMiddleware {
	return &SessionMiddleware{secret: secret}
}

func (m *SessionMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(biz.SESSIONTOKEN); err == nil {
			token = cookie.Value
		} else if headerToken := r.Header.Get(biz.SESSIONTOKEN); headerToken != "" {
			token = headerToken
		}

		if token == "" {
			httpx.Error(w, errors.New(int(errno.TokenEmpty), "session token is null"))
			return
		}

		claims, err := session.Parse(token, m.secret)
		if err != nil {
			httpx.Error(w, errors.New(int(errno.SessionTokenInvalid), "invalid session token"))
			return
		}

		util.InjectSessionId2Ctx(r, claims.SessionID)
		next(w, r)
	}
}
