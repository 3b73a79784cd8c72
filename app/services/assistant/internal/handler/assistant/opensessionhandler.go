// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"restobot/app/common/util"
	logic "restobot/app/services/assistant/internal/logic/assistant"
	"restobot/app/services/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func OpenSessionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewOpenSessionLogic(r.Context(), svcCtx)
		resp, err := l.OpenSession()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		util.SetSessionCookie(w, resp.SessionToken, resp.ExpiresIn)
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
