// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "restobot/app/services/assistant/internal/logic/assistant"
	"restobot/app/services/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func HistoryHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewHistoryLogic(r.Context(), svcCtx)
		resp, err := l.History()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
