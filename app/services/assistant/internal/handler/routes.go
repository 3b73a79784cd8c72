// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	assistant "restobot/app/services/assistant/internal/handler/assistant"
	"restobot/app/services/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/session",
				Handler: assistant.OpenSessionHandler(serverCtx),
			},
		},
		rest.WithPrefix("/restobot"),
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.SessionMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/chat",
					Handler: assistant.ChatHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/history",
					Handler: assistant.HistoryHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/session/close",
					Handler: assistant.CloseSessionHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/restobot"),
	)
}
