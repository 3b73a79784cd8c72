// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"strings"

	"restobot/app/common/consts/errno"
	"restobot/app/common/util"
	"restobot/app/services/assistant/internal/svc"
	"restobot/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.ChatRequest) (resp *types.ChatResponse, err error) {
	if req == nil || strings.TrimSpace(req.Query) == "" {
		return nil, errors.New(int(errno.InvalidParam), "empty query")
	}

	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	s, ok := l.svcCtx.Sessions.Get(sessionId)
	if !ok {
		return nil, errors.New(int(errno.SessionNotFound), "session not found")
	}

	answer := l.svcCtx.Router.Route(l.ctx, s, req.Query)

	resp = &types.ChatResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Answer:     answer,
	}

	return
}
