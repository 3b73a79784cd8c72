// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"restobot/app/common/consts/errno"
	"restobot/app/common/util"
	"restobot/app/services/assistant/internal/svc"
	"restobot/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type HistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HistoryLogic {
	return &HistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *HistoryLogic) History() (resp *types.HistoryResponse, err error) {
	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	s, ok := l.svcCtx.Sessions.Get(sessionId)
	if !ok {
		return nil, errors.New(int(errno.SessionNotFound), "session not found")
	}

	entries := s.History()
	messages := make([]types.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		messages = append(messages, types.ChatMessage{
			Role:    entry.Role,
			Content: entry.Content,
		})
	}

	resp = &types.HistoryResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Messages:   messages,
	}

	return
}
