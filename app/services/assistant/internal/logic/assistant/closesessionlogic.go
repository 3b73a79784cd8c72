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
)

type CloseSessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCloseSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CloseSessionLogic {
	return &CloseSessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CloseSessionLogic) CloseSession() (resp *types.CloseSessionResponse, err error) {
	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	// Closing an already-gone session is fine; the cart and log are
	// volatile either way.
	l.svcCtx.Sessions.Close(sessionId)

	resp = &types.CloseSessionResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
	}

	return
}
