// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"restobot/app/common/consts/errno"
	"restobot/app/common/session"
	"restobot/app/services/assistant/internal/svc"
	"restobot/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type OpenSessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewOpenSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *OpenSessionLogic {
	return &OpenSessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *OpenSessionLogic) OpenSession() (resp *types.OpenSessionResponse, err error) {
	s := l.svcCtx.Sessions.Open()

	ttl := l.svcCtx.Config.Session.Expire
	token, _, err := session.Sign(l.svcCtx.Config.Session.Secret, ttl, s.ID)
	if err != nil {
		l.Logger.Error("logic: sign session token failed: ", err)
		l.svcCtx.Sessions.Close(s.ID)
		return nil, errors.New(int(errno.InternalError), "open session failed")
	}

	resp = &types.OpenSessionResponse{
		StatusCode:   errno.StatusOK,
		StatusMsg:    "ok",
		SessionToken: token,
		ExpiresIn:    int64(ttl.Seconds()),
	}

	return
}
