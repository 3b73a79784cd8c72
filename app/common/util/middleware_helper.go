package util

import (
	"context"
	"net/http"

	"restobot/app/common/consts/biz"
	"restobot/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func SessionIdFromCtx(ctx context.Context) (int64, error) {
	if ctx == nil {
		return 0, errors.New(int(errno.TokenEmpty), "missing context")
	}

	switch val := ctx.Value(biz.SESSION_KEY).(type) {
	case int64:
		return val, nil
	}

	return 0, errors.New(int(errno.TokenEmpty), "unauthorized")
}

func InjectSessionId2Ctx(r *http.Request, sessionId int64) {
	ctx := context.WithValue(r.Context(), biz.SESSION_KEY, sessionId)
	*r = *r.WithContext(ctx)
}
