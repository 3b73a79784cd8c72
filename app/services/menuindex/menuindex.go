package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"restobot/app/services/menuindex/internal/config"
	"restobot/app/services/menuindex/internal/es"
	"restobot/app/services/menuindex/internal/mq"
	"restobot/app/services/menuindex/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/errgroup"
)

var configFile = flag.String("f", "etc/menuindex.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	ctx := svc.NewServiceContext(c)

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if ctx.ESClient != nil {
		info, err := es.EnsureMenuIndex(rootCtx, ctx.ESClient, es.MenuIndexParams{
			IndexName:     ctx.MenuIndexName(),
			EmbeddingDims: ctx.EmbeddingDimension(),
		})
		if err != nil {
			logx.Errorw("ensure menu index failed", logx.Field("err", err))
		} else {
			logx.Infow("menu index ready",
				logx.Field("index", ctx.MenuIndexName()),
				logx.Field("vector", info.SupportsVector),
			)
		}
	}

	group, groupCtx := errgroup.WithContext(rootCtx)
	group.Go(func() error { return mq.StartMenuChunkConsumer(groupCtx, ctx) })

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logx.Errorw("menuindex stopped with error", logx.Field("err", err))
		os.Exit(1)
	}

	logx.Info("menuindex shutdown gracefully")
}
