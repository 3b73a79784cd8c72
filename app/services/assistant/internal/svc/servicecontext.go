package svc

import (
	"context"

	"restobot/app/common/middleware"
	"restobot/app/services/assistant/internal/agent/chat"
	"restobot/app/services/assistant/internal/agent/menu"
	"restobot/app/services/assistant/internal/answer"
	"restobot/app/services/assistant/internal/config"
	"restobot/app/services/assistant/internal/retrieval"

	embeddingark "github.com/cloudwego/eino-ext/components/embedding/ark"
	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	SessionMiddleware rest.Middleware

	ChatModel *ark.ChatModel
	Embedder  *embeddingark.Embedder
	ESClient  *elasticsearch.Client

	Sessions *chat.Store
	Router   *chat.Router
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	sc := &ServiceContext{
		Config:            c,
		SessionMiddleware: middleware.NewSessionMiddleware(c.Session.Secret).Handle,
	}

	if c.ChatModel.Model != "" && c.ChatModel.APIKey != "" {
		// Generation is pinned to temperature zero so repeated identical
		// turns stay stable.
		temperature := float32(0)
		cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
			BaseURL:     c.ChatModel.BaseUrl,
			APIKey:      c.ChatModel.APIKey,
			Model:       c.ChatModel.Model,
			Temperature: &temperature,
		})
		if err != nil {
			logx.Errorw("init ark chat model failed", logx.Field("err", err))
		} else {
			sc.ChatModel = cm
			logx.Infow("ark chat model initialized", logx.Field("model", c.ChatModel.Model))
		}
	} else {
		logx.Infow("chat model disabled, missing model or api key")
	}

	if c.Embedding.Model != "" && c.Embedding.APIKey != "" {
		emb, err := embeddingark.NewEmbedder(context.Background(), &embeddingark.EmbeddingConfig{
			BaseURL: c.Embedding.BaseUrl,
			APIKey:  c.Embedding.APIKey,
			Model:   c.Embedding.Model,
		})
		if err != nil {
			logx.Errorw("init embedding model failed", logx.Field("err", err))
		} else {
			sc.Embedder = emb
			logx.Infow("embedding model initialized", logx.Field("model", c.Embedding.Model))
		}
	} else {
		logx.Infow("embedding client disabled, missing model or api key")
	}

	if len(c.Elastic.Addresses) > 0 {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: c.Elastic.Addresses,
			Username:  c.Elastic.Username,
			Password:  c.Elastic.Password,
		})
		if err != nil {
			logx.Errorw("init elasticsearch client failed", logx.Field("err", err))
		} else {
			sc.ESClient = client
			logx.Infow("elasticsearch client initialized", logx.Field("addresses", c.Elastic.Addresses))
		}
	} else {
		logx.Infow("elasticsearch client disabled, no addresses configured")
	}

	resolver := menu.NewResolver(c.Assistant.DefaultPrice)
	sc.Sessions = chat.NewStore(resolver)

	var embedder retrieval.Embedder
	if sc.Embedder != nil {
		embedder = sc.Embedder
	}
	retriever := retrieval.NewElastic(sc.ESClient, embedder, c.Elastic.IndexName, c.Assistant.TopK)
	generator := answer.NewArk(sc.ChatModel)
	sc.Router = chat.NewRouter(retriever, generator, c.Assistant.CallTimeout, c.Assistant.RetryBackoff)

	return sc
}
