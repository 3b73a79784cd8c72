package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	LogConf logx.LogConf

	ChatModel ModelConf
	Embedding ModelConf

	Elastic ElasticConf

	Session SessionConf

	Assistant AssistantConf
}

type ModelConf struct {
	BaseUrl string `json:",optional"`
	APIKey  string `json:",optional"`
	Model   string `json:",optional"`
}

type ElasticConf struct {
	Addresses []string `json:",optional"`
	Username  string   `json:",optional"`
	Password  string   `json:",optional"`
	IndexName string   `json:",optional"`
}

type SessionConf struct {
	Secret string
	Expire time.Duration `json:",default=2h"`
}

type AssistantConf struct {
	DefaultPrice int           `json:",default=100"`
	TopK         int           `json:",default=5"`
	CallTimeout  time.Duration `json:",default=10s"`
	RetryBackoff time.Duration `json:",default=500ms"`
}
