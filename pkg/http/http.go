package http

import (
	"time"

	"github.com/go-quizhub/quizhub/pkg/ctx"
)

type Http struct {
	Host            string
	Port            int
	Mode            string
	ContextPath     string
	PProf           bool
	AccessLog       bool
	ReadTimeout     int
	WriteTimeout    int
	IdleTimeout     int
	ShutdownTimeout int
	TLS             TLS
	Auth            Auth
	Ctx             ctx.Context
}

type TLS struct {
	CertFile string
	KeyFile  string
}

type Auth struct {
	SecretKey      string
	AccessExpire   time.Duration
	RefreshExpire  time.Duration
	RedisKeyPrefix string
}
