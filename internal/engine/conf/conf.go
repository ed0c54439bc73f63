package conf

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/go-quizhub/quizhub/pkg/cache"
	"github.com/go-quizhub/quizhub/pkg/database"
	httpx "github.com/go-quizhub/quizhub/pkg/http"
	"github.com/go-quizhub/quizhub/pkg/log"
)

/**
 * @file: conf.go
 * @description: app config, loaded from toml and re-parsed on change
 */

type AppConfig struct {
	Log      log.Conf
	Http     httpx.Http
	Database database.Database
	Redis    cache.Redis
	Reminder ReminderConf
}

// ReminderConf 提醒流水线配置
type ReminderConf struct {
	// Spec robfig/cron 表达式，默认每天零点
	Spec string
	// StaleAfter 完成记录的新鲜度窗口
	StaleAfter time.Duration
	// CacheTTL 完成记录缓存存活时间，必须大于 StaleAfter
	CacheTTL time.Duration
}

var (
	cfg  AppConfig
	once sync.Once
)

func NewConf(confFile string) AppConfig {
	once.Do(func() {
		var err error
		cfg, err = LoadConfigFile(confFile)
		if err != nil {
			panic(fmt.Sprintf("load conf file error: %s", err))
		}
	})
	return cfg
}

// LoadConfigFile load conf file
func LoadConfigFile(confFile string) (AppConfig, error) {
	config := viper.New()
	config.SetConfigFile(confFile)
	config.AddConfigPath("./conf.d")
	config.SetConfigName("config")
	config.SetConfigType("toml")

	config.SetDefault("reminder.spec", "0 0 * * *")
	config.SetDefault("reminder.staleafter", 24*time.Hour)
	config.SetDefault("reminder.cachettl", 48*time.Hour)

	if err := config.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read configuration file: %v", err)
	}

	config.WatchConfig()
	config.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("configuration changed, re-parsing: %s", e.Name)
		if err := config.Unmarshal(&cfg); err != nil {
			log.Errorf("failed to unmarshal configuration file: %v", err)
		}
	})
	if err := config.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal configuration file: %v", err)
	}

	return cfg, nil
}
