// Copyright 2025 QuizHub Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/conf"
	"github.com/go-quizhub/quizhub/internal/engine/logic"
	"github.com/go-quizhub/quizhub/internal/engine/repo"
	"github.com/go-quizhub/quizhub/internal/engine/router"
	"github.com/go-quizhub/quizhub/pkg/cache"
	"github.com/go-quizhub/quizhub/pkg/cron"
	"github.com/go-quizhub/quizhub/pkg/ctx"
	"github.com/go-quizhub/quizhub/pkg/database"
	"github.com/go-quizhub/quizhub/pkg/log"
	"github.com/go-quizhub/quizhub/pkg/safe"
	"github.com/gofiber/fiber/v2"
)

type App struct {
	HttpApp *fiber.App
	AppConf conf.AppConfig

	cleanup func()
}

// NewApp wires config, logging, storage, logic and routing into a runnable app.
// 依赖自底向上装配：config -> log -> redis/db -> ctx -> repo -> logic -> router。
func NewApp(configFile string) (*App, error) {
	appConf := conf.NewConf(configFile)

	log.MustInit(&appConf.Log)

	redisClient, err := cache.NewRedis(appConf.Redis)
	if err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	dbClient, err := database.NewDatabase(appConf.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	db := database.NewGormDB(dbClient)
	redisCache := cache.NewRedisCache(redisClient)
	appCtx := ctx.NewContext(context.Background(), dbClient, redisClient, log.GetLogger())

	// repo
	userRepo := repo.NewUserRepo(db, redisCache)
	companyRepo := repo.NewCompanyRepo(db)
	membershipRepo := repo.NewMembershipRepo(db)
	invitationRepo := repo.NewInvitationRepo(db)
	quizRepo := repo.NewQuizRepo(db)
	questionRepo := repo.NewQuestionRepo(db)
	answeredRepo := repo.NewAnsweredQuestionRepo(db)
	completionRepo := repo.NewCompletionCacheRepo(redisCache)
	notificationRepo := repo.NewNotificationRepo(db)

	// logic
	permission := logic.NewPermissionLogic(membershipRepo, companyRepo)
	userLogic := logic.NewUserLogic(appCtx, userRepo)
	companyLogic := logic.NewCompanyLogic(appCtx, companyRepo, permission)
	membershipLogic := logic.NewMembershipLogic(appCtx, membershipRepo, permission)
	invitationLogic := logic.NewInvitationLogic(appCtx, invitationRepo, membershipRepo, companyRepo, permission)
	notificationLogic := logic.NewNotificationLogic(appCtx, notificationRepo, membershipRepo)
	quizLogic := logic.NewQuizLogic(appCtx, quizRepo, questionRepo, notificationLogic, permission)
	submissionLogic := logic.NewSubmissionLogic(appCtx, quizRepo, questionRepo, answeredRepo, completionRepo, permission, appConf.Reminder.CacheTTL)
	scoreLogic := logic.NewScoreLogic(appCtx, answeredRepo, permission)
	reminderLogic := logic.NewReminderLogic(appCtx, companyRepo, membershipRepo, quizRepo, completionRepo, notificationLogic, appConf.Reminder.StaleAfter)

	rt := router.NewRouter(
		&appConf.Http,
		appCtx,
		userLogic,
		companyLogic,
		membershipLogic,
		invitationLogic,
		quizLogic,
		submissionLogic,
		scoreLogic,
		notificationLogic,
	)

	// 定时提醒
	cron.Init()
	reminderCtx, cancelReminder := context.WithCancel(context.Background())
	if err := cron.AddFunc(appConf.Reminder.Spec, func() {
		if err := reminderLogic.RunReminderPass(reminderCtx); err != nil {
			log.Errorf("reminder pass failed: %v", err)
		}
	}, "quiz-reminder"); err != nil {
		cancelReminder()
		return nil, fmt.Errorf("register reminder job: %w", err)
	}
	cron.Start()

	cleanup := func() {
		cancelReminder()
		cron.Stop()
		if err := db.Close(); err != nil {
			log.Errorf("close database: %v", err)
		}
		if err := redisClient.Close(); err != nil {
			log.Errorf("close redis: %v", err)
		}
	}

	return &App{
		HttpApp: rt.Router(),
		AppConf: appConf,
		cleanup: cleanup,
	}, nil
}

// Run starts the http server and blocks until a termination signal arrives.
func (a *App) Run() error {
	defer a.cleanup()

	addr := fmt.Sprintf("%s:%d", a.AppConf.Http.Host, a.AppConf.Http.Port)

	safe.Go(func() {
		log.Infof("http server start at: %s", addr)
		var err error
		if a.AppConf.Http.TLS.CertFile != "" && a.AppConf.Http.TLS.KeyFile != "" {
			err = a.HttpApp.ListenTLS(addr, a.AppConf.Http.TLS.CertFile, a.AppConf.Http.TLS.KeyFile)
		} else {
			err = a.HttpApp.Listen(addr)
		}
		if err != nil {
			log.Fatalf("http server error: %v", err)
		}
	})

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-sc

	log.Info("http server shutting down...")

	shutdownTimeout := time.Duration(a.AppConf.Http.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	if err := a.HttpApp.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	log.Info("http server stopped")
	return nil
}
