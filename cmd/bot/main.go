package main

import (
	"os"
	"os/signal"
	"syscall"

	"school-calendar-bot/internal/config"
	"school-calendar-bot/internal/handler"
	"school-calendar-bot/internal/repository"
	"school-calendar-bot/internal/service"
	"school-calendar-bot/pkg/lunar"
	"school-calendar-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// SQLite needs the pragma to actually enforce foreign keys.
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	userRepo, err := repository.NewUserRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create user repository")
	}

	departmentRepo, err := repository.NewGormDepartmentRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create department repository")
	}

	scheduleRepo, err := repository.NewGormScheduleRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create schedule repository")
	}

	yearSettingRepo, err := repository.NewGormYearSettingRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create year setting repository")
	}

	userService := service.NewUserService(&userRepo)
	departmentService := service.NewDepartmentService(departmentRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, lunar.NewConverter())
	calendarService := service.NewCalendarService(scheduleService, departmentRepo, yearSettingRepo)
	yearSettingService := service.NewYearSettingService(yearSettingRepo)

	if err := userService.InitializeAdmin(cfg.BaseAdminChatID); err != nil {
		logrus.Infof("Warning: Failed to initialize admin: %v", err)
	} else if cfg.BaseAdminChatID != 0 {
		logrus.Infof("Admin initialized with chat ID: %d", cfg.BaseAdminChatID)
	}

	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		userService,
		scheduleService,
		calendarService,
		departmentService,
		yearSettingService,
		cfg,
	)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
