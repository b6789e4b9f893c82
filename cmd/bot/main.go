package main

import (
	"os"
	"os/signal"
	"syscall"

	"grafik-bot/internal/config"
	"grafik-bot/internal/handler"
	"grafik-bot/internal/repository"
	"grafik-bot/internal/service"
	"grafik-bot/pkg/holidays"
	"grafik-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized...")

	// Инициализируем SQLite базу данных
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite ограничения
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Включаем поддержку внешних ключей (требуется для SQLite)
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	employeeRepo, err := repository.NewGormEmployeeRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create employee repository")
	}

	entryRepo, err := repository.NewGormScheduleEntryRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create schedule entry repository")
	}

	templateRepo, err := repository.NewGormShiftTemplateRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create shift template repository")
	}

	rulesRepo, err := repository.NewGormRulesRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create rules repository")
	}

	// Праздники опциональны: без файла таблица просто их не помечает
	var bankHolidays []holidays.BankHoliday
	if cfg.HolidaysFile != "" {
		bankHolidays, err = holidays.LoadFile(cfg.HolidaysFile)
		if err != nil {
			logrus.Infof("Warning: Failed to load holidays: %v", err)
		} else {
			logrus.Infof("Loaded %d bank holidays", len(bankHolidays))
		}
	}

	employeeService := service.NewEmployeeService(employeeRepo, entryRepo)
	templateService := service.NewTemplateService(templateRepo)
	scheduleService := service.NewScheduleService(entryRepo, templateRepo, employeeRepo)
	rulesService := service.NewRulesService(rulesRepo)
	verificationService := service.NewVerificationService(scheduleService, employeeRepo, rulesService)
	matrixService := service.NewMatrixService(scheduleService, employeeRepo, bankHolidays)
	stateService := service.NewStateService(employeeRepo, entryRepo, templateRepo, rulesService)

	// Создаем клиент Telegram
	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		employeeService,
		templateService,
		scheduleService,
		rulesService,
		verificationService,
		matrixService,
		stateService,
		cfg,
	)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	// Обработка сигналов для graceful shutdown
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
