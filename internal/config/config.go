package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	TelegramToken       string
	BaseAdminChatID     int64
	DatabaseURL         string
	SchoolName          string
	DefaultAcademicYear int
}

var instance *BotConfig
var once sync.Once

func GetBotConfig() *BotConfig {
	once.Do(func() {
		instance = &BotConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Warnf("no .env file loaded: %s", err.Error())
		}

		instance.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
		if instance.TelegramToken == "" {
			logrus.Fatal("could not get bot token")
		}

		instance.BaseAdminChatID = getEnvAsInt("BASE_ADMIN_CHAT_ID", 0)

		instance.DatabaseURL = getEnv("DATABASE_URL", "school_calendar.db")
		instance.SchoolName = getEnv("SCHOOL_NAME", "")

		// The academic year runs March through February, so before March
		// the default is still the previous calendar year.
		now := time.Now()
		defaultYear := now.Year()
		if now.Month() < time.March {
			defaultYear--
		}
		instance.DefaultAcademicYear = int(getEnvAsInt("DEFAULT_ACADEMIC_YEAR", int64(defaultYear)))
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
