package config

import (
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                    utils.GetEnvString("APP_ENV", "development"),
			Port:                   utils.GetEnvString("APP_PORT", ":3000"),
			EndpointPrefix:         utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			LoginURL:               utils.GetEnvString("APP_LOGIN_URL", "/login"),
			MaxRequests:            utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:        utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSecond: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECOND", 10),
		},
		Services: Services{
			AuthBaseUrl:       utils.GetEnvString("AUTH_SERVICE_BASE_URL", "http://localhost:8081"),
			KonsultasiBaseUrl: utils.GetEnvString("KONSULTASI_SERVICE_BASE_URL", "http://localhost:8082"),
			DoctorListBaseUrl: utils.GetEnvString("DOCTOR_LIST_SERVICE_BASE_URL", "http://localhost:8083"),
			RatingBaseUrl:     utils.GetEnvString("RATING_SERVICE_BASE_URL", "http://localhost:8084"),
			ChatBaseUrl:       utils.GetEnvString("CHAT_SERVICE_BASE_URL", "http://localhost:8085"),
		},
		Session: Session{
			CookieName:       utils.GetEnvString("SESSION_COOKIE_NAME", "pandacare_sid"),
			TokenTTLInHour:   utils.GetEnvInt("SESSION_TOKEN_TTL_IN_HOUR", 24),
			ChatPollInterval: utils.GetEnvInt("CHAT_POLL_INTERVAL_IN_SECOND", 2),
		},
	}
}

// ServiceBaseUrl maps a service name to its configured base URL. The empty
// string marks an unknown service.
func (c *InternalConfig) ServiceBaseUrl(service constvars.ServiceName) string {
	switch service {
	case constvars.ServiceAuth:
		return c.Services.AuthBaseUrl
	case constvars.ServiceKonsultasi:
		return c.Services.KonsultasiBaseUrl
	case constvars.ServiceDoctorList:
		return c.Services.DoctorListBaseUrl
	case constvars.ServiceRating:
		return c.Services.RatingBaseUrl
	case constvars.ServiceChat:
		return c.Services.ChatBaseUrl
	default:
		return ""
	}
}
