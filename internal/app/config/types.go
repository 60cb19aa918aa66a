package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App      App
		Services Services
		Session  Session
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                    string
		Port                   string
		EndpointPrefix         string
		LoginURL               string
		MaxRequests            int
		ShutdownTimeout        int
		RequestTimeoutInSecond int
	}

	// Services holds the base URLs of the five backend microservices.
	Services struct {
		AuthBaseUrl       string
		KonsultasiBaseUrl string
		DoctorListBaseUrl string
		RatingBaseUrl     string
		ChatBaseUrl       string
	}

	Session struct {
		CookieName       string
		TokenTTLInHour   int
		ChatPollInterval int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
