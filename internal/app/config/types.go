package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App       App
		Uplink    Uplink
		Notifier  Notifier
		Republish Republish
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Hostname        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
		DisableDatabase bool
		// AgentAPIKey guards the management endpoints; empty disables the
		// check.
		AgentAPIKey string
	}

	// Uplink holds the two upstream result endpoints. Primary receives real
	// field specimens, secondary receives test-labelled specimens.
	Uplink struct {
		PrimaryURL       string
		PrimaryAPIKey    string
		SecondaryURL     string
		SecondaryAPIKey  string
		DisableUplink    bool
		TimeoutInSeconds int
	}

	Notifier struct {
		WebhookURL       string
		WebhookEnabled   bool
		AlertsQueue      string
		PostsPerMinute   int
		TimeoutInSeconds int
	}

	Republish struct {
		Enabled           bool
		IntervalInMinutes int
		// CompletionCutoff is the YYYYMMDDhhmmss lower bound a result's
		// completion time must pass to be eligible for re-upload.
		CompletionCutoff string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
