package config

import (
	"lisagent-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "lisagent"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "lis-transcripts"),
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
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Hostname:        utils.GetEnvString("APP_HOSTNAME", "lisagent"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			DisableDatabase: utils.GetEnvBool("LIS_DISABLE_DATABASE", false),
			AgentAPIKey:     utils.GetEnvString("APP_AGENT_API_KEY", ""),
		},
		Uplink: Uplink{
			PrimaryURL:       utils.GetEnvString("LIS_PRIMARY_UPLINK_API_URL", ""),
			PrimaryAPIKey:    utils.GetEnvString("LIS_PRIMARY_UPLINK_API_KEY", ""),
			SecondaryURL:     utils.GetEnvString("LIS_SECONDARY_UPLINK_API_URL", ""),
			SecondaryAPIKey:  utils.GetEnvString("LIS_SECONDARY_UPLINK_API_KEY", ""),
			DisableUplink:    utils.GetEnvBool("LIS_DISABLE_UPLINK", false),
			TimeoutInSeconds: utils.GetEnvInt("LIS_UPLINK_TIMEOUT_IN_SECONDS", 15),
		},
		Notifier: Notifier{
			WebhookURL:       utils.GetEnvString("CHAT_WEBHOOK_URL", ""),
			WebhookEnabled:   utils.GetEnvBool("CHAT_WEBHOOK_ENABLED", false),
			AlertsQueue:      utils.GetEnvString("APP_RABBITMQ_ALERTS_QUEUE", "lis-alerts"),
			PostsPerMinute:   utils.GetEnvInt("CHAT_WEBHOOK_POSTS_PER_MINUTE", 30),
			TimeoutInSeconds: utils.GetEnvInt("CHAT_WEBHOOK_TIMEOUT_IN_SECONDS", 10),
		},
		Republish: Republish{
			Enabled:           utils.GetEnvBool("REPUBLISH_ENABLED", false),
			IntervalInMinutes: utils.GetEnvInt("REPUBLISH_INTERVAL_IN_MINUTES", 60),
			CompletionCutoff:  utils.GetEnvString("REPUBLISH_COMPLETION_CUTOFF", "20201015000000"),
		},
	}
}
