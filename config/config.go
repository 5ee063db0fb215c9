package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Mongo configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// External collaborators.
	StripeKey               string `mapstructure:"STRIPE_KEY"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	MeetLinkBaseURL         string `mapstructure:"MEET_LINK_BASE_URL"`
	CheckoutSuccessURL      string `mapstructure:"CHECKOUT_SUCCESS_URL"`
	CheckoutCancelURL       string `mapstructure:"CHECKOUT_CANCEL_URL"`

	// Scheduling parameters.
	OpenMinute          int  `mapstructure:"OPEN_MINUTE"`  // operating hours start, minutes from midnight UTC
	CloseMinute         int  `mapstructure:"CLOSE_MINUTE"` // operating hours end
	GranularityMinutes  int  `mapstructure:"GRANULARITY_MINUTES"`
	BookingHorizonDays  int  `mapstructure:"BOOKING_HORIZON_DAYS"`
	ReminderLeadMinutes int  `mapstructure:"REMINDER_LEAD_MINUTES"`
	StoreTimeoutSeconds int  `mapstructure:"STORE_TIMEOUT_SECONDS"`
	AvailabilityTTLSecs int  `mapstructure:"AVAILABILITY_TTL_SECONDS"`
	AutoConfirm         bool `mapstructure:"AUTO_CONFIRM"`

	// Bookable services.
	Classes []models.ClassConfig `mapstructure:"classes"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "nahuel")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("MEET_LINK_BASE_URL", "https://meet.lozanonahuel.com/session")
	viper.SetDefault("CHECKOUT_SUCCESS_URL", "https://lozanonahuel.com/checkout/success")
	viper.SetDefault("CHECKOUT_CANCEL_URL", "https://lozanonahuel.com/checkout/cancelled")
	viper.SetDefault("OPEN_MINUTE", 8*60)
	viper.SetDefault("CLOSE_MINUTE", 22*60)
	viper.SetDefault("GRANULARITY_MINUTES", 60)
	viper.SetDefault("BOOKING_HORIZON_DAYS", 30)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)
	viper.SetDefault("STORE_TIMEOUT_SECONDS", 5)
	viper.SetDefault("AVAILABILITY_TTL_SECONDS", 300)
	viper.SetDefault("AUTO_CONFIRM", true)
	viper.SetDefault("classes", defaultClasses())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// defaultClasses mirrors the production service lineup; deployments override
// it through config.yaml.
func defaultClasses() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"class":                  string(models.ClassTrainingSwing),
			"displayName":            "Swing Trading",
			"durationMinutes":        60,
			"requiresBlockAlignment": true,
			"codePrefix":             "TS",
			"basePrice":              50.0,
			"currency":               "USD",
		},
		{
			"class":                  string(models.ClassTrainingAdvanced),
			"displayName":            "Advanced Strategies",
			"durationMinutes":        90,
			"requiresBlockAlignment": true,
			"codePrefix":             "TA",
			"basePrice":              75.0,
			"currency":               "USD",
		},
		{
			"class":                  string(models.ClassAdvisoryConsult),
			"displayName":            "Consultorio Financiero",
			"durationMinutes":        60,
			"requiresBlockAlignment": false,
			"codePrefix":             "CF",
			"basePrice":              120.0,
			"currency":               "USD",
		},
		{
			"class":                  string(models.ClassAdvisoryAccount),
			"displayName":            "Cuenta Asesorada",
			"durationMinutes":        45,
			"requiresBlockAlignment": false,
			"codePrefix":             "CA",
			"basePrice":              150.0,
			"currency":               "USD",
		},
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
