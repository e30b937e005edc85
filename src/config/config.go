package config

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"pagetrace-service/src/logger"
)

// Set DBPort explicitly to 5432 inside the container
const FixedDBPort = "5432"

type Config struct {
	DBHost             string
	DBUser             string
	DBPassword         string
	DBName             string
	ServicePort        string
	ServiceName        string
	DBPort             string
	EnvPrefix          string
	InitSQLFilePath    string
	CORSAllowedOrigins []string
	DB                 *sql.DB
	Logger             *logger.Logger
}

// NewConfig initializes the configuration
func NewConfig(envPrefix string) *Config {

	corsOrigins := os.Getenv(fmt.Sprintf("%s_CORS_ALLOWED_ORIGINS", envPrefix))

	cfg := &Config{
		EnvPrefix:          envPrefix,
		DBHost:             os.Getenv(fmt.Sprintf("%s_POSTGRES_DB_HOST", envPrefix)),
		DBUser:             os.Getenv(fmt.Sprintf("%s_POSTGRES_DB_USER", envPrefix)),
		DBPassword:         os.Getenv(fmt.Sprintf("%s_POSTGRES_DB_PASSWORD", envPrefix)),
		DBName:             os.Getenv(fmt.Sprintf("%s_POSTGRES_DB_NAME", envPrefix)),
		ServicePort:        os.Getenv(fmt.Sprintf("%s_SERVICE_PORT", envPrefix)),
		ServiceName:        os.Getenv(fmt.Sprintf("%s_SERVICE_NAME", envPrefix)),
		InitSQLFilePath:    os.Getenv(fmt.Sprintf("%s_INIT_SQL_FILE_PATH", envPrefix)),
		CORSAllowedOrigins: strings.Split(corsOrigins, ","),
		DBPort:             FixedDBPort, // fixed port inside the container
		Logger:             logger.NewLogger(logger.INFO),
	}

	cfg.validateEnvVars()
	cfg.printEnvVariables()

	cfg.Logger.Info("✅ Configuration initialized successfully")

	return cfg
}

func (c *Config) printEnvVariables() {

	c.Logger.Info(fmt.Sprintf("🔧 LOADED SERVICE ENVIRONMENTS - %s", c.EnvPrefix))
	c.Logger.Info("🔧 ServicePort: " + c.ServicePort)
	c.Logger.Info("🔧 ServiceName: " + c.ServiceName)
	c.Logger.Info("🔧 DBHost: " + c.DBHost)
	c.Logger.Info("🔧 DBUser: " + c.DBUser)
	c.Logger.Info("🔧 DBName: " + c.DBName)
	c.Logger.Info("🔧 DBPort: " + c.DBPort)
	c.Logger.Info("🔧 InitSQLFilePath: " + c.InitSQLFilePath)
	c.Logger.Info("🔧 CORSAllowedOrigins: " + strings.Join(c.CORSAllowedOrigins, ", "))

}

func (c *Config) validateEnvVars() {
	missing := false

	if c.ServicePort == "" || c.ServiceName == "" {
		c.Logger.Error("❌ Missing required service environment variables")
		missing = true
	}

	if c.DBHost == "" || c.DBUser == "" || c.DBPassword == "" || c.DBName == "" {
		c.Logger.Error("❌ Missing required database environment variables")
		missing = true
	}

	if c.InitSQLFilePath == "" {
		c.Logger.Error("❌ Missing INIT_SQL_FILE_PATH environment variable")
		missing = true
	}

	if missing {
		c.Logger.Error("❌ Exiting due to missing environment variables.")
		os.Exit(1)
	}

}
