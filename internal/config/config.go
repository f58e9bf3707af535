package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads configuration from an optional YAML file, then applies environment overrides
// and validates the result. A .env file in the working directory is loaded first; it never
// replaces variables that are already set. An empty configPath means defaults and environment only.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvironmentOverrides(&config); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Defaults returns a validated configuration built only from default values.
func Defaults() *Config {
	var config Config
	if err := validateConfig(&config); err != nil {
		panic(fmt.Sprintf("default configuration is invalid: %v", err))
	}

	return &config
}

var (
	EnvPort              = "PORT"
	EnvCompanyWebsite    = "COMPANY_WEBSITE"
	EnvLogLevel          = "LOG_LEVEL"
	EnvSessionSecret     = "SESSION_SECRET"
	EnvRedisAddress      = "REDIS_ADDRESS"
	EnvRedisUsername     = "REDIS_USERNAME"
	EnvRedisPassword     = "REDIS_PASSWORD"
	EnvStorageDriver     = "STORAGE_DRIVER"
	EnvStorageDSN        = "STORAGE_DSN"
	EnvStoragePassword   = "STORAGE_PASSWORD"
	EnvCertificatePath   = "CERTIFICATE_PATH"
	EnvAdminUsername     = "ADMIN_USERNAME"
	EnvAdminPasswordHash = "ADMIN_PASSWORD_HASH"
)

func applyEnvironmentOverrides(config *Config) error {
	if portStr := os.Getenv(EnvPort); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("%s must be a number, got %q", EnvPort, portStr)
		}
		config.Server.Port = port
	}

	if website := os.Getenv(EnvCompanyWebsite); website != "" {
		config.Server.CompanyWebsite = website
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		config.Log.Level = level
	}

	if secret := os.Getenv(EnvSessionSecret); secret != "" {
		config.Sessions.Secret = secret
	}

	if address := os.Getenv(EnvRedisAddress); address != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Address = address
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if driver := os.Getenv(EnvStorageDriver); driver != "" {
		config.Storage.Driver = driver
	}

	if dsn := os.Getenv(EnvStorageDSN); dsn != "" {
		config.Storage.DSN = dsn
	}

	if password := os.Getenv(EnvStoragePassword); password != "" {
		config.Storage.Password = password
	}

	if path := os.Getenv(EnvCertificatePath); path != "" {
		config.Certificate.Path = path
	}

	if username := os.Getenv(EnvAdminUsername); username != "" {
		config.Admin.Username = username
	}

	if hash := os.Getenv(EnvAdminPasswordHash); hash != "" {
		config.Admin.PasswordHash = hash
	}

	return nil
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	if config.Sessions.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	err = config.validateStorageConfig()
	if err != nil {
		return err
	}

	err = config.validateCertificateConfig()
	if err != nil {
		return err
	}

	config.applyArtifactDefaults()

	err = config.validateAdminConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.CompanyWebsite == "" {
		c.Server.CompanyWebsite = DefaultServerConfig.CompanyWebsite
	}

	if err := validateURL(c.Server.CompanyWebsite, "server.company_website"); err != nil {
		return err
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
		if c.Server.Debug.Port == c.Server.Port {
			return fmt.Errorf("server.debug.port must differ from server.port (both are %d)", c.Server.Port)
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		c.Log.Level = strings.ToLower(c.Log.Level)
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else {
		switch c.Sessions.Store {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
		}
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.IdleTimeout <= 0 {
		c.Sessions.IdleTimeout = DefaultSessionConfig.IdleTimeout
	}

	if c.Sessions.Lifetime <= 0 {
		c.Sessions.Lifetime = DefaultSessionConfig.Lifetime
	}

	if c.Sessions.Lifetime < c.Sessions.IdleTimeout {
		return fmt.Errorf("sessions.lifetime (%s) cannot be shorter than sessions.idle_timeout (%s)", c.Sessions.Lifetime, c.Sessions.IdleTimeout)
	}

	if c.Sessions.Secret == "" {
		c.Sessions.Secret = DefaultSessionConfig.Secret
	}

	return nil
}

// UsesDefaultSessionSecret reports whether cookies are signed with the built-in secret.
func (c *Config) UsesDefaultSessionSecret() bool {
	return c.Sessions.Secret == DefaultSessionSecret
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is required when sessions.store is redis")
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}

	if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
		return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
	}

	if c.Redis.SessionIndex < 0 {
		return fmt.Errorf("redis session_index must be non-negative, got %d", c.Redis.SessionIndex)
	}

	const maxRedisDB = 15
	if c.Redis.SessionIndex > maxRedisDB {
		return fmt.Errorf("redis session_index %d exceeds typical maximum of %d", c.Redis.SessionIndex, maxRedisDB)
	}

	return nil
}

func (c *Config) validateStorageConfig() error {
	if c.Storage.Driver == "" {
		c.Storage.Driver = DefaultStorageConfig.Driver
	}

	switch c.Storage.Driver {
	case StorageDriverSQLite:
		if c.Storage.DSN == "" {
			c.Storage.DSN = DefaultStorageConfig.DSN
		}
	case StorageDriverPostgres:
		if c.Storage.DSN != "" {
			return nil
		}

		if c.Storage.Host == "" {
			return fmt.Errorf("storage.host or storage.dsn is required for postgres")
		}

		if c.Storage.Port == 0 {
			c.Storage.Port = DefaultStorageConfig.Port
		}

		if c.Storage.Port < 0 || c.Storage.Port > 65535 {
			return fmt.Errorf("storage.port must be between 1 and 65535, got %d", c.Storage.Port)
		}

		if c.Storage.Database == "" {
			return fmt.Errorf("storage.database is required for postgres")
		}

		if c.Storage.SSLMode == "" {
			c.Storage.SSLMode = DefaultStorageConfig.SSLMode
		}
	default:
		return fmt.Errorf("invalid storage driver: %s, options are 'sqlite' or 'postgres'", c.Storage.Driver)
	}

	return nil
}

func (c *Config) validateCertificateConfig() error {
	if c.Certificate.Path == "" {
		c.Certificate.Path = DefaultCertificateConfig.Path
	}

	if c.Certificate.DownloadName == "" {
		c.Certificate.DownloadName = DefaultCertificateConfig.DownloadName
	}

	if strings.ContainsAny(c.Certificate.DownloadName, `/\"`) {
		return fmt.Errorf("certificate.download_name must be a bare file name, got %q", c.Certificate.DownloadName)
	}

	if c.Certificate.MaxUploadBytes == 0 {
		c.Certificate.MaxUploadBytes = DefaultCertificateConfig.MaxUploadBytes
	}

	if c.Certificate.MaxUploadBytes < 0 {
		return fmt.Errorf("certificate.max_upload_bytes must be positive, got %d", c.Certificate.MaxUploadBytes)
	}

	if c.Certificate.WatchInterval == 0 {
		c.Certificate.WatchInterval = DefaultCertificateConfig.WatchInterval
	}

	if c.Certificate.WatchInterval < time.Minute {
		return fmt.Errorf("certificate.watch_interval must be at least 1m, got %s", c.Certificate.WatchInterval)
	}

	return nil
}

func (c *Config) applyArtifactDefaults() {
	if c.Profile.DisplayName == "" {
		c.Profile.DisplayName = DefaultProfileConfig.DisplayName
	}
	if c.Profile.Description == "" {
		c.Profile.Description = DefaultProfileConfig.Description
	}
	if c.Profile.Organization == "" {
		c.Profile.Organization = DefaultProfileConfig.Organization
	}
	if c.Profile.Identifier == "" {
		c.Profile.Identifier = DefaultProfileConfig.Identifier
	}
	if c.Profile.FileName == "" {
		c.Profile.FileName = DefaultProfileConfig.FileName
	}

	if c.Windows.StoreName == "" {
		c.Windows.StoreName = DefaultWindowsConfig.StoreName
	}
	if c.Windows.StoreLocation == "" {
		c.Windows.StoreLocation = DefaultWindowsConfig.StoreLocation
	}
	if c.Windows.FileName == "" {
		c.Windows.FileName = DefaultWindowsConfig.FileName
	}
}

func (c *Config) validateAdminConfig() error {
	if c.Admin.Username == "" {
		c.Admin.Username = DefaultAdminConfig.Username
	}

	if c.Admin.PasswordHash != "" && !strings.HasPrefix(c.Admin.PasswordHash, "$argon2id$") {
		return fmt.Errorf("admin.password_hash must be an argon2id digest, generate one with the hash-password command")
	}

	return nil
}
