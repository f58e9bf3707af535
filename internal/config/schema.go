package config

import (
	"time"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	Sessions    SessionConfig     `yaml:"sessions"`
	Redis       *RedisConfig      `yaml:"redis"`
	Storage     StorageConfig     `yaml:"storage"`
	Certificate CertificateConfig `yaml:"certificate"`
	Profile     ProfileConfig     `yaml:"profile"`
	Windows     WindowsConfig     `yaml:"windows"`
	Admin       AdminConfig       `yaml:"admin"`
}

type ServerConfig struct {
	Port  int                `yaml:"port"`
	Debug *ServerDebugConfig `yaml:"debug"`

	// CompanyWebsite is where clients are sent once they finish, unless they arrived with
	// their own redirect target.
	CompanyWebsite string `yaml:"company_website"`

	// TrustProxyHeaders makes client addresses come from X-Forwarded-For and friends. Leave it
	// off unless the portal sits behind a reverse proxy.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

var DefaultServerConfig = ServerConfig{
	Port:           3000,
	CompanyWebsite: "https://www.unam.edu.na/",
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	// File is an optional path that receives a copy of every record.
	File string `yaml:"file"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:3000"},
	AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders: []string{"Content-Type"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store       string        `yaml:"store"`
	Name        string        `yaml:"name"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	Lifetime    time.Duration `yaml:"lifetime"`
	Secure      bool          `yaml:"secure"`

	// Secret signs the session cookie.
	Secret string `yaml:"secret"`
}

const DefaultSessionSecret = "cert-portal-secret-key"

var DefaultSessionConfig = SessionConfig{
	Store:       "memory",
	Name:        "certportal_session",
	IdleTimeout: 30 * time.Minute,
	Lifetime:    24 * time.Hour,
	Secure:      false,
	Secret:      DefaultSessionSecret,
}

type RedisConfig struct {
	Address      string `yaml:"address"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	SessionIndex int    `yaml:"session_index"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"` // "sqlite" or "postgres"
	DSN    string `yaml:"dsn"`

	// Used to build a postgres DSN when DSN is empty.
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
}

const (
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

var DefaultStorageConfig = StorageConfig{
	Driver:  StorageDriverSQLite,
	DSN:     "file:database.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite",
	Port:    5432,
	SSLMode: "prefer",
}

type CertificateConfig struct {
	Path           string `yaml:"path"`
	DownloadName   string `yaml:"download_name"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`

	// WatchInterval is how often the served certificate is re-inspected for the expiry metrics.
	WatchInterval time.Duration `yaml:"watch_interval"`
}

var DefaultCertificateConfig = CertificateConfig{
	Path:           "certificates/Fortinet_CA_SSL.cer",
	DownloadName:   "Fortinet_CA_SSL.cer",
	MaxUploadBytes: 1 << 20,
	WatchInterval:  time.Hour,
}

type ProfileConfig struct {
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	Organization string `yaml:"organization"`
	Identifier   string `yaml:"identifier"`
	FileName     string `yaml:"file_name"`
}

var DefaultProfileConfig = ProfileConfig{
	DisplayName:  "UNAM Network Certificate",
	Description:  "Required security certificate for University of Namibia network access",
	Organization: "University of Namibia",
	Identifier:   "na.edu.unam.fortinet-ca",
	FileName:     "UNAM-Certificate.mobileconfig",
}

type WindowsConfig struct {
	StoreName     string `yaml:"store_name"`
	StoreLocation string `yaml:"store_location"`
	FileName      string `yaml:"file_name"`
}

var DefaultWindowsConfig = WindowsConfig{
	StoreName:     "Root",
	StoreLocation: "LocalMachine",
	FileName:      "Install-UNAM-Certificate.ps1",
}

type AdminConfig struct {
	Username string `yaml:"username"`

	// PasswordHash is an argon2id digest, see the hash-password command.
	PasswordHash string `yaml:"password_hash"`
}

var DefaultAdminConfig = AdminConfig{
	Username: "admin",
}

// Enabled reports whether the admin routes should be mounted.
func (a AdminConfig) Enabled() bool {
	return a.PasswordHash != ""
}
