package config

import (
	"os"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime settings for StudyHub.
//
// VideoEndpoint overrides the YouTube API root; empty means the library
// default. S3 settings are only used when a document source is an s3:// URI.
type Config struct {
	StoreDriver        string
	StoreDSN           string
	HTTPAddr           string
	CORSAllowedOrigins []string
	AIBaseURL          string
	AIModel            string
	VideoEndpoint      string
	RequestTimeout     time.Duration
	S3Region           string
	S3BaseEndpoint     string
	S3AccessKey        string
	S3SecretKey        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreDriver = DriverSQLite
	c.StoreDSN = "studyhub.db"
	c.HTTPAddr = "127.0.0.1:8088"
	c.CORSAllowedOrigins = nil
	c.AIBaseURL = "https://api.deepseek.com/v1"
	c.AIModel = "deepseek-chat"
	c.VideoEndpoint = ""
	c.RequestTimeout = 60 * time.Second
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.S3AccessKey = ""
	c.S3SecretKey = ""
}

// LoadConfig constructs a Config from defaults, the environment, an optional
// JSON file and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
