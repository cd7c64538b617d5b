package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/studyhub/internal/flagx"
	"github.com/dmitrijs2005/studyhub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// slice fields stay nil when absent so that only keys present in the file
// overwrite earlier values.
type JsonConfig struct {
	StoreDriver        *string         `json:"store_driver"`
	StoreDSN           *string         `json:"store_dsn"`
	HTTPAddr           *string         `json:"http_addr"`
	CORSAllowedOrigins []string        `json:"cors_allowed_origins"`
	AIBaseURL          *string         `json:"ai_base_url"`
	AIModel            *string         `json:"ai_model"`
	VideoEndpoint      *string         `json:"video_endpoint"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	S3Region           *string         `json:"s3_region"`
	S3BaseEndpoint     *string         `json:"s3_base_endpoint"`
	S3AccessKey        *string         `json:"s3_access_key"`
	S3SecretKey        *string         `json:"s3_secret_key"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing happens. Read or unmarshal
// errors panic; the caller decides whether to recover.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.JsonConfigPath(args)
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.StoreDriver, jc.StoreDriver)
	setString(&cfg.StoreDSN, jc.StoreDSN)
	setString(&cfg.HTTPAddr, jc.HTTPAddr)
	setString(&cfg.AIBaseURL, jc.AIBaseURL)
	setString(&cfg.AIModel, jc.AIModel)
	setString(&cfg.VideoEndpoint, jc.VideoEndpoint)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)

	if jc.CORSAllowedOrigins != nil {
		cfg.CORSAllowedOrigins = jc.CORSAllowedOrigins
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
