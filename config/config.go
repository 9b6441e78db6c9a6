/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package config

import (
	"bytes"
	"fmt"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

const (
	defaultPort           = 3000
	defaultMaxRequestSize = 52428800
	defaultUpdateInterval = 60
	defaultMaxScanSize    = 52428800
	defaultChunkSize      = 8192
	defaultWindowSize     = 1024
	defaultWorkers        = 1
	defaultAuditEntries   = 1000
	defaultSMSPerHour     = 20
	defaultSMSPerMinute   = 4
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
	AuditFile    = "file"
	AuditRedis   = "redis"
)

type AppConfig struct {
	Aws          AWS
	Scanner      Scanner
	Storage      Storage
	Redis        Redis
	Audit        Audit
	Notification Notification
	HTTPServer   HTTPServer
}

type HTTPServer struct {
	AuthorizationKeys []string
	Profiler          bool
	Swagger           bool
	Metrics           bool
	MaxRequestSize    int
	Port              int
}

type AWS struct {
	Queue        string
	Region       string
	Resolver     string
	UploadBucket string
}

// Scanner holds the defaults of the runtime settings. Values saved through the settings
// endpoint take precedence over these.
type Scanner struct {
	DangerousExtensions []string
	DangerousMimeTypes  []string
	MaxScanSize         uint64
	Signatures          map[string]string
	EnableScanning      bool
	EnableAutoDelete    bool
	EnableNotifications bool
	EnableLogging       bool
	ChunkSize           int
	WindowSize          int
	Workers             int
	DebugLog            bool
}

type Storage struct {
	Backend string
	Dir     string
}

type Redis struct {
	URL      string
	Password string
	UseTLS   bool
}

type Audit struct {
	Backend    string
	Path       string
	MaxEntries int64
}

type Notification struct {
	UpdateInterval int
	Slack          Slack
	Phones         []string
	SMSPerHour     int
	SMSPerMinute   int
}

type Slack struct {
	ChannelID string
	Webhook   string
}

func NewConfig() *AppConfig {
	return &AppConfig{
		Aws: AWS{
			Region: "us-east-1",
		},
		Scanner: Scanner{
			DangerousExtensions: []string{"exe", "bat", "cmd", "scr", "js", "vbs", "dll", "ps1", "reg", "msi", "com"},
			DangerousMimeTypes:  []string{"application/x-msdownload", "application/x-ms-installer", "application/javascript"},
			MaxScanSize:         defaultMaxScanSize,
			Signatures: map[string]string{
				"eicar": "58354f2150254041505b345c505a58353428505e2937434329377d2445494341522d5354414e444152442d414e544956495255532d544553542d46494c452124482b482a",
			},
			EnableScanning:      true,
			EnableAutoDelete:    true,
			EnableNotifications: true,
			EnableLogging:       true,
			ChunkSize:           defaultChunkSize,
			WindowSize:          defaultWindowSize,
			Workers:             defaultWorkers,
		},
		Storage: Storage{
			Backend: StorageLocal,
			Dir:     "/tmp/uploads",
		},
		Audit: Audit{
			Backend:    AuditFile,
			Path:       "/tmp/upload-sentry/audit.log",
			MaxEntries: defaultAuditEntries,
		},
		Notification: Notification{
			UpdateInterval: defaultUpdateInterval,
			SMSPerHour:     defaultSMSPerHour,
			SMSPerMinute:   defaultSMSPerMinute,
		},
		HTTPServer: HTTPServer{
			Port:           defaultPort,
			MaxRequestSize: defaultMaxRequestSize,
		},
	}
}

func validateConfig(config AppConfig) error {
	if config.Redis.URL == "" {
		return fmt.Errorf("no Redis URL specified")
	}

	if config.Aws.Region == "" {
		return fmt.Errorf("no AWS region specified")
	}

	switch config.Storage.Backend {
	case StorageLocal:
		if config.Storage.Dir == "" {
			return fmt.Errorf("no storage directory specified")
		}
	case StorageS3:
		if config.Aws.UploadBucket == "" {
			return fmt.Errorf("no upload bucket specified for s3 storage")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}

	if config.Audit.Backend != AuditFile && config.Audit.Backend != AuditRedis {
		return fmt.Errorf("unknown audit backend %q", config.Audit.Backend)
	}

	if config.Scanner.Workers <= 0 {
		return fmt.Errorf("scanner workers must be positive")
	}

	return nil
}

// see supershal approach https://github.com/spf13/viper/issues/188
func LoadConfig() (AppConfig, error) {
	const keyDelimiter = "/"
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	b, err := yaml.Marshal(NewConfig())
	if err != nil {
		return AppConfig{}, err
	}

	defaultConfig := bytes.NewReader(b)

	v.AddConfigPath(os.Getenv("CONFIG_DIR"))
	v.AddConfigPath("../resources/")
	v.AddConfigPath(".")
	v.AddConfigPath("/app/data/")
	v.AddConfigPath("/app/config/")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.MergeConfig(defaultConfig); err != nil {
		return AppConfig{}, err
	}

	// If file not found, return error
	if err := v.MergeInConfig(); err != nil {
		return AppConfig{}, err
	}

	// tell viper to overwrite env variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
	// refresh configuration with all merged values
	config := AppConfig{}
	err = v.Unmarshal(&config)

	if err != nil {
		return AppConfig{}, err
	}

	err = validateConfig(config)
	if err != nil {
		return AppConfig{}, err
	}

	return config, nil
}
