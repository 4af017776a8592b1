package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging         LoggingConfig         `yaml:"logging"`
	HTTPAddr        string                `yaml:"http_addr"`
	GeminiModel     string                `yaml:"gemini_model"`
	ImageModel      string                `yaml:"image_model"`
	GenerationQuota GenerationQuotaConfig `yaml:"generation_quota"`
	Storage         StorageConfig         `yaml:"storage"`

	// Secrets and deployment endpoints come from the environment, not YAML.
	GeminiAPIKey string `yaml:"-"`
	MongoURI     string `yaml:"-"`
	MongoDBName  string `yaml:"-"`
	KafkaBrokers string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// GenerationQuotaConfig defines rate/daily limits for article generation
// calls against the text-completion provider. Zero or negative values mean
// no limit in that direction.
type GenerationQuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

// StorageConfig selects where generated article images are persisted.
// Mode is "file" (local directory) or "minio" (object storage).
type StorageConfig struct {
	Mode  string      `yaml:"mode"`
	Dir   string      `yaml:"dir"`
	MinIO MinIOConfig `yaml:"minio"`
}

type MinIOConfig struct {
	Endpoint string `yaml:"endpoint"`
	Bucket   string `yaml:"bucket"`
	UseSSL   bool   `yaml:"use_ssl"`
	Region   string `yaml:"region"`

	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.MongoURI = os.Getenv("MONGO_URI")
	c.MongoDBName = os.Getenv("MONGO_DB_NAME")
	c.KafkaBrokers = os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	c.Storage.MinIO.AccessKey = os.Getenv("MINIO_ACCESS_KEY")
	c.Storage.MinIO.SecretKey = os.Getenv("MINIO_SECRET_KEY")

	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}
	if c.Storage.Mode == "" {
		c.Storage.Mode = "file"
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = "data/images"
	}

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
