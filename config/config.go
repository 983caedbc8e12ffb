package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// MaxRequestBodySize accepts humanized sizes such as "100KB" or "6MB".
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Geocoding configuration for the Nominatim proxy
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Uploads configuration for shop and offer images
	Uploads *UploadsConfig `json:"uploads" yaml:"uploads"`

	// Offers configuration for catalog metadata served to the dashboard
	Offers *OffersConfig `json:"offers" yaml:"offers"`

	// QRCode configuration for offer QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeocodingConfig defines the upstream geocoding provider and the local
// throttle and cache applied in front of it.
type GeocodingConfig struct {
	// Nominatim base URL, e.g. https://nominatim.openstreetmap.org
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// User-Agent sent upstream; Nominatim's usage policy requires one.
	UserAgent string `json:"userAgent" yaml:"userAgent"`

	// Minimum interval between upstream requests per instance.
	ThrottleInterval time.Duration `json:"throttleInterval" yaml:"throttleInterval"`

	// How long resolved results stay cached.
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`

	// Upstream request timeout.
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// UploadsConfig defines storage and validation for uploaded images.
type UploadsConfig struct {
	// Bucket URL in gocloud form, e.g. file:///var/lib/closecart/uploads
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public base URL prefixed to stored keys when building image URLs.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// Maximum accepted upload size in bytes.
	MaxBytes int64 `json:"maxBytes" yaml:"maxBytes"`

	// Accepted MIME types for image uploads.
	AllowedMIMETypes []string `json:"allowedMimeTypes" yaml:"allowedMimeTypes"`
}

// OffersConfig defines the offer catalog metadata exposed to the dashboard.
type OffersConfig struct {
	Categories      []string `json:"categories" yaml:"categories"`
	RecommendedTags []string `json:"recommendedTags" yaml:"recommendedTags"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = "closecart/1.0"
	}
	if cfg.Geocoding.ThrottleInterval <= 0 {
		// Nominatim's usage policy caps at one request per second.
		cfg.Geocoding.ThrottleInterval = 1100 * time.Millisecond
	}
	if cfg.Geocoding.CacheTTL <= 0 {
		cfg.Geocoding.CacheTTL = 24 * time.Hour
	}
	if cfg.Geocoding.RequestTimeout <= 0 {
		cfg.Geocoding.RequestTimeout = 10 * time.Second
	}

	if cfg.Uploads == nil {
		cfg.Uploads = &UploadsConfig{}
	}
	if cfg.Uploads.MaxBytes <= 0 {
		cfg.Uploads.MaxBytes = 5 << 20
	}
	if len(cfg.Uploads.AllowedMIMETypes) == 0 {
		cfg.Uploads.AllowedMIMETypes = []string{
			"image/jpeg", "image/png", "image/jpg", "image/gif", "image/webp",
		}
	}

	if cfg.Offers == nil {
		cfg.Offers = &OffersConfig{}
	}
	if len(cfg.Offers.Categories) == 0 {
		cfg.Offers.Categories = []string{
			"Food & Beverage", "Retail", "Services", "Entertainment", "Health & Beauty", "Other",
		}
	}
	if len(cfg.Offers.RecommendedTags) == 0 {
		cfg.Offers.RecommendedTags = []string{
			"discount", "new", "limited-time", "weekend", "seasonal", "clearance", "bundle", "loyalty",
		}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
