package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Geocode configures the provider fallback chain
	Geocode *GeocodeConfig `json:"geocode" yaml:"geocode"`

	// Backend configures the remote address API client
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Availability configures the service-area validator
	Availability *AvailabilityConfig `json:"availability" yaml:"availability"`

	// Storage configures the local durable address cache
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Location configures current-position detection
	Location *LocationConfig `json:"location" yaml:"location"`

	// Watchdog configures the session/liveness recovery heuristics
	Watchdog *WatchdogConfig `json:"watchdog" yaml:"watchdog"`

	// Referral configures referral share QR codes
	Referral *ReferralConfig `json:"referral" yaml:"referral"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeocodeConfig defines the geocoding provider chain configuration
type GeocodeConfig struct {
	// Primary mapping provider (suggestion/place-details/geocode API)
	Google struct {
		APIKey      string        `json:"apiKey" yaml:"apiKey"`
		BaseURL     string        `json:"baseUrl" yaml:"baseUrl"`
		Timeout     time.Duration `json:"timeout" yaml:"timeout"`
		RegionCodes []string      `json:"regionCodes" yaml:"regionCodes"`
	} `json:"google" yaml:"google"`

	// Free reverse-geocoding fallback tier
	OpenCage struct {
		APIKey  string        `json:"apiKey" yaml:"apiKey"`
		BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
		Timeout time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"opencage" yaml:"opencage"`

	// Open-data fallback tier, keyless
	Nominatim struct {
		BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
		Timeout time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"nominatim" yaml:"nominatim"`

	// MaxSuggestions caps the merged suggestion list returned to clients
	MaxSuggestions int `json:"maxSuggestions" yaml:"maxSuggestions"`

	// ProbeDeltaDegrees is the cardinal offset used by street-level retries
	ProbeDeltaDegrees float64 `json:"probeDeltaDegrees" yaml:"probeDeltaDegrees"`
}

// BackendConfig defines the remote address API client configuration
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// AvailabilityConfig defines service-area validation configuration
type AvailabilityConfig struct {
	BaseURL  string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	Debounce time.Duration `json:"debounce" yaml:"debounce"`
}

// StorageConfig defines the local durable store configuration
type StorageConfig struct {
	// Provider type: "memory", "sqlite" or "redis"
	Provider string `json:"provider" yaml:"provider"`

	SQLite struct {
		Path string `json:"path" yaml:"path"`
	} `json:"sqlite" yaml:"sqlite"`

	Redis struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
	} `json:"redis" yaml:"redis"`
}

// LocationConfig defines current-position detection configuration
type LocationConfig struct {
	// Target accuracy radius in meters; detection stops early below this
	TargetAccuracyMeters float64 `json:"targetAccuracyMeters" yaml:"targetAccuracyMeters"`

	// Number of high-accuracy attempts after the fast first fix
	HighAccuracyAttempts int `json:"highAccuracyAttempts" yaml:"highAccuracyAttempts"`

	FastTimeout     time.Duration `json:"fastTimeout" yaml:"fastTimeout"`
	AccurateTimeout time.Duration `json:"accurateTimeout" yaml:"accurateTimeout"`

	// Regional default adopted when every detection tier fails
	FallbackLabel string  `json:"fallbackLabel" yaml:"fallbackLabel"`
	FallbackLat   float64 `json:"fallbackLat" yaml:"fallbackLat"`
	FallbackLng   float64 `json:"fallbackLng" yaml:"fallbackLng"`
}

// WatchdogConfig defines liveness/session recovery configuration
type WatchdogConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Poll interval of the liveness probe
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Consecutive failed probes before recovery starts
	FailureThreshold int `json:"failureThreshold" yaml:"failureThreshold"`

	// Window after an intentional logout during which session restore is suppressed
	LogoutSuppression time.Duration `json:"logoutSuppression" yaml:"logoutSuppression"`
}

// ReferralConfig defines referral QR code configuration
type ReferralConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
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
			// Example: GEOCODE_MAXSUGGESTIONS -> geocode.maxSuggestions
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
	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Geocode == nil {
		cfg.Geocode = &GeocodeConfig{}
	}
	if cfg.Geocode.MaxSuggestions <= 0 {
		cfg.Geocode.MaxSuggestions = 8
	}
	if cfg.Geocode.ProbeDeltaDegrees <= 0 {
		cfg.Geocode.ProbeDeltaDegrees = 0.0001
	}

	if cfg.Availability == nil {
		cfg.Availability = &AvailabilityConfig{}
	}
	if cfg.Availability.Debounce <= 0 {
		cfg.Availability.Debounce = 500 * time.Millisecond
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{Provider: "memory"}
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = "memory"
	}

	if cfg.Location == nil {
		cfg.Location = &LocationConfig{}
	}
	if cfg.Location.TargetAccuracyMeters <= 0 {
		cfg.Location.TargetAccuracyMeters = 20
	}
	if cfg.Location.HighAccuracyAttempts <= 0 {
		cfg.Location.HighAccuracyAttempts = 2
	}
	if cfg.Location.FastTimeout <= 0 {
		cfg.Location.FastTimeout = 5 * time.Second
	}
	if cfg.Location.AccurateTimeout <= 0 {
		cfg.Location.AccurateTimeout = 15 * time.Second
	}

	if cfg.Watchdog == nil {
		cfg.Watchdog = &WatchdogConfig{}
	}
	if cfg.Watchdog.Interval <= 0 {
		cfg.Watchdog.Interval = 8 * time.Second
	}
	if cfg.Watchdog.FailureThreshold <= 0 {
		cfg.Watchdog.FailureThreshold = 2
	}
	if cfg.Watchdog.LogoutSuppression <= 0 {
		cfg.Watchdog.LogoutSuppression = 30 * time.Second
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
