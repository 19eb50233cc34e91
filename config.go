package odp

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey         = "USPTO_API_KEY"
	EnvBaseURL        = "USPTO_BASE_URL"
	EnvTimeout        = "USPTO_TIMEOUT"
	EnvConnectTimeout = "USPTO_CONNECT_TIMEOUT"
	EnvMaxRetries     = "USPTO_MAX_RETRIES"
	EnvRetryDelay     = "USPTO_RETRY_DELAY"
	EnvPTABBaseURL    = "USPTO_PTAB_BASE_URL"
	// EnvHeaders holds comma-separated Name=Value pairs.
	EnvHeaders = "USPTO_HEADERS"
	// EnvRetryStatuses holds comma-separated status codes.
	EnvRetryStatuses = "USPTO_RETRY_STATUS_CODES"
)

// ConfigFromEnv returns DefaultConfig overridden by USPTO_* environment variables.
func ConfigFromEnv() (*Config, error) {
	config := DefaultConfig()
	if err := applyEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

func applyEnv(config *Config) error {
	if v := os.Getenv(EnvAPIKey); v != "" {
		config.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		config.BaseURL = v
	}
	if v := os.Getenv(EnvPTABBaseURL); v != "" {
		config.PTABBaseURL = v
	}
	if v := os.Getenv(EnvHeaders); v != "" {
		headers, err := parseHeaders(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHeaders, err)
		}
		if config.Headers == nil {
			config.Headers = make(map[string]string, len(headers))
		}
		maps.Copy(config.Headers, headers)
	}
	if v := os.Getenv(EnvRetryStatuses); v != "" {
		statuses, err := parseStatuses(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRetryStatuses, err)
		}
		config.RetryStatuses = statuses
	}
	for name, dst := range map[string]*int{
		EnvTimeout:        &config.Timeout,
		EnvConnectTimeout: &config.ConnectTimeout,
		EnvMaxRetries:     &config.MaxRetries,
		EnvRetryDelay:     &config.RetryDelay,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = n
	}
	return nil
}

// parseHeaders reads "Name=Value,Name=Value".
func parseHeaders(v string) (map[string]string, error) {
	headers := make(map[string]string)
	for _, pair := range strings.Split(v, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("header %q is not Name=Value", pair)
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers, nil
}

// parseStatuses reads "429,503".
func parseStatuses(v string) ([]int, error) {
	var statuses []int
	for _, f := range strings.Split(v, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 100 || n > 599 {
			return nil, fmt.Errorf("invalid status code %q", f)
		}
		statuses = append(statuses, n)
	}
	return statuses, nil
}

func splitExt(f string) (string, string) {
	ext := filepath.Ext(f)
	return strings.TrimSuffix(f, ext), strings.TrimPrefix(ext, ".")
}

func unmarshalConfig(ext string, data []byte, out *Config) error {
	switch strings.ToLower(ext) {
	case "yaml", "yml":
		return yaml.Unmarshal(data, out)
	case "json", "json5", "":
		return json5.Unmarshal(data, out)
	}
	return fmt.Errorf("unsupported config format %q", ext)
}

// LoadConfig reads a JSON5 or YAML config file, chosen by extension, on top of
// DefaultConfig. A sibling <name>.local.<ext> file overrides its values, and
// USPTO_* environment variables override both. Neither file needs to exist.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	prefix, ext := splitExt(path)
	localPath := fmt.Sprintf("%s.local.%s", prefix, ext)

	for _, p := range []string{path, localPath} {
		data, err := os.ReadFile(p)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var override Config
		if err := unmarshalConfig(ext, data, &override); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		if err := mergo.Merge(config, override, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge %s: %w", p, err)
		}
		logger().Debug("loaded config file", "path", p)
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}
