package adyen_soap_recurring

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Environment represents the Adyen platform (test or live).
type Environment string

const (
	EnvTest Environment = "test"
	EnvLive Environment = "live"
)

// endpointTemplate is the Recurring SOAP service endpoint, parameterised by environment.
const endpointTemplate = "https://pal-%s.adyen.com/pal/servlet/soap/Recurring"

const defaultTimeout = 30 * time.Second

// Config holds the credentials and settings needed to interact with
// the Adyen Recurring SOAP service.
type Config struct {
	// Username and Password are the web service user credentials (HTTP basic auth).
	Username string
	Password string

	// Env selects the test or live platform. Defaults to test.
	Env Environment

	// BaseURL optionally overrides the SOAP endpoint URL.
	// When empty, the URL is derived from Env.
	BaseURL string

	// P12Path optionally points to a client certificate, either a P12/PFX file
	// or a PEM file holding both certificate and private key.
	P12Path string

	// P12Password protects the P12 file. Unused for PEM.
	P12Password string

	// SignRequests adds a WS-Security signature over the SOAP body,
	// made with the client certificate.
	SignRequests bool

	// Timeout bounds a whole request/response exchange. Defaults to 30s.
	Timeout time.Duration

	// Logger receives operation logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Validate checks that the required configuration fields are present.
func (c Config) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("adyen_soap_recurring: Username is required")
	}
	if c.Password == "" {
		return fmt.Errorf("adyen_soap_recurring: Password is required")
	}
	if c.Env != "" && c.Env != EnvTest && c.Env != EnvLive {
		return fmt.Errorf("adyen_soap_recurring: unknown environment %q", c.Env)
	}
	if c.SignRequests && c.P12Path == "" {
		return fmt.Errorf("adyen_soap_recurring: SignRequests requires P12Path")
	}
	return nil
}

// EndpointURL returns the Recurring SOAP endpoint for the configured environment.
func (c Config) EndpointURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Env == EnvLive {
		return fmt.Sprintf(endpointTemplate, EnvLive)
	}
	return fmt.Sprintf(endpointTemplate, EnvTest)
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}

func (c Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

// LoadConfigFromEnv creates a Config from environment variables:
//
//	ADYEN_API_USERNAME   – web service user (required)
//	ADYEN_API_PASSWORD   – web service password (required)
//	ADYEN_ENV            – "test" (default) or "live"
//	ADYEN_RECURRING_URL  – optional SOAP endpoint override
//	ADYEN_P12_PATH       – optional client certificate (P12 or PEM)
//	ADYEN_P12_PASSWORD   – P12 file password
//	ADYEN_SIGN_REQUESTS  – "true" to sign request bodies
//	ADYEN_TIMEOUT        – request timeout, e.g. "45s"
func LoadConfigFromEnv() Config {
	return configFromEnv()
}

// LoadConfigFromDotEnv loads environment variables from a .env file and then
// reads the Config from them. If the file does not exist it silently falls
// back to the current process environment.
func LoadConfigFromDotEnv(filenames ...string) Config {
	// godotenv.Load does NOT override existing env vars.
	_ = godotenv.Load(filenames...)
	return configFromEnv()
}

func configFromEnv() Config {
	env := EnvTest
	if os.Getenv("ADYEN_ENV") == string(EnvLive) {
		env = EnvLive
	}

	return Config{
		Username:     os.Getenv("ADYEN_API_USERNAME"),
		Password:     os.Getenv("ADYEN_API_PASSWORD"),
		Env:          env,
		BaseURL:      os.Getenv("ADYEN_RECURRING_URL"),
		P12Path:      os.Getenv("ADYEN_P12_PATH"),
		P12Password:  os.Getenv("ADYEN_P12_PASSWORD"),
		SignRequests: cast.ToBool(os.Getenv("ADYEN_SIGN_REQUESTS")),
		Timeout:      cast.ToDuration(os.Getenv("ADYEN_TIMEOUT")),
	}
}
