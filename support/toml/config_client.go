package toml

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/coinmetro-go/cmapi/support/utils"
)

// environment variables that take precedence over the values in the config file
const (
	EnvEmail        = "COINMETRO_EMAIL"
	EnvPassword     = "COINMETRO_PASSWORD"
	EnvCaptchaToken = "COINMETRO_CAPTCHA_TOKEN"
	EnvOTP          = "COINMETRO_OTP"
	EnvBaseURL      = "COINMETRO_BASE_URL"
)

// ClientConfig is the toml representation of the client's settings and login credentials
type ClientConfig struct {
	BaseURL        string `valid:"-" toml:"BASE_URL"`
	DeviceID       string `valid:"-" toml:"DEVICE_ID"`
	OTP            string `valid:"-" toml:"OTP"`
	TimeoutSeconds int    `valid:"-" toml:"TIMEOUT_SECONDS"`
	LogLevel       string `valid:"-" toml:"LOG_LEVEL"`
	Email          string `valid:"-" toml:"EMAIL"`
	Password       string `valid:"-" toml:"PASSWORD"`
	CaptchaToken   string `valid:"-" toml:"CAPTCHA_TOKEN"`
}

// String impl.
func (c ClientConfig) String() string {
	return utils.StructString(c, 0, map[string]func(interface{}) interface{}{
		"OTP":           utils.HideNonEmpty,
		"PASSWORD":      utils.HideNonEmpty,
		"CAPTCHA_TOKEN": utils.HideNonEmpty,
	})
}

// Timeout converts TimeoutSeconds, zero means no timeout
func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks the values that cannot be defaulted
func (c ClientConfig) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("TIMEOUT_SECONDS cannot be negative: %d", c.TimeoutSeconds)
	}
	return nil
}

// ValidateCredentials checks that everything needed to log in is present
func (c ClientConfig) ValidateCredentials() error {
	if c.Email == "" || c.Password == "" {
		return fmt.Errorf("EMAIL and PASSWORD (or %s and %s) are required to log in", EnvEmail, EnvPassword)
	}
	return nil
}

// ApplyEnv overrides fields with any of the COINMETRO_* environment variables that are set
func (c *ClientConfig) ApplyEnv() {
	overrides := map[string]*string{
		EnvEmail:        &c.Email,
		EnvPassword:     &c.Password,
		EnvCaptchaToken: &c.CaptchaToken,
		EnvOTP:          &c.OTP,
		EnvBaseURL:      &c.BaseURL,
	}
	for key, field := range overrides {
		if value, ok := os.LookupEnv(key); ok {
			*field = value
		}
	}
}

// LoadEnvFiles loads .env style files into the process environment without overriding variables that are already set.
// Missing files are skipped so that deployments can rely on the real environment alone.
func LoadEnvFiles(filenames ...string) error {
	for _, f := range filenames {
		if _, e := os.Stat(f); os.IsNotExist(e) {
			continue
		}

		e := godotenv.Load(f)
		if e != nil {
			return fmt.Errorf("could not load env file '%s': %s", f, e)
		}
	}
	return nil
}

// ReadClientConfig reads the config file at filePath and applies environment overrides
func ReadClientConfig(filePath string) (*ClientConfig, error) {
	var cfg ClientConfig
	_, e := toml.DecodeFile(filePath, &cfg)
	if e != nil {
		return nil, fmt.Errorf("could not parse the config file '%s': %s", filePath, e)
	}

	cfg.ApplyEnv()
	e = cfg.Validate()
	if e != nil {
		return nil, fmt.Errorf("invalid config file '%s': %s", filePath, e)
	}
	return &cfg, nil
}
