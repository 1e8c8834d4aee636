package vnpay

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	EnvSandbox    = "sandbox"
	EnvProduction = "production"

	SandboxHost = "sandbox.vnpayment.vn"
)

var (
	ErrMissingMerchantCode = errors.New("vnpay: merchant code is required")
	ErrMissingHashSecret   = errors.New("vnpay: hash secret is required")
	ErrMissingGatewayURL   = errors.New("vnpay: gateway url is required")
	ErrMissingReturnURL    = errors.New("vnpay: return url is required")
	ErrInvalidEnvironment  = errors.New("vnpay: environment must be sandbox or production")
	ErrInsecureGateway     = errors.New("vnpay: production gateway must be https and not the sandbox host")
)

// Config is the merchant configuration issued by VNPay. It is never
// modified after the Service is constructed.
type Config struct {
	TmnCode     string
	HashSecret  string
	GatewayURL  string
	ReturnURL   string
	IPNURL      string
	Environment string
	// Locale chọn ngôn ngữ cho message khi verify (vn | en)
	Locale string
}

// Validate rejects incomplete configuration. There are no fallback
// credentials: a missing secret is an error in every environment.
func (c Config) Validate() error {
	if strings.TrimSpace(c.TmnCode) == "" {
		return ErrMissingMerchantCode
	}
	if strings.TrimSpace(c.HashSecret) == "" {
		return ErrMissingHashSecret
	}
	if strings.TrimSpace(c.GatewayURL) == "" {
		return ErrMissingGatewayURL
	}
	if strings.TrimSpace(c.ReturnURL) == "" {
		return ErrMissingReturnURL
	}

	switch c.Environment {
	case EnvSandbox:
	case EnvProduction:
		u, err := url.Parse(c.GatewayURL)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInsecureGateway, err)
		}
		if u.Scheme != "https" || strings.EqualFold(u.Hostname(), SandboxHost) {
			return ErrInsecureGateway
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEnvironment, c.Environment)
	}
	return nil
}

// String hides the hash secret so the config can be logged safely.
func (c Config) String() string {
	return fmt.Sprintf("vnpay.Config{TmnCode:%s GatewayURL:%s Environment:%s}", mask(c.TmnCode), c.GatewayURL, c.Environment)
}

func mask(s string) string {
	if len(s) <= 2 {
		return "***"
	}
	return s[:2] + strings.Repeat("*", len(s)-2)
}
