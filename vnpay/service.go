package vnpay

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const (
	Version   = "2.1.0"
	Command   = "pay"
	CurrCode  = "VND"
	OrderType = "other"

	DateLayout = "20060102150405"
)

// PaymentRequest là thông tin một giao dịch do caller cung cấp.
// Amount tính bằng VND; service tự nhân 100 theo quy ước của VNPay.
type PaymentRequest struct {
	Amount           int64
	OrderDescription string
	OrderID          string
	ClientIP         string
	BankCode         string
	Locale           string
}

// VerificationResult is the verdict on a callback. Data is only set
// when IsValid is true; IsSuccess is never true without IsValid.
type VerificationResult struct {
	IsValid   bool              `json:"isValid"`
	IsSuccess bool              `json:"isSuccess"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data,omitempty"`
}

// OrderID returns vnp_TxnRef from a verified callback.
func (r VerificationResult) OrderID() string {
	if !r.IsValid {
		return ""
	}
	return r.Data["vnp_TxnRef"]
}

// ResponseCode returns vnp_ResponseCode from a verified callback.
func (r VerificationResult) ResponseCode() string {
	if !r.IsValid {
		return ""
	}
	return r.Data["vnp_ResponseCode"]
}

type Option func(*Service)

// WithClock overrides time.Now for vnp_CreateDate.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service builds signed payment URLs and verifies callbacks. It holds
// only immutable configuration and is safe for concurrent use.
type Service struct {
	config Config
	now    func() time.Time
}

func New(cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Locale == "" {
		cfg.Locale = LocaleVN
	}
	s := &Service{config: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) GatewayURL() string {
	return s.config.GatewayURL
}

func (s *Service) Environment() string {
	return s.config.Environment
}

// Params returns the signed field mapping for req, vnp_SecureHash included.
func (s *Service) Params(req PaymentRequest) map[string]string {
	locale := req.Locale
	if locale == "" {
		locale = LocaleVN
	}

	params := map[string]string{
		"vnp_Version":    Version,
		"vnp_Command":    Command,
		"vnp_TmnCode":    s.config.TmnCode,
		"vnp_Amount":     strconv.FormatInt(req.Amount*100, 10),
		"vnp_CurrCode":   CurrCode,
		"vnp_TxnRef":     req.OrderID,
		"vnp_OrderInfo":  req.OrderDescription,
		"vnp_OrderType":  OrderType,
		"vnp_Locale":     locale,
		"vnp_ReturnUrl":  s.config.ReturnURL,
		"vnp_IpAddr":     req.ClientIP,
		"vnp_CreateDate": FormatDate(s.now()),
	}
	if req.BankCode != "" {
		params["vnp_BankCode"] = req.BankCode
	}

	params[SecureHashKey] = Sign(params, s.config.HashSecret)
	return params
}

// CreatePaymentURL trả về URL redirect tới trang thanh toán của VNPay.
func (s *Service) CreatePaymentURL(req PaymentRequest) string {
	query := url.Values{}
	for k, v := range s.Params(req) {
		query.Set(k, v)
	}
	return s.config.GatewayURL + "?" + query.Encode()
}

// VerifyReturnURL checks the signature of callback params received on
// the return URL or the IPN endpoint. params is not modified.
func (s *Service) VerifyReturnURL(params map[string]string) VerificationResult {
	received, ok := params[SecureHashKey]
	if !ok || received == "" {
		return s.invalid()
	}

	fields := make(map[string]string, len(params))
	for k, v := range params {
		if k == SecureHashKey {
			continue
		}
		fields[k] = v
	}

	if !signatureEqual(Sign(fields, s.config.HashSecret), received) {
		return s.invalid()
	}

	code := fields["vnp_ResponseCode"]
	data := make(map[string]string, len(params))
	for k, v := range params {
		data[k] = v
	}

	return VerificationResult{
		IsValid:   true,
		IsSuccess: code == ResponseCodeSuccess,
		Message:   ResponseMessage(code, s.config.Locale),
		Data:      data,
	}
}

// VerifyQuery is VerifyReturnURL for url.Values, keeping the first value
// of each key.
func (s *Service) VerifyQuery(query url.Values) VerificationResult {
	return s.VerifyReturnURL(Flatten(query))
}

func (s *Service) invalid() VerificationResult {
	return VerificationResult{
		Message: invalidSignatureMessage.in(s.config.Locale),
	}
}

// Flatten keeps the first value of every key.
func Flatten(query url.Values) map[string]string {
	params := make(map[string]string, len(query))
	for k, v := range query {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

// StringifyParams chuyển body JSON về dạng string như trên query string.
// Số được in nguyên dạng (200000000, không phải 2e+08), null bị bỏ qua.
func StringifyParams(body map[string]any) map[string]string {
	params := make(map[string]string, len(body))
	for k, v := range body {
		switch val := v.(type) {
		case nil:
		case string:
			params[k] = val
		case float64:
			params[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			params[k] = strconv.FormatBool(val)
		default:
			params[k] = fmt.Sprint(val)
		}
	}
	return params
}
