package currency

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultExchangeRateURL = "https://api.exchangerate-api.com"
	DefaultCoinCapURL      = "https://api.coincap.io"

	CacheDuration    = 5 * time.Minute
	FallbackVndToUsd = 1.0 / 24000 // ~24.000 VND = 1 USD
	FallbackEthPrice = 2500.0      // USD
)

var ErrInvalidAmount = errors.New("amount must be greater than 0")

type exchangeRateResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

type coinCapResponse struct {
	Data struct {
		ID                string `json:"id"`
		Symbol            string `json:"symbol"`
		PriceUsd          string `json:"priceUsd"`
		ChangePercent24Hr string `json:"changePercent24Hr"`
	} `json:"data"`
}

type ConversionResult struct {
	VndAmount    float64   `json:"vndAmount"`
	UsdAmount    float64   `json:"usdAmount"`
	EthAmount    float64   `json:"ethAmount"`
	EthPriceUsd  float64   `json:"ethPriceUsd"`
	VndToUsdRate float64   `json:"vndToUsdRate"`
	LastUpdate   time.Time `json:"lastUpdate"`
	FormattedEth string    `json:"formattedEth"`
	FormattedVnd string    `json:"formattedVnd"`
	FormattedUsd string    `json:"formattedUsd"`
}

type Rates struct {
	VndToUsd     float64   `json:"vndToUsd"`
	VndPerUsd    float64   `json:"vndPerUsd"`
	EthPriceUsd  float64   `json:"ethPriceUsd"`
	EthChange24h float64   `json:"ethChange24h"`
	LastUpdate   time.Time `json:"lastUpdate"`
}

// Converter đổi VND sang ETH qua USD, cache tỷ giá 5 phút.
// Lỗi gọi API thì dùng tỷ giá dự phòng.
type Converter struct {
	client          *resty.Client
	exchangeRateURL string
	coinCapURL      string
	now             func() time.Time

	mu    sync.Mutex
	rates *Rates
}

type Option func(*Converter)

func WithBaseURLs(exchangeRateURL, coinCapURL string) Option {
	return func(c *Converter) {
		c.exchangeRateURL = strings.TrimRight(exchangeRateURL, "/")
		c.coinCapURL = strings.TrimRight(coinCapURL, "/")
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Converter) { c.now = now }
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		client: resty.New().
			SetTimeout(10*time.Second).
			SetHeader("Accept", "application/json"),
		exchangeRateURL: DefaultExchangeRateURL,
		coinCapURL:      DefaultCoinCapURL,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) fetchVndToUsd(ctx context.Context) (float64, float64, error) {
	var body exchangeRateResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(c.exchangeRateURL + "/v4/latest/USD")
	if err != nil {
		return 0, 0, err
	}
	if resp.IsError() {
		return 0, 0, fmt.Errorf("exchangerate-api: HTTP %d", resp.StatusCode())
	}
	vnd := body.Rates["VND"]
	if vnd <= 0 {
		return 0, 0, errors.New("VND rate not found in response")
	}
	return 1 / vnd, vnd, nil
}

func (c *Converter) fetchEthPrice(ctx context.Context) (float64, float64, error) {
	var body coinCapResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(c.coinCapURL + "/v2/assets/ethereum")
	if err != nil {
		return 0, 0, err
	}
	if resp.IsError() {
		return 0, 0, fmt.Errorf("coincap: HTTP %d", resp.StatusCode())
	}
	price, err := strconv.ParseFloat(body.Data.PriceUsd, 64)
	if err != nil || price <= 0 {
		return 0, 0, errors.New("ETH price not found in response")
	}
	change, _ := strconv.ParseFloat(body.Data.ChangePercent24Hr, 64)
	return price, change, nil
}

// Refresh fetches both rates concurrently and replaces the cache. A
// failed upstream is replaced by its fallback value, so Refresh only
// returns ctx errors.
func (c *Converter) Refresh(ctx context.Context) error {
	var (
		wg                  sync.WaitGroup
		vndToUsd, vndPerUsd float64
		ethPrice, ethChange float64
		vndErr, ethErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		vndToUsd, vndPerUsd, vndErr = c.fetchVndToUsd(ctx)
	}()
	go func() {
		defer wg.Done()
		ethPrice, ethChange, ethErr = c.fetchEthPrice(ctx)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	if vndErr != nil {
		zap.L().Warn("fetch VND rate failed, using fallback", zap.Error(vndErr))
		vndToUsd, vndPerUsd = FallbackVndToUsd, 1/FallbackVndToUsd
	}
	if ethErr != nil {
		zap.L().Warn("fetch ETH price failed, using fallback", zap.Error(ethErr))
		ethPrice, ethChange = FallbackEthPrice, 0
	}

	rates := &Rates{
		VndToUsd:     vndToUsd,
		VndPerUsd:    vndPerUsd,
		EthPriceUsd:  ethPrice,
		EthChange24h: ethChange,
		LastUpdate:   c.now(),
	}

	c.mu.Lock()
	c.rates = rates
	c.mu.Unlock()

	zap.L().Info("currency rates updated",
		zap.Float64("vndToUsd", rates.VndToUsd),
		zap.Float64("ethPriceUsd", rates.EthPriceUsd))
	return nil
}

func (c *Converter) cached() *Rates {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rates == nil || c.now().Sub(c.rates.LastUpdate) > CacheDuration {
		return nil
	}
	r := *c.rates
	return &r
}

// Rates trả về tỷ giá hiện tại, cập nhật nếu cache đã quá hạn
func (c *Converter) Rates(ctx context.Context) (Rates, error) {
	if r := c.cached(); r != nil {
		return *r, nil
	}
	if err := c.Refresh(ctx); err != nil {
		return Rates{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.rates, nil
}

func (c *Converter) ConvertVndToEth(ctx context.Context, vndAmount float64) (ConversionResult, error) {
	if vndAmount <= 0 {
		return ConversionResult{}, ErrInvalidAmount
	}

	rates, err := c.Rates(ctx)
	if err != nil {
		return ConversionResult{}, err
	}

	usd := vndAmount * rates.VndToUsd
	eth := usd / rates.EthPriceUsd

	return ConversionResult{
		VndAmount:    vndAmount,
		UsdAmount:    usd,
		EthAmount:    eth,
		EthPriceUsd:  rates.EthPriceUsd,
		VndToUsdRate: rates.VndToUsd,
		LastUpdate:   rates.LastUpdate,
		FormattedEth: strconv.FormatFloat(eth, 'f', 6, 64),
		FormattedVnd: FormatVnd(vndAmount),
		FormattedUsd: strconv.FormatFloat(usd, 'f', 2, 64),
	}, nil
}

var viPrinter = message.NewPrinter(language.Vietnamese)

// FormatVnd định dạng số tiền theo vi-VN: 2000000 -> 2.000.000
func FormatVnd(amount float64) string {
	return viPrinter.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(3)))
}
