package vnpay

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("200000000")
	require.NoError(t, err)
	assert.Equal(t, int64(2000000), v)

	v, err = ParseAmount("0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	for _, bad := range []string{"", "1", "150", "-100", "1e5", "12 00", "abc", "99999999999999999999"} {
		_, err := ParseAmount(bad)
		assert.True(t, errors.Is(err, ErrInvalidAmount), "%q: %v", bad, err)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("20240115103045", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC), got)

	ict := time.FixedZone("ICT", 7*3600)
	got, err = ParseDate("20241231235959", ict)
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 31, got.Day())
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	assert.Equal(t, 59, got.Second())
	assert.Equal(t, ict, got.Location())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, bad := range []string{"", "2024011510304", "202401151030450", "20241315103045", "2024011510304x"} {
		_, err := ParseDate(bad, time.UTC)
		assert.True(t, errors.Is(err, ErrInvalidDate), "%q: %v", bad, err)
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	in := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	s := FormatDate(in)
	assert.Equal(t, "20250203040506", s)

	out, err := ParseDate(s, time.UTC)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestResponseMessage(t *testing.T) {
	assert.Equal(t, "Giao dịch thành công", ResponseMessage("00", LocaleVN))
	assert.Equal(t, "Transaction successful", ResponseMessage("00", LocaleEN))
	assert.Contains(t, ResponseMessage("51", LocaleVN), "không đủ số dư")
	assert.Contains(t, ResponseMessage("13", LocaleEN), "OTP")
	assert.Equal(t, "Mã lỗi không xác định: 01", ResponseMessage("01", ""))
}

func TestBankCodes(t *testing.T) {
	codes := BankCodes()
	assert.Equal(t, "Thanh toán quét mã QR", codes[DefaultBankCode])
	assert.True(t, IsKnownBankCode("BIDV"))
	assert.False(t, IsKnownBankCode("NOPE"))

	codes["VNPAYQR"] = "changed"
	assert.Equal(t, "Thanh toán quét mã QR", BankCodes()["VNPAYQR"])
}
