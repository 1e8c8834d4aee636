package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalString(t *testing.T) {
	params := map[string]string{
		"vnp_TxnRef":    "A1",
		"vnp_Amount":    "100",
		"vnp_OrderInfo": "a b&c=d",
		SecureHashKey:   "ignored",
	}

	assert.Equal(t, "vnp_Amount=100&vnp_OrderInfo=a b&c=d&vnp_TxnRef=A1", CanonicalString(params))
	assert.Equal(t, "", CanonicalString(nil))
}

func TestCanonicalString_SortsByRawKey(t *testing.T) {
	params := map[string]string{"b": "2", "B": "1", "a_": "3", "a": "4"}

	assert.Equal(t, "B=1&a=4&a_=3&b=2", CanonicalString(params))
}

func TestSign_MatchesHMACSHA512Hex(t *testing.T) {
	params := map[string]string{"vnp_Amount": "100", "vnp_TxnRef": "X"}

	mac := hmac.New(sha512.New, []byte(testSecret))
	mac.Write([]byte("vnp_Amount=100&vnp_TxnRef=X"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, Sign(params, testSecret))
	assert.Regexp(t, "^[0-9a-f]{128}$", Sign(params, testSecret))
}

func TestSign_IgnoresExistingHash(t *testing.T) {
	params := map[string]string{"vnp_Amount": "100"}
	before := Sign(params, testSecret)

	params[SecureHashKey] = before
	assert.Equal(t, before, Sign(params, testSecret))
}
