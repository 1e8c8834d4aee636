package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"sort"
	"strings"
)

const SecureHashKey = "vnp_SecureHash"

// CanonicalString joins the fields as key=value pairs sorted by raw key.
// Values are not percent-encoded. Any SecureHashKey entry is skipped.
func CanonicalString(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == SecureHashKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

// Sign returns the lowercase hex HMAC-SHA512 of CanonicalString(params).
func Sign(params map[string]string, secret string) string {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write([]byte(CanonicalString(params)))
	return hex.EncodeToString(h.Sum(nil))
}

// signatureEqual compares in constant time. The gateway has been seen to
// send upper-case hex, so the received value is lower-cased first.
func signatureEqual(expected, received string) bool {
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(received)))
}
