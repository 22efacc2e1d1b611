package knet

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// canonical joins query-escaped key=value pairs sorted by key with '&',
// skipping the signature itself. Escaping keeps a value holding '&' or '='
// from being read as another pair.
func canonical(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == paramSignature {
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
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(values.Get(k)))
	}
	return b.String()
}

func sign(secret []byte, values url.Values) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(canonical(values)))
	return hex.EncodeToString(mac.Sum(nil))
}

func validSignature(secret []byte, values url.Values, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(canonical(values)))
	return hmac.Equal(got, mac.Sum(nil))
}
