package x

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

// credentials holds the OAuth 1.0a user-context key material.
type credentials struct {
	consumerKey    string
	consumerSecret string
	token          string
	tokenSecret    string
}

// authorizationHeader builds the OAuth 1.0a Authorization header for a
// request with a non-form body (RFC 5849 excludes such bodies from the
// signature base string).
func (c credentials) authorizationHeader(method, rawURL string) (string, error) {
	nonce, err := newNonce()
	if err != nil {
		return "", err
	}
	return c.header(method, rawURL, nonce, time.Now().Unix()), nil
}

func (c credentials) header(method, rawURL, nonce string, timestamp int64) string {
	params := map[string]string{
		"oauth_consumer_key":     c.consumerKey,
		"oauth_nonce":            nonce,
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_timestamp":        fmt.Sprintf("%d", timestamp),
		"oauth_token":            c.token,
		"oauth_version":          "1.0",
	}

	params["oauth_signature"] = c.sign(method, rawURL, params)

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, percentEncode(k)+`="`+percentEncode(params[k])+`"`)
	}

	return "OAuth " + strings.Join(pairs, ", ")
}

// sign computes the HMAC-SHA1 signature over the base string.
func (c credentials) sign(method, rawURL string, params map[string]string) string {
	encoded := make([]string, 0, len(params))
	for k, v := range params {
		encoded = append(encoded, percentEncode(k)+"="+percentEncode(v))
	}
	sort.Strings(encoded)

	base := strings.ToUpper(method) + "&" + percentEncode(rawURL) + "&" + percentEncode(strings.Join(encoded, "&"))
	key := percentEncode(c.consumerSecret) + "&" + percentEncode(c.tokenSecret)

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// percentEncode implements RFC 3986 encoding as OAuth 1.0a requires:
// unreserved characters pass through, everything else becomes %XX.
func percentEncode(s string) string {
	var b strings.Builder
	for _, c := range []byte(s) {
		if isUnreserved(c) {
			b.WriteByte(c)
		} else {
			b.WriteString(fmt.Sprintf("%%%02X", c))
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func newNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// baseURLOf strips query and fragment, as signatures are computed over the
// bare endpoint URL.
func baseURLOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
