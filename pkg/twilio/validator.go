package twilio

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"sort"
)

// SignatureHeader carries the signature Twilio computes over every
// webhook callback it delivers.
const SignatureHeader = "X-Twilio-Signature"

type Status int

const (
	StatusValid Status = iota
	StatusInvalid
	StatusMalformed
)

// Outcome is the result of validating one webhook request. Reason is for
// server-side logs only and must never reach the response body.
type Outcome struct {
	Status Status
	Reason string
}

func (o Outcome) Valid() bool {
	return o.Status == StatusValid
}

// ComputeSignature builds Twilio's signing base string and returns its
// base64-encoded HMAC-SHA1 digest under authToken. The base string is the
// full request URL followed by every form key and its raw decoded value,
// with keys sorted in byte order and no separators.
func ComputeSignature(authToken string, url string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(url))
	for _, key := range keys {
		mac.Write([]byte(key))
		mac.Write([]byte(params[key]))
	}

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Validate recomputes the expected signature for the request and compares
// it to the supplied one in constant time. An empty form is still
// verifiable; the base string is then the URL alone.
func Validate(authToken string, url string, params map[string]string, supplied string) Outcome {
	if supplied == "" {
		return Outcome{Status: StatusMalformed, Reason: "signature header missing"}
	}

	if url == "" {
		return Outcome{Status: StatusMalformed, Reason: "request url missing"}
	}

	expected := ComputeSignature(authToken, url, params)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) != 1 {
		return Outcome{Status: StatusInvalid, Reason: "signature mismatch"}
	}

	return Outcome{Status: StatusValid}
}
