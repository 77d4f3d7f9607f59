package model

// Credential is the provider account identity used to authenticate
// webhook callbacks. It is fetched once per process and cached; the auth
// token must never be logged or included in any response. JSON tags match
// the key names stored in the credential secret.
type Credential struct {
	AccountSID string `json:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `json:"TWILIO_AUTH_TOKEN"`
}
