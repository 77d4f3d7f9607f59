package service

import "net/url"

// ProcessInboundCommand carries one webhook invocation: the public URL
// the provider signed, the decoded form fields, and the signature taken
// from the request header.
type ProcessInboundCommand struct {
	RequestURL string
	Form       url.Values
	Signature  string
}
