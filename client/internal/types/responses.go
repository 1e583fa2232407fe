package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// TokenResponse picks the session token out of an auth response. The rest
// of the payload is returned to the caller untouched.
type TokenResponse struct {
	Token json.RawMessage `json:"token"`
}

// Value returns the token as it should be stored: a non-empty string as is,
// a non-zero number as its literal text. Anything else yields "".
func (tr TokenResponse) Value() string {
	if len(tr.Token) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(tr.Token, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(tr.Token, &n); err != nil {
		return ""
	}
	if f, err := n.Float64(); err != nil || f == 0 {
		return ""
	}
	return n.String()
}
