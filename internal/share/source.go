package share

// Source supplies an incoming share token, if any, and clears it once
// consumed so it cannot be applied twice.
type Source interface {
	ReadToken() string
	ClearToken()
}

// FlagSource is a Source fed from a command-line flag or environment
// variable. ReadToken after ClearToken returns nothing.
type FlagSource struct {
	token string
}

// NewFlagSource creates a FlagSource holding the given token.
func NewFlagSource(token string) *FlagSource {
	return &FlagSource{token: token}
}

// ReadToken returns the pending token, or "" if none or already consumed.
func (f *FlagSource) ReadToken() string {
	return f.token
}

// ClearToken consumes the token.
func (f *FlagSource) ClearToken() {
	f.token = ""
}
