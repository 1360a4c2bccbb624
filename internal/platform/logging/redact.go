package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Value shapes that are secrets regardless of field name.
var (
	jwtPattern       = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern    = regexp.MustCompile(`(?i)^bearer\s+.+$`)
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)
)

// secretFieldNames are redacted wherever they appear in a record. The
// AI model API key and gateway auth headers must never reach log
// output, so the list errs on the broad side.
var secretFieldNames = []string{
	"password", "secret", "token",
	"apiKey", "apikey", "api_key",
	"accessToken", "access_token",
	"refreshToken", "refresh_token",
	"credential", "credentials",
	"authorization", "auth", "bearer",
	"cookie", "session",
	"privateKey", "private_key",
	"secretKey", "secret_key",
}

// DefaultRedactOptions lists the masq rules applied to every log record.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(secretFieldNames)+5)
	for _, name := range secretFieldNames {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
	)
}

// NewReplaceAttr builds the ReplaceAttr hook for slog handler options.
// Extra masq options extend the defaults:
//
//	logging.NewReplaceAttr(masq.WithFieldName("modelKey"))
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}
