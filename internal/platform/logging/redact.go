package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// jwtPattern matches three base64url segments starting with a JSON header.
	jwtPattern = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)

	// authSchemePattern matches Authorization header values.
	authSchemePattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)

	// dsnPasswordPattern matches connection URLs carrying a password,
	// e.g. postgres://quotes:hunter2@db:5432/quotes.
	dsnPasswordPattern = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://[^:/@\s]+:[^@\s]+@`)
)

// DefaultRedactOptions returns the masq options applied to every log handler.
// User ids are deliberately not redacted; they are the key for tracing a vote.
//
// Extend it for new secrets:
//
//	opts := append(logging.DefaultRedactOptions(), masq.WithFieldName("webhook_secret"))
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("access_token"),
		masq.WithFieldName("accessToken"),
		masq.WithFieldName("refresh_token"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("auth"),
		masq.WithFieldName("cookie"),
		masq.WithFieldName("credentials"),
		masq.WithFieldName("dsn"),
		masq.WithFieldName("database_url"),

		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),

		masq.WithRegex(jwtPattern),
		masq.WithRegex(authSchemePattern),
		masq.WithRegex(dsnPasswordPattern),
	}
}

// NewReplaceAttr returns a slog ReplaceAttr that redacts secrets using
// DefaultRedactOptions plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
