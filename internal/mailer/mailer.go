// Package mailer delivers verification codes over SMTP. The account password
// is read from the system keyring, with an environment variable fallback for
// machines without a keyring daemon.
package mailer

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"net/mail"
	"os"
	"strings"

	gomail "github.com/wneessen/go-mail"
	"github.com/zalando/go-keyring"

	"github.com/pokearena/arena/internal/logging/events"
)

const (
	keyringService = "arena"
	passwordEnv    = "ARENA_SMTP_PASSWORD"
	codeDigits     = 6
)

// Config identifies the SMTP account used for outgoing verification mail.
// The password is deliberately absent; see Password.
type Config struct {
	Host     string
	Port     int
	Username string
	From     string
}

// Mailer sends verification codes. A nil Mailer is valid and reports itself
// as unconfigured, so screens can degrade to an explanatory error.
type Mailer struct {
	cfg      Config
	password string
}

// New builds a Mailer from the given account, resolving the password up
// front so misconfiguration surfaces at startup rather than mid-session.
func New(cfg Config) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, nil
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	password, err := Password(cfg.Username)
	if err != nil {
		return nil, err
	}
	return &Mailer{cfg: cfg, password: password}, nil
}

// Password resolves the SMTP password for a username: the system keyring
// first, then the ARENA_SMTP_PASSWORD environment variable.
func Password(username string) (string, error) {
	secret, err := keyring.Get(keyringService, username)
	if err == nil {
		return secret, nil
	}
	if env := os.Getenv(passwordEnv); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("mailer: no password for %q in keyring or %s: %w", username, passwordEnv, err)
}

// Configured reports whether the mailer can actually send.
func (m *Mailer) Configured() bool {
	return m != nil && m.cfg.Host != ""
}

// GenerateCode returns a fresh numeric verification code.
func GenerateCode() (string, error) {
	var b strings.Builder
	for i := 0; i < codeDigits; i++ {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("mailer: generating code: %w", err)
		}
		fmt.Fprintf(&b, "%d", digit.Int64())
	}
	return b.String(), nil
}

// ValidAddress reports whether the given string parses as a mail address.
func ValidAddress(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}

// SendCode mails a verification code to the recipient.
func (m *Mailer) SendCode(ctx context.Context, recipient, code string) error {
	if !m.Configured() {
		return fmt.Errorf("mailer: no SMTP account configured")
	}
	if !ValidAddress(recipient) {
		return fmt.Errorf("mailer: invalid recipient address %q", recipient)
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mailer: sender %q: %w", m.cfg.From, err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("mailer: recipient %q: %w", recipient, err)
	}
	msg.Subject("Your Pokemon Arena verification code")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf("Your verification code is: %s\n", code))

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("mailer: client for %s: %w", m.cfg.Host, err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailer: sending to %q: %w", recipient, err)
	}
	events.Effect.Success("verification code sent")
	return nil
}

// Verify compares a submitted code against the expected one in constant
// time. Empty expected codes never verify.
func Verify(expected, submitted string) bool {
	if expected == "" || len(expected) != len(submitted) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(submitted)) == 1
}
