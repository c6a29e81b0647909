package mail

import (
	"os"
	"strconv"
	"strings"
)

// Config carries the SMTP settings, all read from the environment.
// From falls back to User when SMTP_FROM is unset.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// ConfigFromEnv reads the SMTP_* environment variables. The port
// defaults to 587 when unset or unparsable.
func ConfigFromEnv() Config {
	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}
	user := os.Getenv("SMTP_USER")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = user
	}
	return Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		User:     user,
		Password: os.Getenv("SMTP_PASS"),
		From:     from,
	}
}

// Missing returns the names of required settings without a value.
func (c Config) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"SMTP_HOST", c.Host},
		{"SMTP_USER", c.User},
		{"SMTP_PASS", c.Password},
		{"SMTP_FROM", c.From},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if c.Port == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	return missing
}

// SenderIdentityWarning reports when the displayed sender differs from
// the authenticated account. Providers such as Gmail silently reject
// mismatched identities unless the alias is verified on the account.
func (c Config) SenderIdentityWarning() string {
	if c.User != "" && c.From != "" && !strings.EqualFold(c.User, c.From) {
		return "SMTP_FROM must equal SMTP_USER (unless the alias is verified on the account)"
	}
	return ""
}

// Mask shortens a credential for display: first two and last two
// characters survive, anything of four characters or less is returned
// unchanged.
func Mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return s
	}
	return s[:2] + "****" + s[len(s)-2:]
}

// Masked returns display-safe values for the diagnostics endpoints.
func (c Config) Masked() map[string]string {
	return map[string]string{
		"host": Mask(c.Host),
		"port": strconv.Itoa(c.Port),
		"user": Mask(c.User),
		"pass": Mask(c.Password),
		"from": Mask(c.From),
	}
}
