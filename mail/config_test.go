package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setFullEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USER", "account@example.com")
	t.Setenv("SMTP_PASS", "secretpass")
	t.Setenv("SMTP_FROM", "account@example.com")
}

func TestConfigFromEnv_Full(t *testing.T) {
	setFullEnv(t)

	cfg := ConfigFromEnv()

	assert.Equal(t, "smtp.example.com", cfg.Host)
	assert.Equal(t, 465, cfg.Port)
	assert.Equal(t, "account@example.com", cfg.User)
	assert.Empty(t, cfg.Missing())
	assert.Empty(t, cfg.SenderIdentityWarning())
}

func TestConfigFromEnv_PortDefaults(t *testing.T) {
	setFullEnv(t)
	t.Setenv("SMTP_PORT", "")

	assert.Equal(t, 587, ConfigFromEnv().Port)

	t.Setenv("SMTP_PORT", "not-a-number")
	assert.Equal(t, 587, ConfigFromEnv().Port)
}

func TestConfigFromEnv_FromFallsBackToUser(t *testing.T) {
	setFullEnv(t)
	t.Setenv("SMTP_FROM", "")

	cfg := ConfigFromEnv()
	assert.Equal(t, cfg.User, cfg.From)
	assert.Empty(t, cfg.SenderIdentityWarning())
}

func TestMissing_ReportsNames(t *testing.T) {
	cfg := Config{Port: 587}
	assert.ElementsMatch(t,
		[]string{"SMTP_HOST", "SMTP_USER", "SMTP_PASS", "SMTP_FROM"},
		cfg.Missing())

	cfg = Config{Host: "h", User: "u", Password: "p", From: "u", Port: 587}
	assert.Empty(t, cfg.Missing())
}

func TestSenderIdentityWarning(t *testing.T) {
	cfg := Config{User: "account@example.com", From: "other@example.com"}
	assert.NotEmpty(t, cfg.SenderIdentityWarning())

	// Case differences are not a mismatch.
	cfg.From = "Account@Example.com"
	assert.Empty(t, cfg.SenderIdentityWarning())
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "abcd", Mask("abcd"))
	assert.Equal(t, "se****ss", Mask("secretpass"))
}

func TestMasked_NeverLeaksPassword(t *testing.T) {
	cfg := Config{
		Host: "smtp.example.com", Port: 587,
		User: "account@example.com", Password: "hunter2hunter2", From: "account@example.com",
	}
	masked := cfg.Masked()
	assert.NotContains(t, masked["pass"], "hunter2hunter2")
	assert.Equal(t, "hu****t2", masked["pass"])
	assert.Equal(t, "587", masked["port"])
}
