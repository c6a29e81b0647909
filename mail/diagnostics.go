package mail

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

// DiagnosticStep is one stage of the SMTP health probe.
type DiagnosticStep struct {
	Step   string `json:"step"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// DiagnosticReport is the ordered outcome of Diagnose. Steps stop at
// the first failure.
type DiagnosticReport struct {
	OK    bool             `json:"ok"`
	Steps []DiagnosticStep `json:"steps"`
}

// Diagnose probes the SMTP configuration stage by stage: settings
// present, DNS resolution, TCP reachability, then a full protocol
// handshake with authentication (implicit TLS on 465, STARTTLS
// otherwise).
func Diagnose(cfg Config, timeout time.Duration) DiagnosticReport {
	var steps []DiagnosticStep
	fail := func(step string, err error) DiagnosticReport {
		steps = append(steps, DiagnosticStep{Step: step, OK: false, Detail: err.Error()})
		return DiagnosticReport{OK: false, Steps: steps}
	}

	if missing := cfg.Missing(); len(missing) > 0 {
		return fail("config", fmt.Errorf("missing settings: %s", strings.Join(missing, ", ")))
	}
	steps = append(steps, DiagnosticStep{Step: "config", OK: true, Detail: "all settings present"})

	addrs, err := net.LookupHost(cfg.Host)
	if err != nil {
		return fail("dns", err)
	}
	steps = append(steps, DiagnosticStep{
		Step: "dns", OK: true,
		Detail: fmt.Sprintf("%s resolves to %s", cfg.Host, addrs[0]),
	})

	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	conn, err := net.DialTimeout("tcp", hostPort, timeout)
	if err != nil {
		return fail("socket", err)
	}
	conn.Close()
	steps = append(steps, DiagnosticStep{
		Step: "socket", OK: true,
		Detail: "connected to " + hostPort,
	})

	authStep := "starttls+auth"
	if cfg.Port == 465 {
		authStep = "ssl+auth"
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	sc, err := d.Dial()
	if err != nil {
		return fail(authStep, err)
	}
	sc.Close()
	steps = append(steps, DiagnosticStep{Step: authStep, OK: true, Detail: "login ok"})

	return DiagnosticReport{OK: true, Steps: steps}
}
