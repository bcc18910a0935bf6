package mail

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"angies_cleaning/internal/domain/entities"
	"angies_cleaning/internal/usecase/interfaces"
)

var ErrMissingMailCredentials = errors.New("missing GMAIL_USER or GMAIL_APP_PASSWORD")

const (
	defaultSMTPHost      = "smtp.gmail.com"
	defaultSMTPPort      = 587
	defaultBusinessEmail = "info@angicleans.co.za"
	defaultVerifyTimeout = 10 * time.Second

	fromDisplayName = "Angie's Cleaning Service"
)

// SMTPSender delivers quotation emails through an SMTP relay using gomail.
//
// Verify dials and closes a connection so credential or connectivity problems
// surface before any send is attempted; the pipeline maps that failure to a
// distinct, user-retryable condition.
type SMTPSender struct {
	dialer        *gomail.Dialer
	from          string
	businessCC    string
	verifyTimeout time.Duration
}

var _ interfaces.IMailSender = (*SMTPSender)(nil)

// NewSMTPSenderFromEnv builds the sender from the environment.
//
// Supported env vars:
//   - SMTP_HOST (default: smtp.gmail.com)
//   - SMTP_PORT (default: 587)
//   - GMAIL_USER, GMAIL_APP_PASSWORD (required)
//   - BUSINESS_EMAIL (default: info@angicleans.co.za)
func NewSMTPSenderFromEnv() (*SMTPSender, error) {
	user := os.Getenv("GMAIL_USER")
	password := os.Getenv("GMAIL_APP_PASSWORD")
	if user == "" || password == "" {
		log.Printf("[mail][sender] missing SMTP credentials")
		return nil, ErrMissingMailCredentials
	}

	host := getenvDefault("SMTP_HOST", defaultSMTPHost)
	port := defaultSMTPPort
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", raw, err)
		}
		port = parsed
	}

	log.Printf("[mail][sender] configured host=%s port=%d user=%s", host, port, user)
	return &SMTPSender{
		dialer:        gomail.NewDialer(host, port, user, password),
		from:          user,
		businessCC:    getenvDefault("BUSINESS_EMAIL", defaultBusinessEmail),
		verifyTimeout: defaultVerifyTimeout,
	}, nil
}

// Verify confirms the relay is reachable and the credentials work. The dial
// is bounded by verifyTimeout; a timeout is reported like any other
// verification failure.
func (s *SMTPSender) Verify(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.verifyTimeout)
	defer cancel()

	type dialResult struct {
		closer gomail.SendCloser
		err    error
	}
	ch := make(chan dialResult, 1)
	go func() {
		closer, err := s.dialer.Dial()
		ch <- dialResult{closer: closer, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[mail][sender] verify timed out after %s", s.verifyTimeout)
		return ctx.Err()
	case res := <-ch:
		if res.err != nil {
			log.Printf("[mail][sender] verify failed err=%v", res.err)
			return res.err
		}
		return res.closer.Close()
	}
}

// Send dispatches the document to the customer with the business address
// copied, embedding the logo inline when the document carries one. Returns
// the generated Message-Id as the delivery identifier.
func (s *SMTPSender) Send(_ context.Context, to string, doc entities.QuoteDocument) (string, error) {
	messageID := fmt.Sprintf("<%s@angicleans.co.za>", uuid.NewString())

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, fromDisplayName)
	m.SetHeader("To", to)
	m.SetHeader("Cc", s.businessCC)
	m.SetHeader("Subject", doc.Subject)
	m.SetHeader("Message-Id", messageID)
	m.SetBody("text/html", doc.HTML)
	if doc.HasLogo {
		// cid equals the base filename; the document references cid:logo.png.
		m.Embed(doc.LogoPath)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("[mail][sender] send failed to=%s err=%v", to, err)
		return "", err
	}

	log.Printf("[mail][sender] sent message_id=%s cc=%s", messageID, s.businessCC)
	return messageID, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
