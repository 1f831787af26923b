// Package notifier delivers email verification codes to account
// holders over SMTP. Delivery is best-effort by contract: callers log
// and swallow errors, a stored code stays valid whether or not the
// message arrived.
package notifier

import (
	"context"
	"fmt"

	"github.com/akarpov/go-music-library/internal/config"
	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/wneessen/go-mail"
)

// SMTPNotifier sends verification codes through an SMTP relay using
// wneessen/go-mail.
type SMTPNotifier struct {
	cfg    config.SMTP
	logger *logger.Logger
}

// NewSMTPNotifier constructs an SMTP-backed notifier. Host and From
// are required; Username/Password are optional and enable PLAIN auth
// when both are set.
func NewSMTPNotifier(cfg config.SMTP, logger *logger.Logger) (*SMTPNotifier, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}

	return &SMTPNotifier{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// SendVerificationCode mails the code to the account holder.
func (n *SMTPNotifier) SendVerificationCode(ctx context.Context, email, username, code string) error {
	log := logger.FromContext(ctx)

	msg, err := n.buildMessage(email, username, code)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
	}

	// port 465 implies implicit TLS, everything else negotiates STARTTLS
	if n.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL(), mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if n.cfg.Username != "" && n.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}

	client, err := mail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	log.Debug().Str("email", email).Msg("verification code sent")

	return nil
}

// buildMessage assembles the verification message.
func (n *SMTPNotifier) buildMessage(email, username, code string) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.From(n.cfg.From); err != nil {
		return nil, fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return nil, fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject("Your verification code")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Hi %s,\n\nYour verification code is: %s\n\nThe code is valid for 10 minutes.\n", username, code))

	return msg, nil
}

// NopNotifier logs codes instead of sending them. Used when no SMTP
// host is configured, which keeps local development free of mail
// infrastructure.
type NopNotifier struct {
	logger *logger.Logger
}

// NewNopNotifier constructs a logging-only notifier.
func NewNopNotifier(logger *logger.Logger) *NopNotifier {
	return &NopNotifier{logger: logger}
}

// SendVerificationCode logs the code and reports success.
func (n *NopNotifier) SendVerificationCode(ctx context.Context, email, _, code string) error {
	logger.FromContext(ctx).Info().
		Str("email", email).
		Str("code", code).
		Msg("outbound mail disabled, verification code logged only")

	return nil
}
