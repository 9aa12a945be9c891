package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"certhub/internal/domain/notification"
	"certhub/internal/domain/setting"
	"certhub/internal/shared/config"
	"certhub/internal/shared/logger"
)

// mailSender is the slice of gomail.Dialer the dispatcher uses.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPDispatcher implements notification.Dispatcher over gomail. One message
// kind maps to one subject/body pair; sender identity and the support address
// come from the setting provider so admins can change them without restart.
type SMTPDispatcher struct {
	sender   mailSender
	cfg      config.EmailConfig
	timeout  time.Duration
	provider setting.SettingProvider
	logger   logger.Interface
}

func NewSMTPDispatcher(cfg config.EmailConfig, provider setting.SettingProvider, log logger.Interface) *SMTPDispatcher {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPDispatcher{
		sender:   dialer,
		cfg:      cfg,
		timeout:  time.Duration(cfg.SendTimeout) * time.Second,
		provider: provider,
		logger:   log,
	}
}

func (d *SMTPDispatcher) Send(ctx context.Context, msg notification.Message) error {
	if d.cfg.SMTPHost == "" {
		d.logger.Warnw("smtp not configured, dropping notification",
			"kind", msg.Kind,
			"recipient", msg.Recipient)
		return fmt.Errorf("smtp host is not configured")
	}

	subject, htmlBody, plainBody, err := d.compose(ctx, msg)
	if err != nil {
		return err
	}

	from := d.provider.GetFromEmail(ctx)
	if from == "" {
		from = d.cfg.FromAddress
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, d.cfg.FromName)
	m.SetHeader("To", msg.Recipient)
	m.SetHeader("Subject", subject)
	if support := d.provider.GetSupportEmail(ctx); support != "" {
		m.SetHeader("Reply-To", support)
	}
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	if msg.Attachment != "" {
		m.Attach(msg.Attachment)
	}

	sendCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	// gomail has no context support, so the dial runs in its own
	// goroutine and the slow path leaks it until the SMTP library
	// gives up on its own.
	done := make(chan error, 1)
	go func() {
		done <- d.sender.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send %s notification: %w", msg.Kind, err)
		}
		return nil
	case <-sendCtx.Done():
		return fmt.Errorf("failed to send %s notification: %w", msg.Kind, sendCtx.Err())
	}
}

func (d *SMTPDispatcher) compose(ctx context.Context, msg notification.Message) (subject, htmlBody, plainBody string, err error) {
	company := d.provider.GetCompanyName(ctx)
	f := msg.Fields

	switch msg.Kind {
	case notification.KindConfirmation:
		subject = "We Received Your Certificate Request"
		htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Request Received</h2>
			<p>Dear %s,</p>
			<p>Your certificate request for <strong>%s</strong> has been received and is awaiting review.</p>
			<p>You will get another email once a decision has been made.</p>
			<p>%s</p>
		</body>
		</html>
	`, f["name"], f["subject_name"], company)
		plainBody = fmt.Sprintf(`
Dear %s,

Your certificate request for %s has been received and is awaiting review.

You will get another email once a decision has been made.

%s
	`, f["name"], f["subject_name"], company)

	case notification.KindAdminAlert:
		subject = fmt.Sprintf("New Certificate Request: %s", f["subject_name"])
		htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>New Certificate Request</h2>
			<p><strong>%s</strong> submitted a certificate request for <strong>%s</strong>.</p>
			<p>Email: %s<br>Phone: %s</p>
			<p>Please review it in the admin dashboard.</p>
		</body>
		</html>
	`, f["name"], f["subject_name"], f["email"], f["phone"])
		plainBody = fmt.Sprintf(`
%s submitted a certificate request for %s.

Email: %s
Phone: %s

Please review it in the admin dashboard.
	`, f["name"], f["subject_name"], f["email"], f["phone"])

	case notification.KindVendorAlert:
		subject = fmt.Sprintf("Certificate Request for Your Course: %s", f["subject_name"])
		htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Certificate Request</h2>
			<p><strong>%s</strong> has requested a certificate for your course <strong>%s</strong>.</p>
			<p>No action is needed from you; this is for your records.</p>
			<p>%s</p>
		</body>
		</html>
	`, f["name"], f["subject_name"], company)
		plainBody = fmt.Sprintf(`
%s has requested a certificate for your course %s.

No action is needed from you; this is for your records.

%s
	`, f["name"], f["subject_name"], company)

	case notification.KindIssuance:
		verifyURL := d.provider.GetVerifyPageURL(ctx)
		subject = "Your Certificate Is Ready"
		htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Congratulations, %s!</h2>
			<p>Your certificate for <strong>%s</strong> has been issued.</p>
			<p>Certificate ID: <strong>%s</strong></p>
			<p>Your certificate is attached to this email. Anyone can confirm its authenticity at:</p>
			<p><a href="%s">%s</a></p>
			<p>%s</p>
		</body>
		</html>
	`, f["name"], f["subject_name"], f["public_id"], verifyURL, verifyURL, company)
		plainBody = fmt.Sprintf(`
Congratulations, %s!

Your certificate for %s has been issued.

Certificate ID: %s

Your certificate is attached to this email. Anyone can confirm its authenticity at:
%s

%s
	`, f["name"], f["subject_name"], f["public_id"], verifyURL, company)

	case notification.KindRejection:
		subject = "Update on Your Certificate Request"
		htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Request Not Approved</h2>
			<p>Dear %s,</p>
			<p>Unfortunately your certificate request for <strong>%s</strong> was not approved.</p>
			<p>Reason: %s</p>
			<p>If you believe this is a mistake, reply to this email and we will take another look.</p>
			<p>%s</p>
		</body>
		</html>
	`, f["name"], f["subject_name"], f["reason"], company)
		plainBody = fmt.Sprintf(`
Dear %s,

Unfortunately your certificate request for %s was not approved.

Reason: %s

If you believe this is a mistake, reply to this email and we will take another look.

%s
	`, f["name"], f["subject_name"], f["reason"], company)

	case notification.KindOTP:
		subject = "Your Verification Code"
		htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Verification Code</h2>
			<p>Your one-time verification code is:</p>
			<p style="font-size: 24px; letter-spacing: 4px;"><strong>%s</strong></p>
			<p>This code expires in 10 minutes.</p>
			<p>If you didn't request this code, please ignore this email.</p>
		</body>
		</html>
	`, f["code"])
		plainBody = fmt.Sprintf(`
Your one-time verification code is: %s

This code expires in 10 minutes.

If you didn't request this code, please ignore this email.
	`, f["code"])

	default:
		return "", "", "", fmt.Errorf("unknown notification kind: %s", msg.Kind)
	}

	return subject, htmlBody, plainBody, nil
}
