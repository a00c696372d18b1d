package mailer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/drewhx/portfolio-web/config"
)

// Mailer forwards contact form submissions to the site owner's inbox over
// authenticated SMTP.
type Mailer struct {
	client         *mail.Client
	publicName     string
	address        string
	contactAddress string
}

type ContactMessage struct {
	Name    string
	Address string
	Subject string
	Body    string
}

func NewMailer(cfg *config.MailConfig) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithSMTPAuth(mail.SMTPAuthAutoDiscover), mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithUsername(cfg.Username), mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("fail to initialize mail client: %w", err)
	}

	return &Mailer{
		client:         client,
		publicName:     cfg.PublicName,
		address:        cfg.Address,
		contactAddress: cfg.ContactAddress,
	}, nil
}

// SendContact delivers one submission. The visitor's address goes into
// Reply-To so answering from the inbox just works; the envelope stays on the
// site's own authenticated address.
func (m *Mailer) SendContact(msg *ContactMessage) error {
	message := mail.NewMsg()

	if err := message.EnvelopeFrom(m.address); err != nil {
		return fmt.Errorf("failed to set ENVELOPE FROM address: %w", err)
	}
	if err := message.FromFormat(m.publicName, m.address); err != nil {
		return fmt.Errorf("failed to set formatted FROM address: %w", err)
	}
	if err := message.To(m.contactAddress); err != nil {
		return fmt.Errorf("failed to set TO address: %w", err)
	}
	if err := message.ReplyTo(msg.Address); err != nil {
		return fmt.Errorf("failed to set REPLY-TO address: %w", err)
	}

	message.SetMessageID()
	message.SetDate()
	message.Subject(fmt.Sprintf("[contact] %s", msg.Subject))
	message.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Address, msg.Body))

	if err := m.client.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}
	slog.Debug("contact message delivered", slog.String("reply_to", msg.Address))
	return nil
}

// SendPublishNotice tells the owner that posts turned published outside the
// admin panel, e.g. after files were edited on the server directly.
func (m *Mailer) SendPublishNotice(titles []string) error {
	message := mail.NewMsg()

	if err := message.EnvelopeFrom(m.address); err != nil {
		return fmt.Errorf("failed to set ENVELOPE FROM address: %w", err)
	}
	if err := message.FromFormat(m.publicName, m.address); err != nil {
		return fmt.Errorf("failed to set formatted FROM address: %w", err)
	}
	if err := message.To(m.contactAddress); err != nil {
		return fmt.Errorf("failed to set TO address: %w", err)
	}

	message.SetMessageID()
	message.SetDate()
	message.Subject(fmt.Sprintf("%d post(s) just went live", len(titles)))
	message.SetBodyString(mail.TypeTextPlain,
		"Newly published posts detected on disk:\n\n- "+strings.Join(titles, "\n- ")+"\n")

	if err := m.client.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send publish notice: %w", err)
	}
	return nil
}
