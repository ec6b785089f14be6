package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// OpsMailbox receives a copy of every ticket notification.
	OpsMailbox string
}

// SMTPNotifier delivers ticket and welcome emails over SMTP. Delivery is
// best-effort: failures are logged and reported as a false outcome, never as
// an error.
type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPNotifier(config SMTPConfig, logger logger.Interface) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotifier{
		config: config,
		dialer: dialer,
		logger: logger,
	}
}

func (s *SMTPNotifier) NotifyTicket(ctx context.Context, n notification.TicketNotification) bool {
	recipients := s.ticketRecipients(n)
	if len(recipients) == 0 {
		s.logger.Warnw("no recipients for ticket notification", "ticket_id", n.TicketID)
		return false
	}

	subject := fmt.Sprintf("[Chamado #%d] %s: %s", n.TicketID, n.ActionLabel, n.Title)

	technicianLine := "Não atribuído"
	if n.TechnicianName != "" {
		technicianLine = n.TechnicianName
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p><strong>Chamado #%d:</strong> %s</p>
			<p><strong>Descrição:</strong> %s</p>
			<p><strong>Status:</strong> %s</p>
			<p><strong>Prioridade:</strong> %s</p>
			<p><strong>Localização:</strong> %s</p>
			<p><strong>Equipamento:</strong> %s</p>
			<p><strong>Solicitante:</strong> %s</p>
			<p><strong>Técnico:</strong> %s</p>
			<p><strong>Aberto em:</strong> %s</p>
		</body>
		</html>
	`, n.ActionLabel, n.TicketID, n.Title, n.Description, n.Status, n.Priority,
		n.Location, n.Equipment, n.CreatorName, technicianLine,
		n.CreatedAt.Format(dto.DateTimeLayout))

	plainBody := fmt.Sprintf(`%s

Chamado #%d: %s
Descrição: %s
Status: %s
Prioridade: %s
Localização: %s
Equipamento: %s
Solicitante: %s
Técnico: %s
Aberto em: %s
`, n.ActionLabel, n.TicketID, n.Title, n.Description, n.Status, n.Priority,
		n.Location, n.Equipment, n.CreatorName, technicianLine,
		n.CreatedAt.Format(dto.DateTimeLayout))

	if err := s.sendEmail(recipients, subject, htmlBody, plainBody); err != nil {
		s.logger.Warnw("failed to send ticket notification", "ticket_id", n.TicketID, "error", err)
		return false
	}

	return true
}

func (s *SMTPNotifier) NotifyWelcome(ctx context.Context, n notification.WelcomeNotification) bool {
	subject := "Bem-vindo ao Helpdesk"

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Bem-vindo, %s!</h2>
			<p>Seu cadastro foi realizado com sucesso em %s.</p>
			<p>Você já pode abrir chamados de suporte pelo sistema.</p>
		</body>
		</html>
	`, n.Name, n.RegisteredAt.Format(dto.DateTimeLayout))

	plainBody := fmt.Sprintf(`Bem-vindo, %s!

Seu cadastro foi realizado com sucesso em %s.

Você já pode abrir chamados de suporte pelo sistema.
`, n.Name, n.RegisteredAt.Format(dto.DateTimeLayout))

	if err := s.sendEmail([]string{n.Email}, subject, htmlBody, plainBody); err != nil {
		s.logger.Warnw("failed to send welcome notification", "email", n.Email, "error", err)
		return false
	}

	return true
}

// ticketRecipients is the ops mailbox plus the assigned technician,
// deduplicated case-insensitively.
func (s *SMTPNotifier) ticketRecipients(n notification.TicketNotification) []string {
	recipients := make([]string, 0, 2)
	seen := make(map[string]bool)

	for _, addr := range []string{s.config.OpsMailbox, n.TechnicianEmail} {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		key := strings.ToLower(addr)
		if seen[key] {
			continue
		}
		seen[key] = true
		recipients = append(recipients, addr)
	}

	return recipients
}

func (s *SMTPNotifier) sendEmail(to []string, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
