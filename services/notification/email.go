package notification

import (
	"context"
	"fmt"

	"impulso/config"
	"impulso/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailNotifier delivers notification events over SMTP.
type EmailNotifier struct {
	Dialer *gomail.Dialer
	From   string
	Logger *zap.Logger
}

// NewEmailNotifier builds the SMTP notifier from the loaded configuration.
func NewEmailNotifier(logger *zap.Logger) *EmailNotifier {
	cfg := config.AppConfig
	return &EmailNotifier{
		Dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		From:   cfg.SMTPFrom,
		Logger: logger,
	}
}

// Notify renders and sends the email for the event.
func (n *EmailNotifier) Notify(ctx context.Context, event models.NotificationEvent) error {
	if event.To == "" {
		n.Logger.Warn("notification event without recipient", zap.String("kind", event.Kind))
		return nil
	}

	subject, body := renderEmail(event)
	if subject == "" {
		n.Logger.Warn("unknown notification kind", zap.String("kind", event.Kind))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.From)
	msg.SetHeader("To", event.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := n.Dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("notification: failed to send %s email to %s: %w", event.Kind, event.To, err)
	}
	return nil
}

func renderEmail(event models.NotificationEvent) (subject, body string) {
	data := event.Data
	if data == nil {
		data = map[string]string{}
	}

	switch event.Kind {
	case models.EventBookingCreated:
		subject = "Agendamento Recebido - Impulso Jovem"
		body = fmt.Sprintf(`<p>Olá, <strong>%s</strong>!</p>
<p>Seu agendamento foi realizado com sucesso.</p>
<p><strong>Serviço:</strong> %s<br>
<strong>Data:</strong> %s<br>
<strong>Horário:</strong> %s</p>
<p>Aguarde a confirmação de um jovem. Você receberá um e-mail quando o
agendamento for aceito.</p>`,
			event.Name, data["service"], data["date"], orDash(data["time"]))

	case models.EventBookingAccepted:
		subject = "Jovem Confirmou Seu Agendamento - Impulso Jovem"
		body = fmt.Sprintf(`<p>Olá, <strong>%s</strong>!</p>
<p>O jovem <strong>%s</strong> aceitou seu agendamento de <strong>%s</strong>
para %s às %s.</p>
<p>Quando o jovem chegar, peça o PIN de 4 dígitos e informe-o no aplicativo
para validar o check-in e iniciar o serviço.</p>
<p style="font-size:32px;font-family:monospace;letter-spacing:8px;"><strong>%s</strong></p>
<p>O serviço só pode ser iniciado após a validação do PIN.</p>`,
			event.Name, data["jovem"], data["service"], data["date"], orDash(data["time"]), data["pin"])

	case models.EventBookingCompleted:
		subject = "Obrigado por Transformar Vidas - Impulso Jovem"
		body = fmt.Sprintf(`<p>Olá, <strong>%s</strong>!</p>
<p>O serviço "<strong>%s</strong>" foi concluído com sucesso por
<strong>%s</strong>.</p>
<p>Sua avaliação: %s</p>
<p>Ao contratar um jovem, você gerou renda e experiência profissional real.
Obrigado por acreditar no poder da transformação social!</p>`,
			event.Name, data["service"], data["jovem"], data["rating"])

	case models.EventBookingCancelled:
		subject = "Agendamento Cancelado - Impulso Jovem"
		body = fmt.Sprintf(`<p>Olá, <strong>%s</strong>!</p>
<p>O agendamento de <strong>%s</strong> em %s foi cancelado.</p>
<p><strong>Motivo:</strong> %s</p>`,
			event.Name, data["service"], data["date"], orDash(data["reason"]))

	case models.EventBookingRescheduled:
		subject = "Agendamento Remarcado - Impulso Jovem"
		body = fmt.Sprintf(`<p>Olá, <strong>%s</strong>!</p>
<p>O agendamento de <strong>%s</strong> foi remarcado para %s às %s.</p>
<p>A confirmação anterior foi desfeita; aguarde o jovem aceitar o novo
horário.</p>`,
			event.Name, data["service"], data["date"], orDash(data["time"]))
	}
	return subject, body
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
