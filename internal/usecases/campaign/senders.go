package campaign

import (
	"context"
	"strings"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
)

const (
	defaultSubject = "A Special Offer"
	defaultBody    = "Check out our new product!"
)

// Message é o conteúdo enviado em um canal.
type Message struct {
	From      string
	Recipient string
	Subject   string
	Body      string
}

// Sender faz o envio em um canal. Cada canal tem seu próprio domínio de falha.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// messageFor monta a mensagem do canal a partir do plano.
func messageFor(kind domain.ChannelKind, body domain.PlanBody, cfg config.Campaign) Message {
	text := fallback(body.ValueProposition, defaultBody)

	switch kind {
	case domain.ChannelEmail:
		return Message{
			From:      cfg.EmailSender,
			Recipient: cfg.EmailRecipient,
			Subject:   fallback(body.ExecutiveSummary, defaultSubject),
			Body:      text,
		}
	case domain.ChannelWhatsApp:
		return Message{Recipient: cfg.WhatsAppRecipient, Body: text}
	default:
		return Message{Recipient: cfg.SocialPlatform, Body: text}
	}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// simulatedSender registra o envio no log sem falar com nenhum provedor.
type simulatedSender struct {
	channel domain.ChannelKind
}

func (s simulatedSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := log.ForContext(ctx).WithField("channel", s.channel.DisplayName())
	switch s.channel {
	case domain.ChannelEmail:
		logger.Infof("Enviando email para %s com assunto %q", msg.Recipient, msg.Subject)
	case domain.ChannelWhatsApp:
		logger.Infof("Enviando WhatsApp para %s", msg.Recipient)
	default:
		logger.Infof("Publicando post em %s", msg.Recipient)
	}
	return nil
}

// SimulatedSenders retorna um sender simulado para cada canal suportado.
func SimulatedSenders() map[domain.ChannelKind]Sender {
	senders := make(map[domain.ChannelKind]Sender)
	for _, kind := range domain.ChannelKinds() {
		senders[kind] = simulatedSender{channel: kind}
	}
	return senders
}
