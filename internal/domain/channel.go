package domain

import "strings"

// ChannelKind é o conjunto fechado de canais que sabemos executar.
// Um canal novo precisa de uma constante aqui e de um sender registrado no executor.
type ChannelKind string

const (
	ChannelEmail       ChannelKind = "email"
	ChannelWhatsApp    ChannelKind = "whatsapp"
	ChannelSocialMedia ChannelKind = "social media"
)

var channelKinds = []ChannelKind{ChannelEmail, ChannelWhatsApp, ChannelSocialMedia}

func ChannelKinds() []ChannelKind {
	out := make([]ChannelKind, len(channelKinds))
	copy(out, channelKinds)
	return out
}

// ParseChannel converte o nome livre vindo do plano (ex.: "Email", " WhatsApp ") no canal suportado.
func ParseChannel(name string) (ChannelKind, bool) {
	normalized := strings.ToLower(strings.Join(strings.Fields(name), " "))
	for _, kind := range channelKinds {
		if string(kind) == normalized {
			return kind, true
		}
	}
	return "", false
}

// Slug é usado como prefixo dos IDs de métricas.
func (c ChannelKind) Slug() string {
	return strings.ReplaceAll(string(c), " ", "-")
}

// DisplayName é o nome gravado nas métricas.
func (c ChannelKind) DisplayName() string {
	switch c {
	case ChannelEmail:
		return "Email"
	case ChannelWhatsApp:
		return "WhatsApp"
	case ChannelSocialMedia:
		return "Social Media"
	}
	return string(c)
}

type ChannelStatus string

const (
	ChannelStatusSent        ChannelStatus = "sent"
	ChannelStatusFailed      ChannelStatus = "failed"
	ChannelStatusUnsupported ChannelStatus = "unsupported"
)

type ChannelResult struct {
	Channel  string        `json:"channel"`
	Status   ChannelStatus `json:"status"`
	MetricID string        `json:"metricId,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type ExecutionResult struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Channels []ChannelResult `json:"perChannelResults"`
}

// Counts retorna quantos canais foram enviados, falharam ou não são suportados.
func (r *ExecutionResult) Counts() (sent, failed, unsupported int) {
	for _, ch := range r.Channels {
		switch ch.Status {
		case ChannelStatusSent:
			sent++
		case ChannelStatusFailed:
			failed++
		case ChannelStatusUnsupported:
			unsupported++
		}
	}
	return sent, failed, unsupported
}
