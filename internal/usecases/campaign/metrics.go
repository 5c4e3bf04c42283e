package campaign

import (
	"math/rand/v2"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/utils"
)

// RandomSource gera os valores simulados das métricas. Precisa ser seguro
// para uso concorrente.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }
func (globalRandom) Float64() float64 { return rand.Float64() }

// DefaultRandom usa o gerador global de math/rand/v2.
func DefaultRandom() RandomSource {
	return globalRandom{}
}

type intRange struct {
	min, max int64
}

func (r intRange) draw(random RandomSource) int64 {
	return r.min + int64(random.IntN(int(r.max-r.min+1)))
}

type floatRange struct {
	min, max float64
}

func (r floatRange) draw(random RandomSource) float64 {
	return utils.RoundWithTwoDecimalPlace(r.min + random.Float64()*(r.max-r.min))
}

// metricProfile descreve a faixa plausível de resultado de um envio no canal.
type metricProfile struct {
	impressions intRange
	clicks      intRange
	conversions intRange
	cost        floatRange
}

var profiles = map[domain.ChannelKind]metricProfile{
	domain.ChannelEmail: {
		impressions: intRange{1000, 10999},
		clicks:      intRange{100, 1099},
		conversions: intRange{10, 109},
		cost:        floatRange{50, 150},
	},
	domain.ChannelWhatsApp: {
		impressions: intRange{500, 5499},
		clicks:      intRange{50, 549},
		conversions: intRange{5, 54},
		cost:        floatRange{20, 70},
	},
	domain.ChannelSocialMedia: {
		impressions: intRange{5000, 24999},
		clicks:      intRange{200, 2199},
		conversions: intRange{20, 219},
		cost:        floatRange{100, 300},
	},
}

func (p metricProfile) simulate(random RandomSource) (impressions, clicks, conversions int64, cost float64) {
	return p.impressions.draw(random),
		p.clicks.draw(random),
		p.conversions.draw(random),
		p.cost.draw(random)
}
