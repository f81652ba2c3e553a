package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferType(t *testing.T) {
	assert.Equal(t, "Padrão", OfferType("1"))
	assert.Equal(t, "Destaque", OfferType("2"))
	assert.Equal(t, "Super Destaque", OfferType("3"))
	assert.Equal(t, "9", OfferType("9"))
	assert.Equal(t, "", OfferType(""))
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "Residencial", Category("RE"))
	assert.Equal(t, "Comercial", Category("CO"))
	// exact match only
	assert.Equal(t, "re", Category("re"))
}

func TestStandard(t *testing.T) {
	tests := map[string]string{
		"alto":    "Alto",
		"ALTO":    "Alto",
		"medio":   "Médio",
		"Médio":   "Médio",
		"MÉDIO":   "Médio",
		"baixo":   "Baixo",
		" luxo ":  "Luxo",
		"Premium": "Premium",
	}
	for in, want := range tests {
		got := Standard(in)
		require.NotNil(t, got, in)
		assert.Equal(t, want, *got, in)
	}

	blank := Standard("")
	require.NotNil(t, blank)
	assert.Equal(t, "", *blank)
	spaces := Standard("   ")
	require.NotNil(t, spaces)
	assert.Equal(t, "", *spaces)

	assert.Nil(t, Standard("não informado"))
	assert.Nil(t, Standard("NAO  INFORMADO"))
}
