package templates

import (
	"testing"

	"stolarija-backend/internal/models"
	"stolarija-backend/internal/placeholder"

	"github.com/stretchr/testify/assert"
)

func TestLayoutStyle(t *testing.T) {
	single := &models.ContractLayoutTemplate{TokenStyle: models.TokenStyleSingle}
	assert.Equal(t, placeholder.StyleSingleBrace, LayoutStyle(single))

	double := &models.ContractLayoutTemplate{TokenStyle: models.TokenStyleDouble}
	assert.Equal(t, placeholder.StyleDoubleBrace, LayoutStyle(double))

	// zapis bez oblika tokena pada na jednostruke zagrade
	legacy := &models.ContractLayoutTemplate{}
	assert.Equal(t, placeholder.StyleSingleBrace, LayoutStyle(legacy))
}

func TestLayoutStyleSubstitution(t *testing.T) {
	values := map[string]string{"kupac_ime": "Marko Marić"}

	layout := &models.ContractLayoutTemplate{
		TokenStyle: models.TokenStyleDouble,
		Body:       "<p>Kupac {{kupac_ime}} zadržava {jednostruki} tekst.</p>",
	}
	out := placeholder.Substitute(layout.Body, values, LayoutStyle(layout), placeholder.FallbackPassThrough)
	assert.Equal(t, "<p>Kupac Marko Marić zadržava {jednostruki} tekst.</p>", out)
}

func TestValidTokenStyle(t *testing.T) {
	assert.True(t, validTokenStyle(models.TokenStyleSingle))
	assert.True(t, validTokenStyle(models.TokenStyleDouble))
	assert.False(t, validTokenStyle("triple"))
	assert.False(t, validTokenStyle(""))
}
