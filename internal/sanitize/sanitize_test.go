package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLKeepsAllowedTags(t *testing.T) {
	in := "<p>Rok isporuke je <b>30 dana</b>.<br>Jamstvo <i>24 mjeseca</i>.</p>"
	assert.Equal(t, in, HTML(in))
}

func TestHTMLStripsDisallowedTags(t *testing.T) {
	in := `<p>Tekst<script>alert(1)</script> i <img src="x"> kraj</p>`
	out := HTML(in)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "<p>")
}

func TestHTMLStripsAttributes(t *testing.T) {
	in := `<b onclick="alert(1)">važno</b> <span style="color:red">crveno</span>`
	out := HTML(in)
	assert.Equal(t, "<b>važno</b> <span>crveno</span>", out)
}

func TestSVGRejectsNonSVG(t *testing.T) {
	_, err := SVG("<div>nije svg</div>")
	assert.ErrorIs(t, err, ErrInvalidSVG)

	_, err = SVG("<svg bez zatvaranja")
	assert.ErrorIs(t, err, ErrInvalidSVG)
}

func TestSVGKeepsDrawingElements(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="40"><rect x="0" y="0" width="200" height="40" fill="#333"/><text x="10" y="25" fill="white">Stolarija</text></svg>`
	out, err := SVG(in)
	assert.NoError(t, err)
	assert.Contains(t, out, "<rect")
	assert.Contains(t, out, "<text")
	assert.Contains(t, out, `fill="#333"`)
}

func TestSVGStripsScriptAndHandlers(t *testing.T) {
	in := `<svg width="10" height="10" onload="alert(1)"><script>alert(2)</script><rect width="10" height="10" onclick="alert(3)"/></svg>`
	out, err := SVG(in)
	assert.NoError(t, err)
	assert.NotContains(t, strings.ToLower(out), "script")
	assert.NotContains(t, strings.ToLower(out), "onload")
	assert.NotContains(t, strings.ToLower(out), "onclick")
	assert.NotContains(t, strings.ToLower(out), "alert")
	assert.Contains(t, out, "<rect")
}

func TestSVGExternalHrefRemoved(t *testing.T) {
	in := `<svg width="10" height="10"><use href="http://evil.example/x.svg"/><use href="#lokalno"/></svg>`
	out, err := SVG(in)
	assert.NoError(t, err)
	assert.NotContains(t, out, "evil.example")
	assert.Contains(t, out, `href="#lokalno"`)
}
