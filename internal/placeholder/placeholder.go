package placeholder

import "regexp"

// Style: stil graničnika tokena. Članci ugovora i HTML predlošci koriste
// {token}, tok za ugovor o namještaju koristi {{token}}. Oba stila dijele
// isti mehanizam zamjene, razlikuje ih samo graničnik.
type Style int

const (
	StyleSingleBrace Style = iota // {token}
	StyleDoubleBrace              // {{token}}
)

// Fallback: što s tokenima za koje nema vrijednosti. HTML predlošci ih
// ostavljaju netaknute, obični članci ugovora ih zamjenjuju vidljivom
// crtom za ručni upis. Ponašanje je različito po toku poziva i korisnici
// se na njega oslanjaju, zato se ne ujednačava.
type Fallback int

const (
	FallbackPassThrough Fallback = iota
	FallbackBlankLine
)

// BlankLine: vidljiva oznaka za ručni upis nedostajuće vrijednosti
const BlankLine = "______________"

var (
	singleBraceRe = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)
	doubleBraceRe = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)
)

func (s Style) pattern() *regexp.Regexp {
	if s == StyleDoubleBrace {
		return doubleBraceRe
	}
	return singleBraceRe
}

// Substitute: doslovna zamjena svih pojavljivanja poznatih tokena.
// Zamjena ide u jednom prolazu pa vrijednost koja sadrži oblik tokena
// ne ulazi u ponovnu zamjenu. Čista funkcija, bez nuspojava.
func Substitute(text string, values map[string]string, style Style, fallback Fallback) string {
	re := style.pattern()
	return re.ReplaceAllStringFunc(text, func(match string) string {
		token := re.FindStringSubmatch(match)[1]
		if value, ok := values[token]; ok {
			return value
		}
		if fallback == FallbackBlankLine {
			return BlankLine
		}
		return match
	})
}
