package sanitize

import (
	"regexp"
	"strings"
)

// Dozvoljene oznake u tekstu članaka: samo osnovno oblikovanje.
// Sadržaj članaka unose korisnici kroz rich-text editor pa sve ostalo
// mora biti uklonjeno prije renderiranja.
var allowedHTMLTags = map[string]bool{
	"b": true, "i": true, "em": true, "strong": true,
	"br": true, "p": true, "span": true,
}

var htmlTagRe = regexp.MustCompile(`(?i)</?([a-z0-9]+)[^>]*>`)

// HTML: uklanja sve oznake osim dozvoljenih; dozvoljene oznake gube atribute
func HTML(input string) string {
	return htmlTagRe.ReplaceAllStringFunc(input, func(tag string) string {
		m := htmlTagRe.FindStringSubmatch(tag)
		name := strings.ToLower(m[1])
		if !allowedHTMLTags[name] {
			return ""
		}

		closing := strings.HasPrefix(tag, "</")
		if closing {
			return "</" + name + ">"
		}
		if name == "br" {
			return "<br>"
		}
		return "<" + name + ">"
	})
}
