package sanitize

import (
	"errors"
	"regexp"
	"strings"
)

// Dozvoljeni SVG elementi: crtanje, oblici i gradijenti za memorandum.
// script/style i slično namjerno izostaju.
var allowedSVGElements = map[string]bool{
	"svg": true, "g": true, "path": true, "rect": true, "circle": true,
	"ellipse": true, "line": true, "polyline": true, "polygon": true,
	"text": true, "tspan": true, "defs": true, "lineargradient": true,
	"radialgradient": true, "stop": true, "clippath": true, "use": true,
	"title": true, "desc": true, "image": true,
}

// Dozvoljeni atributi; on* atributi (event handleri) nikad ne prolaze
var allowedSVGAttrs = map[string]bool{
	"id": true, "class": true, "x": true, "y": true, "x1": true, "y1": true,
	"x2": true, "y2": true, "cx": true, "cy": true, "r": true, "rx": true,
	"ry": true, "d": true, "points": true, "width": true, "height": true,
	"viewbox": true, "xmlns": true, "fill": true, "stroke": true,
	"stroke-width": true, "stroke-linecap": true, "stroke-linejoin": true,
	"stroke-dasharray": true, "opacity": true, "fill-opacity": true,
	"stroke-opacity": true, "transform": true, "offset": true,
	"stop-color": true, "stop-opacity": true, "font-family": true,
	"font-size": true, "font-weight": true, "text-anchor": true,
	"gradientunits": true, "gradienttransform": true, "href": true,
	"preserveaspectratio": true, "clip-path": true, "clip-rule": true,
	"fill-rule": true,
}

var (
	svgTagRe   = regexp.MustCompile(`(?is)<\s*(/?)\s*([a-zA-Z][a-zA-Z0-9-]*)((?:\s+[^<>]*?)?)\s*(/?)>`)
	svgAttrRe  = regexp.MustCompile(`(?is)([a-zA-Z_:][a-zA-Z0-9_:.-]*)\s*=\s*("[^"]*"|'[^']*')`)
	svgBlockRe = regexp.MustCompile(`(?is)<\s*(script|style|foreignObject)\b.*?</\s*(script|style|foreignObject)\s*>`)

	ErrInvalidSVG = errors.New("sadržaj nije valjan SVG")
)

// SVG: provjerava i čisti SVG markup za zaglavlje/podnožje memoranduma.
// Ulaz mora počinjati sa "<svg" i sadržavati zatvarajući "</svg>".
func SVG(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(strings.ToLower(trimmed), "<svg") {
		return "", ErrInvalidSVG
	}
	if !strings.Contains(strings.ToLower(trimmed), "</svg>") {
		return "", ErrInvalidSVG
	}

	// script/style blokovi se uklanjaju zajedno sa sadržajem
	trimmed = svgBlockRe.ReplaceAllString(trimmed, "")

	out := svgTagRe.ReplaceAllStringFunc(trimmed, func(tag string) string {
		m := svgTagRe.FindStringSubmatch(tag)
		closing, name, attrs, selfClose := m[1], strings.ToLower(m[2]), m[3], m[4]

		if !allowedSVGElements[name] {
			return ""
		}
		if closing == "/" {
			return "</" + name + ">"
		}

		var b strings.Builder
		b.WriteByte('<')
		b.WriteString(name)
		for _, am := range svgAttrRe.FindAllStringSubmatch(attrs, -1) {
			attrName := strings.ToLower(am[1])
			if strings.HasPrefix(attrName, "on") {
				continue
			}
			if !allowedSVGAttrs[attrName] {
				continue
			}
			value := am[2]
			// href smije pokazivati samo na interne reference i data slike
			if attrName == "href" {
				inner := strings.Trim(value, `"'`)
				if !strings.HasPrefix(inner, "#") && !strings.HasPrefix(inner, "data:image/") {
					continue
				}
			}
			b.WriteByte(' ')
			b.WriteString(am[1])
			b.WriteByte('=')
			b.WriteString(value)
		}
		if selfClose == "/" {
			b.WriteString("/>")
		} else {
			b.WriteByte('>')
		}
		return b.String()
	})

	return out, nil
}
