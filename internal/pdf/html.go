package pdf

import (
	"regexp"
	"strings"
)

var (
	breakTagRe = regexp.MustCompile(`(?i)<br\s*/?>|</p>`)
	anyTagRe   = regexp.MustCompile(`(?i)</?[a-z0-9]+[^>]*>`)
	multiNLRe  = regexp.MustCompile(`\n{3,}`)
)

// stripTags: sanitizirani HTML članka u čisti tekst za MultiCell;
// <br> i kraj odlomka postaju novi red
func stripTags(s string) string {
	s = breakTagRe.ReplaceAllString(s, "\n")
	s = anyTagRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = multiNLRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
