package generator

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ArticleMetadata is the JSON block the model is instructed to emit before
// the article HTML.
type ArticleMetadata struct {
	SEOTitle        string `json:"seo_title"`
	MetaDescription string `json:"meta_description"`
}

// ErrNoStructuralHTML is wrapped into an INVALID_OUTPUT_FORMAT failure when
// the body contains no heading or paragraph elements.
var ErrNoStructuralHTML = errors.New("generated body contains no structural HTML")

var fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// ExtractArticle splits raw model output into metadata and article body.
// Extraction is best-effort in this order:
//  1. a ```json fenced block anywhere in the text
//  2. a balanced {...} object at the very start of the text
//  3. no metadata (title/description left blank)
//
// The remaining body has leftover markdown fences stripped and must contain
// at least one heading or paragraph element; otherwise the whole output is
// rejected.
func ExtractArticle(raw string) (ArticleMetadata, string, error) {
	meta, rest, ok := extractFencedJSON(raw)
	if !ok {
		meta, rest, ok = extractLeadingJSON(raw)
	}
	if !ok {
		meta = ArticleMetadata{}
		rest = raw
	}

	body := stripMarkdownFences(rest)
	if !hasStructuralHTML(body) {
		return ArticleMetadata{}, "", ErrNoStructuralHTML
	}
	return meta, body, nil
}

func extractFencedJSON(raw string) (ArticleMetadata, string, bool) {
	loc := fencedJSONRe.FindStringSubmatchIndex(raw)
	if loc == nil {
		return ArticleMetadata{}, "", false
	}
	var meta ArticleMetadata
	if err := json.Unmarshal([]byte(raw[loc[2]:loc[3]]), &meta); err != nil {
		return ArticleMetadata{}, "", false
	}
	rest := raw[:loc[0]] + raw[loc[1]:]
	return meta, rest, true
}

// extractLeadingJSON scans for a balanced JSON object at the start of the
// text, respecting strings and escapes.
func extractLeadingJSON(raw string) (ArticleMetadata, string, bool) {
	trimmed := strings.TrimLeft(raw, " \t\r\n")
	if !strings.HasPrefix(trimmed, "{") {
		return ArticleMetadata{}, "", false
	}

	depth := 0
	inString := false
	escaped := false
	end := -1
	for i, r := range trimmed {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i + 1
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return ArticleMetadata{}, "", false
	}

	var meta ArticleMetadata
	if err := json.Unmarshal([]byte(trimmed[:end]), &meta); err != nil {
		return ArticleMetadata{}, "", false
	}
	return meta, trimmed[end:], true
}

// stripMarkdownFences removes leading/trailing ``` fences the model
// sometimes wraps the HTML in despite instructions.
func stripMarkdownFences(body string) string {
	s := strings.TrimSpace(body)
	if strings.HasPrefix(s, "```") {
		if nl := strings.IndexByte(s, '\n'); nl != -1 {
			s = s[nl+1:]
		} else {
			s = ""
		}
	}
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

var structuralTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true,
}

// hasStructuralHTML reports whether the body parses into at least one
// heading or paragraph element.
func hasStructuralHTML(body string) bool {
	if strings.TrimSpace(body) == "" {
		return false
	}
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return false
	}

	var found bool
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found {
			return
		}
		if n.Type == html.ElementNode && structuralTags[n.Data] {
			found = true
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}
