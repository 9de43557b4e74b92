package pipeline

import (
	"bytes"
	"encoding/json"
	"strings"

	"golang.org/x/net/html"
)

// SniffJSON extracts an embedded analytics payload from an HTML share page.
// Providers embed the payload as a JSON script tag, typically with a
// type="application/json" attribute or a well-known id. The first script
// whose content parses as a JSON object wins.
func SniffJSON(page []byte) ([]byte, bool) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, false
	}

	var found []byte
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "script" && isJSONScript(n) {
			if body, ok := scriptJSON(n); ok {
				found = body
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if found == nil {
		return nil, false
	}
	return found, true
}

func isJSONScript(n *html.Node) bool {
	var scriptType, id string
	for _, attr := range n.Attr {
		switch attr.Key {
		case "type":
			scriptType = strings.ToLower(attr.Val)
		case "id":
			id = attr.Val
		}
	}

	if strings.Contains(scriptType, "application/json") {
		return true
	}
	switch id {
	case "__NEXT_DATA__", "__NUXT_DATA__", "initial-state":
		return true
	}
	return false
}

func scriptJSON(n *html.Node) ([]byte, bool) {
	if n.FirstChild == nil || n.FirstChild.Type != html.TextNode {
		return nil, false
	}

	raw := strings.TrimSpace(n.FirstChild.Data)
	if !strings.HasPrefix(raw, "{") {
		return nil, false
	}

	var probe map[string]any
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, false
	}
	return []byte(raw), true
}
