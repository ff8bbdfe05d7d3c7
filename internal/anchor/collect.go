package anchor

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// CollectInlinks parses an HTML page and maps every http(s) link target to
// the text of its <a> element, cleaned with stringx.StripNonPrintable.
// Relative targets are resolved against base when base is not nil and
// fragments are dropped. The first non-empty text per target wins.
func CollectInlinks(r io.Reader, base *url.URL) (map[string]string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, mdwerrors.IOFailed(mdwerrors.ModuleAnchor, "collect", err)
	}

	links := make(map[string]string)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			if target, ok := resolve(base, attr(n, "href")); ok {
				text := stringx.StripNonPrintable(textOf(n))
				if links[target] == "" {
					links[target] = text
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return links, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func resolve(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}
	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String(), true
}
