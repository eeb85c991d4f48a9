package beanstream

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrMalformedResponse reports a recurring-API body that is not well-formed
// markup. It is the only hard parse failure: no meaningful partial result
// exists for a broken tree.
var ErrMalformedResponse = errors.New("malformed gateway response")

var (
	listItemPattern = regexp.MustCompile(`<LI>`)
	lineBreakPattern = regexp.MustCompile(`(\.)?<br>`)
)

// parseFlat decodes the gateway's ampersand/equals body into a field map.
// It is total: nil-equivalent or garbage input yields an empty or
// best-effort map, never an error. A pair without a value keeps its key
// with an empty value. Values are percent-decoded.
func parseFlat(body string) map[string]string {
	fields := map[string]string{}
	if body == "" {
		return fields
	}
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		fields[key] = value
	}

	// The gateway embeds lightly formatted HTML in error text; flatten it
	// to plain prose.
	if message, ok := fields["messageText"]; ok {
		fields["messageText"] = cleanMessage(message)
	}
	return fields
}

func cleanMessage(message string) string {
	message = listItemPattern.ReplaceAllString(message, "")
	message = lineBreakPattern.ReplaceAllString(message, ". ")
	return strings.TrimSpace(message)
}

type xmlNode struct {
	XMLName xml.Name
	Nodes   []xmlNode `xml:",any"`
	Text    string    `xml:",chardata"`
}

// parseTree decodes the recurring API's XML dialect. Only leaf elements
// contribute entries, keyed by their tag name in lower_snake form. Duplicate
// leaf tags overwrite earlier ones (last write wins); that is deliberate
// wire-compatible behavior, not an accident. An empty body (e.g. a transport
// failure surfaced as no response) yields an empty map.
func parseTree(body string) (map[string]string, error) {
	fields := map[string]string{}
	if strings.TrimSpace(body) == "" {
		return fields, nil
	}

	var root xmlNode
	if err := xml.Unmarshal([]byte(body), &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if root.XMLName.Local != "response" {
		return nil, fmt.Errorf("%w: unexpected root element %q", ErrMalformedResponse, root.XMLName.Local)
	}

	for _, node := range root.Nodes {
		flattenNode(fields, node)
	}
	return fields, nil
}

func flattenNode(fields map[string]string, node xmlNode) {
	if len(node.Nodes) > 0 {
		for _, child := range node.Nodes {
			flattenNode(fields, child)
		}
		return
	}
	fields[snakeCase(node.XMLName.Local)] = node.Text
}

// snakeCase converts a tag name like "accountId" to "account_id".
func snakeCase(name string) string {
	var b strings.Builder
	prevUpper := false
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !prevUpper {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			prevUpper = true
			continue
		}
		b.WriteRune(r)
		prevUpper = false
	}
	return b.String()
}
