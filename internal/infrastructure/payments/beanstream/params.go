package beanstream

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// params is the flat wire parameter set built up by the request field
// groups. Blank values are never stored, so absent fields are omitted from
// the encoded body instead of being sent as empty strings.
type params map[string]string

// set stores a field unless the value is blank.
func (p params) set(key, value string) {
	if value == "" {
		return
	}
	p[key] = value
}

// setInt stores a positive integer field; zero and negative values are
// treated as absent.
func (p params) setInt(key string, value int) {
	if value <= 0 {
		return
	}
	p[key] = strconv.Itoa(value)
}

// setFlag stores "1" for the field when v is true; false is omitted
// entirely, never serialized as literal text.
func (p params) setFlag(key string, v bool) {
	if v {
		p[key] = "1"
	}
}

// encode serializes to key=escaped_value pairs joined by "&". Keys are
// sorted for determinism; the gateway does not care about field order.
func (p params) encode() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+url.QueryEscape(p[k]))
	}
	return strings.Join(pairs, "&")
}
