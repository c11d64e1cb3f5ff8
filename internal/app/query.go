package app

import (
	"net/url"
	"strings"
)

// ParseQuery turns a URL query string ("?width=80&boundary=wrap") into
// flag-style pairs. Repeated keys keep their last value and a bare key is
// treated as a boolean flag set to true.
func ParseQuery(raw string) (map[string]string, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(values))
	for k, vs := range values {
		if k == "" {
			continue
		}
		v := vs[len(vs)-1]
		if v == "" {
			v = "true"
		}
		m[k] = v
	}
	return m, nil
}
