package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL opts the connection out of prepared binary results
// when configured, which some postgres-compatible proxies require. An
// explicit value in the URL always wins.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	params := parsed.Query()
	if params.Has("disable_prepared_binary_result") {
		return raw
	}
	params.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = params.Encode()

	return parsed.String()
}

// dbNameFromURL extracts the database name from either URL or keyword
// DSN form, for the otelsql db.name attribute.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, "=")
		if !ok || key != "dbname" {
			continue
		}
		if name := strings.Trim(value, `"' `); name != "" {
			return name
		}
	}

	return ""
}
