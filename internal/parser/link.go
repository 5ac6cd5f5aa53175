package parser

import (
	"net/url"
	"strings"
)

// schemes we refuse to crawl
var badScheme = map[string]struct{}{
	"mailto":     {},
	"javascript": {},
	"tel":        {},
	"data":       {},
}

// ResolveLink converts a raw <a href="…"> into an absolute URL string,
// resolved against base with any fragment stripped. The second return is
// false when the href should be ignored: empty/whitespace, a refused
// scheme, a non-HTTP(S) result, or something net/url cannot parse.
func ResolveLink(base *url.URL, raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	if ref.Scheme != "" {
		if _, bad := badScheme[strings.ToLower(ref.Scheme)]; bad {
			return "", false
		}
	}

	abs := base.ResolveReference(ref)
	abs.Fragment = "" // drop #section

	if abs.Scheme != "http" && abs.Scheme != "https" {
		return "", false
	}

	// Normalise: add a slash if path is empty so hashes match consistently.
	if abs.Path == "" {
		abs.Path = "/"
	}
	return abs.String(), true
}

// HostInDomain reports whether host equals domain or is a subdomain of
// it. Hostnames are case-insensitive and url.Hostname preserves case,
// so both sides are lowercased before comparing.
func HostInDomain(host, domain string) bool {
	if host == "" || domain == "" {
		return false
	}
	host = strings.ToLower(host)
	domain = strings.ToLower(domain)
	return host == domain || strings.HasSuffix(host, "."+domain)
}
