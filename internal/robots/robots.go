// Package robots loads and answers the target site's robots.txt policy.
package robots

import (
	"context"
	"net/http"
	"net/url"

	"github.com/temoto/robotstxt"
)

// Policy answers is-this-URL-allowed for the crawl's user agent. The
// fail-open state is explicit: when rules is nil the robots file could
// not be fetched or parsed, and Allowed is constantly true.
type Policy struct {
	rules     *robotstxt.RobotsData
	userAgent string
}

// Load fetches {scheme}://{host}/robots.txt once. Any failure — network
// error, status >= 400, unparseable body — yields the fail-open policy.
func Load(ctx context.Context, client *http.Client, seed *url.URL, userAgent string) *Policy {
	p := &Policy{userAgent: userAgent}

	robotsURL := seed.Scheme + "://" + seed.Host + "/robots.txt"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return p
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return p
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return p
	}

	rules, err := robotstxt.FromResponse(resp)
	if err != nil {
		return p
	}
	p.rules = rules
	return p
}

// Unavailable returns the fail-open policy directly. Used by tests and
// by callers that skip robots entirely.
func Unavailable(userAgent string) *Policy {
	return &Policy{userAgent: userAgent}
}

// Allowed reports whether the policy permits fetching u. It never
// fails: without loaded rules, or for any oddity during lookup, the
// answer is true.
func (p *Policy) Allowed(u *url.URL) bool {
	if p.rules == nil {
		return true
	}
	grp := p.rules.FindGroup(p.userAgent)
	if grp == nil {
		return true
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return grp.Test(path)
}

// Loaded reports whether real rules were fetched (false means fail-open).
func (p *Policy) Loaded() bool { return p.rules != nil }
