// Package scraper crawls LMS course catalogs and turns listing pages into
// course upsert batches. Scrapers only collect; persistence happens in the
// catalog-sync binary through the course repository.
package scraper

import (
	"crypto/sha1"
	"encoding/hex"
	"net"
	"net/url"
	"strings"
)

func normalizeURL(u string) string {
	return strings.TrimSpace(u)
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}

// stableExternalIDFromURL derives an upsert key for catalogs that expose no
// course id of their own.
func stableExternalIDFromURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	h := sha1.Sum([]byte(u))
	return "urlsha1-" + hex.EncodeToString(h[:])
}

func externalIDFromCourseURL(courseURL string) string {
	courseURL = strings.TrimSpace(courseURL)
	u, err := url.Parse(courseURL)
	if err == nil {
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) > 0 {
			last := strings.TrimSpace(parts[len(parts)-1])
			if last != "" {
				return last
			}
		}
	}
	return stableExternalIDFromURL(courseURL)
}

// cleanSkillNames lowercases, trims and dedupes scraped skill tags so the
// repository's name-keyed upsert stays stable across runs.
func cleanSkillNames(raw []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func hostFromBaseURL(base string) string {
	base = strings.TrimSpace(base)
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	host := u.Host
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "SkillFitCatalogSync/0.1",
		"Accept-Language": "en-US,en;q=0.9",
	}
}
