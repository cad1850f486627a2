package playlist

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ErrEmptyLocator is returned for blank playlist lines.
var ErrEmptyLocator = errors.New("empty locator")

// Resolve turns a playlist line into a URI the pipeline can open.
// http(s) and file URIs pass through; plain paths become absolute file URIs,
// relative ones resolved against dir.
func Resolve(line, dir string) (string, error) {
	l := strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(l) == "" {
		return "", ErrEmptyLocator
	}

	if strings.ContainsAny(l, "\x00\n") {
		return "", fmt.Errorf("invalid control characters in %q", l)
	}

	// the pipeline would read a leading dash as a flag
	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("locator must not start with '-': %q", l)
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URI: %w", err)
		}

		switch strings.ToLower(u.Scheme) {
		case "file", "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URI scheme: %s", u.Scheme)
		}
	}

	path := l
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", l, err)
	}

	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

// Title derives a short display name from a locator.
func Title(locator string) string {
	l := strings.TrimSuffix(locator, "\r")
	if u, err := url.Parse(l); err == nil && u.Scheme != "" && u.Path != "" {
		l = u.Path
	}

	base := filepath.Base(filepath.FromSlash(l))
	if base == "." || base == string(filepath.Separator) {
		return locator
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
