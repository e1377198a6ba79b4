package service

import (
	"net/http"
	"strings"
)

// ImageService normalizes image references between their canonical stored
// form (a relative path like "uploads/photo.jpg") and the publicly
// resolvable URL handed out in responses.
type ImageService struct {
	baseURL string
}

// NewImageService creates a new ImageService. baseURL may be empty, in
// which case projected URLs are root-relative.
func NewImageService(baseURL string) *ImageService {
	return &ImageService{baseURL: strings.TrimRight(baseURL, "/")}
}

// Canonical converts a raw client-supplied reference into the canonical
// stored path. A full URL carrying the configured base is stripped back to
// its relative path. An empty string normalizes to nil ("no image"), which
// is distinct from an absent field.
func (s *ImageService) Canonical(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if s.baseURL != "" {
		trimmed = strings.TrimPrefix(trimmed, s.baseURL)
	}
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// PublicURL projects a canonical stored path into a publicly resolvable URL
func (s *ImageService) PublicURL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	url := s.baseURL + "/" + *path
	return &url
}

// PublicURLs projects every canonical path in a photo list
func (s *ImageService) PublicURLs(paths []string) []string {
	urls := make([]string, 0, len(paths))
	for _, p := range paths {
		path := p
		if projected := s.PublicURL(&path); projected != nil {
			urls = append(urls, *projected)
		}
	}
	return urls
}

// PublicURLFor projects a canonical path using the configured base URL, or
// a base derived from the request's scheme and host when none is configured
func (s *ImageService) PublicURLFor(r *http.Request, path string) string {
	base := s.baseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + "/" + path
}
