// Package fetch fournit des utilitaires légers et testables pour récupérer
// des ressources HTTP bornées en taille et en durée. Le reste du code ne
// fait jamais de réseau directement : tout passe par ici ou par le client
// browse (internal/innertube).
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultTimeout  = 15 * time.Second
	DefaultMaxBytes = 10_000_000

	DefaultUserAgent = "ytscribe/1.0"
	// Les pages watch/chaîne servent un HTML différent (ou un refus) aux
	// agents non navigateurs ; on s'annonce donc comme un navigateur.
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Erreurs exportées
var (
	ErrStatus   = errors.New("unexpected HTTP status")
	ErrTooLarge = errors.New("response body too large")
)

// FetchBytesWithTimeout télécharge l'URL et retourne les octets.
// - ctx peut être nil.
// - timeout : si <=0 on utilise DefaultTimeout.
// - maxBytes : si <=0 on utilise DefaultMaxBytes.
// Lit tout en mémoire : adapté aux payloads captions/JSON, pas aux médias.
func FetchBytesWithTimeout(ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64) ([]byte, error) {
	return fetchBytes(ctx, rawURL, DefaultUserAgent, timeout, maxBytes)
}

// FetchHTML télécharge une page HTML en s'annonçant comme un navigateur.
func FetchHTML(ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64) (string, error) {
	data, err := fetchBytes(ctx, rawURL, BrowserUserAgent, timeout, maxBytes)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func fetchBytes(ctx context.Context, rawURL, userAgent string, timeout time.Duration, maxBytes int64) ([]byte, error) {
	// defaults
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	// valider l'URL tôt
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("fetch: invalid url %q: %w", rawURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch: %w: %s", ErrStatus, resp.Status)
	}

	// si Content-Length connu et supérieur à maxBytes -> échouer vite
	if resp.ContentLength > 0 && resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("fetch: content-length %d exceeds limit %d: %w", resp.ContentLength, maxBytes, ErrTooLarge)
	}

	r := io.LimitReader(resp.Body, maxBytes+1) // +1 pour détecter dépassement
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("fetch: body exceeds %d bytes: %w", maxBytes, ErrTooLarge)
	}
	return data, nil
}
