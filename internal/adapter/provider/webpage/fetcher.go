// Package webpage extracts chapter text from web novel pages.
package webpage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// ErrTooLarge is returned when a page exceeds the configured size limit.
var ErrTooLarge = domain.ErrPageTooLarge

const defaultMaxBodyBytes = 10 << 20

// Page is the readable content of a fetched page.
type Page = domain.WebPage

// Config configures a Fetcher.
type Config struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
}

// Fetcher downloads pages and extracts their main text.
type Fetcher struct {
	httpClient   *http.Client
	maxBodyBytes int64
	userAgent    string
	log          *slog.Logger
}

// NewFetcher creates a Fetcher.
func NewFetcher(cfg Config, logger *slog.Logger) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	return &Fetcher{
		httpClient:   &http.Client{Timeout: timeout},
		maxBodyBytes: maxBody,
		userAgent:    cfg.UserAgent,
		log:          logger.With("adapter", "webpage"),
	}
}

// Fetch downloads pageURL and extracts its readable text.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Page, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("webpage: invalid url %q", pageURL)
	}

	f.log.DebugContext(ctx, "webpage request", slog.String("url", pageURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("webpage: create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.doWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("webpage: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("webpage: unexpected status %d", resp.StatusCode)
	}
	if resp.ContentLength > f.maxBodyBytes {
		return nil, fmt.Errorf("webpage: content length %d: %w", resp.ContentLength, ErrTooLarge)
	}

	// Read one byte past the limit to tell a full body from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("webpage: read body: %w", err)
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, fmt.Errorf("webpage: body: %w", ErrTooLarge)
	}

	page, err := Extract(body, pageURL)
	if err != nil {
		return nil, err
	}

	f.log.DebugContext(ctx, "webpage extracted",
		slog.String("url", pageURL),
		slog.String("title", page.Title),
		slog.Int("text_len", len(page.Text)),
	)
	return page, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (f *Fetcher) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := f.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	f.log.WarnContext(ctx, "webpage retry", slog.String("url", req.URL.String()), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}

	return f.httpClient.Do(req)
}

// Extract is like the package level Extract but applies the fetcher's size
// limit to the document.
func (f *Fetcher) Extract(html []byte, pageURL string) (*Page, error) {
	if int64(len(html)) > f.maxBodyBytes {
		return nil, fmt.Errorf("webpage: html: %w", ErrTooLarge)
	}
	return Extract(html, pageURL)
}

// Extract parses an HTML document and returns its main text. Ruby
// annotations are removed first so readings are not duplicated into the
// text.
func Extract(html []byte, pageURL string) (*Page, error) {
	var parsed *url.URL
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, fmt.Errorf("webpage: invalid url %q: %w", pageURL, err)
		}
		parsed = u
	} else {
		parsed = &url.URL{Scheme: "http", Host: "localhost"}
	}

	article, err := readability.FromReader(bytes.NewReader(SanitizeRuby(html)), parsed)
	if err != nil {
		return nil, fmt.Errorf("webpage: extract article: %w", err)
	}

	return &Page{
		Title: strings.TrimSpace(article.Title),
		Text:  cleanText(article.TextContent),
		URL:   pageURL,
	}, nil
}

var (
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)

	reTrailingSpace = regexp.MustCompile(`[ \t]+\n`)
	reManyNewlines  = regexp.MustCompile(`\n{3,}`)
)

// SanitizeRuby removes ruby text (<rt>) and ruby parentheses (<rp>).
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, nil)
	return reRP.ReplaceAll(cleaned, nil)
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = reTrailingSpace.ReplaceAllString(s, "\n")
	s = reManyNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
