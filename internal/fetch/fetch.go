// Package fetch retrieves rendered menu markup for dining venues.
//
// The Fetcher interface is the seam between the scrape pipeline and
// whatever retrieves pages; the HTTP implementation bootstraps a session
// against the landing page (the menu site requires its cookies before
// serving venue pages), harvests the venue links, and fetches each venue's
// short-menu page with a bounded timeout. Browser-automation
// implementations can satisfy the same interface.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// LandingURL is the menu site's home page; loading it establishes the
	// session cookies the venue pages require.
	LandingURL = "https://nutrition.sa.ucsc.edu/"
	UserAgent  = "Mozilla/5.0 (compatible; menu-sync/1.0)"
	Timeout    = 30 * time.Second
)

// DefaultVenues are the dining halls tracked by default.
var DefaultVenues = []string{
	"John R. Lewis & College Nine Dining Hall",
	"Cowell & Stevenson Dining Hall",
	"Crown & Merrill Dining Hall and Banana Joe's",
	"Porter & Kresge Dining Hall",
	"Rachel Carson & Oakes Dining Hall",
}

// VenueLink locates one venue's menu page.
type VenueLink struct {
	Name string
	URL  string
}

// Fetcher returns rendered markup for tracked venues. Transport failures
// are reported to the caller, which treats them as best-effort and
// proceeds with whatever was retrieved.
type Fetcher interface {
	// VenueLinks establishes the session and returns the tracked venues'
	// menu page locations.
	VenueLinks(ctx context.Context) ([]VenueLink, error)
	// FetchMenu retrieves one venue's menu page, for the given
	// MM/DD/YYYY date or the site's current date when date is empty.
	FetchMenu(ctx context.Context, link VenueLink, date string) (*goquery.Document, error)
}

// Options configures an HTTPFetcher. Zero values fall back to the
// package defaults.
type Options struct {
	BaseURL string
	Venues  []string
	Timeout time.Duration
	// Headless is accepted for parity with browser-backed fetchers; the
	// HTTP fetcher has no window to hide.
	Headless bool
}

// HTTPFetcher implements Fetcher over plain HTTP with a cookie-backed
// session.
type HTTPFetcher struct {
	client  *http.Client
	baseURL string
	tracked map[string]bool
}

// NewHTTP creates an HTTP fetcher.
func NewHTTP(opts Options) (*HTTPFetcher, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = LandingURL
	}
	venues := opts.Venues
	if len(venues) == 0 {
		venues = DefaultVenues
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = Timeout
	}

	tracked := make(map[string]bool, len(venues))
	for _, v := range venues {
		tracked[v] = true
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		baseURL: baseURL,
		tracked: tracked,
	}, nil
}

// VenueLinks loads the landing page (setting session cookies) and collects
// the link for each tracked venue, in page order.
func (f *HTTPFetcher) VenueLinks(ctx context.Context) ([]VenueLink, error) {
	doc, err := f.get(ctx, f.baseURL)
	if err != nil {
		return nil, fmt.Errorf("loading landing page: %w", err)
	}

	base, err := url.Parse(f.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	links := make([]VenueLink, 0, len(f.tracked))
	doc.Find("li.locations a").Each(func(_ int, a *goquery.Selection) {
		name := strings.TrimSpace(a.Text())
		if !f.tracked[name] {
			return
		}
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		links = append(links, VenueLink{
			Name: name,
			URL:  base.ResolveReference(ref).String(),
		})
	})

	return links, nil
}

// FetchMenu retrieves one venue's menu page. A non-empty date is passed
// through as the page's date parameter.
func (f *HTTPFetcher) FetchMenu(ctx context.Context, link VenueLink, date string) (*goquery.Document, error) {
	target := link.URL
	if date != "" {
		u, err := url.Parse(link.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing venue url: %w", err)
		}
		q := u.Query()
		q.Set("dtdate", date)
		u.RawQuery = q.Encode()
		target = u.String()
	}

	doc, err := f.get(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("fetching venue page: %w", err)
	}
	return doc, nil
}

// get performs one GET within the session and parses the response body.
func (f *HTTPFetcher) get(ctx context.Context, target string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}
