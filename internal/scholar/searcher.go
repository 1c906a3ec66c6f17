package scholar

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// leadingTag matches a result-type marker such as "[PDF]" or "[B]".
var leadingTag = regexp.MustCompile(`^\s*\[[A-Z]+\]\s*`)

type Searcher interface {
	Search(ctx context.Context, keywords []string) ([]string, error)
}

// ScholarSearcher scrapes result titles from a Google Scholar search page.
type ScholarSearcher struct {
	http *resty.Client
}

func NewScholarSearcher(baseURL string, timeout time.Duration) *ScholarSearcher {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "text/html").
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; menuhub/1.0)")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &ScholarSearcher{http: c}
}

func (s *ScholarSearcher) Search(ctx context.Context, keywords []string) ([]string, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"as_sdt": "0,5",
			"q":      strings.Join(keywords, " "),
		}).
		Get("/scholar")
	if err != nil {
		return nil, errors.Wrap(err, "scholar request")
	}
	if resp.IsError() {
		return nil, errors.Errorf("scholar search failed: status %d", resp.StatusCode())
	}

	return ParseTitles(resp.Body())
}

// ParseTitles returns the cleaned text of every .gs_rt element.
func ParseTitles(html []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "parse scholar page")
	}

	titles := []string{}
	doc.Find(".gs_rt").Each(func(_ int, sel *goquery.Selection) {
		titles = append(titles, cleanTitle(sel.Text()))
	})
	return titles, nil
}

func cleanTitle(title string) string {
	title = strings.TrimSpace(title)
	for {
		stripped := leadingTag.ReplaceAllString(title, "")
		if stripped == title {
			return title
		}
		title = stripped
	}
}
