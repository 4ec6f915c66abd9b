// Package scraper fetches the configured digest page and harvests article
// links from it with a CSS selector.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/inkpress/inkpress/internal/digest/entity"
	"github.com/inkpress/inkpress/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Config struct {
	SourceURL string
	Selector  string
}

type Scraper struct {
	client *http.Client
	cfg    Config
	ins    instrument.Instrumentation
}

func New(client *http.Client, cfg Config, ins instrument.Instrumentation) *Scraper {
	if client == nil {
		client = http.DefaultClient
	}

	return &Scraper{
		client: client,
		cfg:    cfg,
		ins:    ins,
	}
}

func (s *Scraper) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("digest.outbound.scraper").Start(ctx, name)
}

// FetchArticles downloads the source page and returns every anchor matched by
// the configured selector. Anchors without an href or with empty text are
// skipped, and relative hrefs are resolved against the source URL.
func (s *Scraper) FetchArticles(ctx context.Context) (articles []entity.Article, err error) {
	ctx, span := s.startSpan(ctx, "FetchArticles")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.SourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build digest request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch digest source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch digest source: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse digest source: %w", err)
	}

	base, err := url.Parse(s.cfg.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("parse digest source url: %w", err)
	}

	doc.Find(s.cfg.Selector).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		title := strings.TrimSpace(sel.Text())
		if !ok || title == "" {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}

		articles = append(articles, entity.Article{
			Title: title,
			URL:   base.ResolveReference(ref).String(),
		})
	})

	return articles, nil
}
