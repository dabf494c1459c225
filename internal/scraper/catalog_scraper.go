package scraper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"skill-fit/internal/pkg/pool"
	"skill-fit/internal/repository"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// CatalogScraper crawls a server-rendered LMS catalog: listing pages link to
// course pages, course pages carry the title and the skill tags the course
// teaches. Catalogs that render client-side fall back to the headless path.
type CatalogScraper struct {
	provider    string
	baseURL     string
	allowedHost string
	logger      *zap.Logger

	// listPathTemplate must contain one %d for the page number.
	listPathTemplate string
	useHeadless      bool
}

func NewCatalogScraper(provider, baseURL string, logger *zap.Logger) *CatalogScraper {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CatalogScraper{
		provider:         strings.ToLower(strings.TrimSpace(provider)),
		baseURL:          strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:           logger,
		listPathTemplate: "/courses?page=%d",
	}
	s.allowedHost = hostFromBaseURL(s.baseURL)
	return s
}

// SetHeadless switches listing-page discovery to chromedp for catalogs that
// only render course links client-side. Detail pages still go through colly.
func (s *CatalogScraper) SetHeadless(on bool) {
	s.useHeadless = on
}

func (s *CatalogScraper) Provider() string {
	return s.provider
}

func (s *CatalogScraper) Scrape(ctx context.Context, pages, workers, rps int) ([]repository.CourseUpsert, error) {
	if s == nil || s.baseURL == "" {
		return nil, fmt.Errorf("scraper not configured")
	}
	if pages <= 0 {
		pages = 1
	}

	p := pool.New(workers, workers*2)
	p.SetRateLimit(rps)
	results := p.Run(ctx)

	var mu sync.Mutex
	items := make([]repository.CourseUpsert, 0, pages*20)

	for page := 1; page <= pages; page++ {
		links, err := s.listCoursePage(ctx, page)
		if err != nil {
			s.logger.Warn("catalog listing failed",
				zap.String("provider", s.provider),
				zap.Int("page", page),
				zap.Error(err),
			)
			continue
		}
		for _, link := range links {
			link := link
			p.Submit(func(ctx context.Context) error {
				course, err := s.scrapeCoursePage(ctx, link)
				if err != nil {
					return err
				}
				mu.Lock()
				items = append(items, course)
				mu.Unlock()
				return nil
			})
		}
	}

	p.Close()
	for res := range results {
		if res.Err != nil {
			s.logger.Warn("course page failed", zap.String("provider", s.provider), zap.Error(res.Err))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CatalogScraper) listCoursePage(ctx context.Context, page int) ([]string, error) {
	if s.useHeadless {
		return s.listCoursePageHeadless(ctx, page, 60)
	}

	listURL := s.baseURL + fmt.Sprintf(s.listPathTemplate, page)

	c := colly.NewCollector(colly.AllowedDomains(s.allowedHost))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 500 * time.Millisecond, Delay: 250 * time.Millisecond})

	links := make([]string, 0)
	c.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" {
			return
		}
		if !strings.Contains(href, "/course/") && !strings.Contains(href, "/courses/") {
			return
		}
		if abs := e.Request.AbsoluteURL(href); abs != "" {
			links = append(links, abs)
		}
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})
	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]string, 0, len(links))
	for _, link := range links {
		u := normalizeURL(link)
		if u == "" || u == listURL {
			continue
		}
		if _, ok := dedup[u]; ok {
			continue
		}
		dedup[u] = struct{}{}
		out = append(out, u)
	}
	return out, nil
}

func (s *CatalogScraper) scrapeCoursePage(ctx context.Context, courseURL string) (repository.CourseUpsert, error) {
	c := colly.NewCollector(colly.AllowedDomains(s.allowedHost))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 500 * time.Millisecond, Delay: 250 * time.Millisecond})

	out := repository.CourseUpsert{
		Provider:  s.provider,
		URL:       normalizeURL(courseURL),
		Relevance: 1,
	}
	var skills []string
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if strings.TrimSpace(out.Title) == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("title", func(e *colly.HTMLElement) {
		out.Title = pickNonEmpty(out.Title, e.Text)
	})
	c.OnHTML(`[data-course-id]`, func(e *colly.HTMLElement) {
		out.ExternalID = pickNonEmpty(out.ExternalID, e.Attr("data-course-id"))
	})
	c.OnHTML(".skill-tag, [data-skill], .course-skills li", func(e *colly.HTMLElement) {
		tag := pickNonEmpty(e.Attr("data-skill"), e.Text)
		if tag != "" {
			skills = append(skills, tag)
		}
	})
	c.OnHTML(`meta[name="keywords"]`, func(e *colly.HTMLElement) {
		for _, kw := range strings.Split(e.Attr("content"), ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				skills = append(skills, kw)
			}
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return repository.CourseUpsert{}, ctx.Err()
	}
	if err := c.Visit(courseURL); err != nil {
		return repository.CourseUpsert{}, err
	}
	c.Wait()
	if reqErr != nil {
		return repository.CourseUpsert{}, reqErr
	}

	if out.ExternalID == "" {
		out.ExternalID = externalIDFromCourseURL(courseURL)
	}
	if strings.TrimSpace(out.Title) == "" {
		return repository.CourseUpsert{}, fmt.Errorf("course page %s: no title", courseURL)
	}
	out.SkillNames = cleanSkillNames(skills)
	return out, nil
}
