package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"skill-fit/internal/app"
	"skill-fit/internal/config"
	"skill-fit/internal/database/migration"
	"skill-fit/internal/infrastructure/synccallback"
	"skill-fit/internal/pkg/logger"
	"skill-fit/internal/scraper"

	"go.uber.org/zap"
)

func main() {
	provider := flag.String("provider", "", "catalog provider name, e.g. learnhub")
	baseURL := flag.String("base-url", "", "catalog base URL")
	pages := flag.Int("pages", 2, "listing pages to crawl")
	headless := flag.Bool("headless", false, "render listing pages in headless Chrome")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = zl.Sync() }()

	if strings.TrimSpace(*provider) == "" || strings.TrimSpace(*baseURL) == "" {
		zl.Fatal("provide -provider and -base-url")
	}

	c, err := app.NewContainer(cfg, zl)
	if err != nil {
		zl.Fatal("failed to init container", zap.Error(err))
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	r := migration.Runner{Dir: "migrations"}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		migCancel()
		zl.Fatal("migration failed", zap.Error(err))
	}
	migCancel()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	s := scraper.NewCatalogScraper(*provider, *baseURL, zl)
	s.SetHeadless(*headless)

	start := time.Now()
	status := "finished"
	var courses, links int

	items, err := s.Scrape(ctx, *pages, cfg.Catalog.ScrapeWorkers, cfg.Catalog.ScrapeRPS)
	if err != nil {
		zl.Error("scrape failed", zap.String("provider", s.Provider()), zap.Error(err))
		status = "failed"
	} else {
		courses, links, err = c.Courses.UpsertCourses(ctx, items)
		if err != nil {
			zl.Error("course upsert failed", zap.String("provider", s.Provider()), zap.Error(err))
			status = "failed"
		}
	}

	duration := time.Since(start)
	zl.Info("catalog sync done",
		zap.String("provider", s.Provider()),
		zap.String("status", status),
		zap.Int("courses_upserted", courses),
		zap.Int("skill_links", links),
		zap.Duration("duration", duration),
	)

	client := synccallback.New(cfg.Catalog.SyncCallbackURL, cfg.Catalog.SyncAPIKey)
	if client == nil {
		zl.Warn("sync callback skipped", zap.String("reason", "CATALOG_SYNC_CALLBACK_URL not configured"))
		return
	}

	cbCtx, cbCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cbCancel()
	err = client.SendCompleted(cbCtx, synccallback.Event{
		Source:          s.Provider(),
		CoursesUpserted: courses,
		SkillLinks:      links,
		DurationMS:      duration.Milliseconds(),
		Status:          status,
		FinishedAt:      time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		zl.Error("sync callback failed", zap.Error(err))
	}
}
