package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCatalogScraper_CollectsCoursesWithSkills(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<a href="/course/go-fundamentals">Go Fundamentals</a>
			<a href="/course/go-fundamentals">Go Fundamentals (again)</a>
			<a href="/about">About</a>
		</body></html>`))
	})
	mux.HandleFunc("/course/go-fundamentals", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Go Fundamentals</title></head><body>
			<h1>Go Fundamentals</h1>
			<ul class="course-skills"><li>Go</li><li>Concurrency</li><li>go</li></ul>
		</body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := NewCatalogScraper("learnhub", server.URL, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := s.Scrape(ctx, 1, 3, 0)
	if err != nil {
		t.Fatalf("scrape error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 course, got %d", len(items))
	}

	course := items[0]
	if course.Provider != "learnhub" {
		t.Fatalf("expected provider learnhub, got %s", course.Provider)
	}
	if !strings.Contains(course.Title, "Go Fundamentals") {
		t.Fatalf("unexpected title %q", course.Title)
	}
	if course.ExternalID != "go-fundamentals" {
		t.Fatalf("expected external id from url, got %q", course.ExternalID)
	}
	if len(course.SkillNames) != 2 {
		t.Fatalf("expected 2 deduped skills, got %v", course.SkillNames)
	}
	for _, name := range course.SkillNames {
		if name != strings.ToLower(name) {
			t.Fatalf("expected lowercased skill names, got %q", name)
		}
	}
}

func TestCatalogScraper_ListingErrorIsNotFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := NewCatalogScraper("learnhub", server.URL, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := s.Scrape(ctx, 2, 2, 0)
	if err != nil {
		t.Fatalf("expected listing failures to be skipped, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no courses, got %d", len(items))
	}
}

func TestCleanSkillNames(t *testing.T) {
	got := cleanSkillNames([]string{" Go ", "go", "", "SQL", "sql "})
	if len(got) != 2 {
		t.Fatalf("expected 2 skills, got %v", got)
	}
	if got[0] != "go" || got[1] != "sql" {
		t.Fatalf("unexpected order/content: %v", got)
	}
}

func TestExternalIDFromCourseURL(t *testing.T) {
	if got := externalIDFromCourseURL("https://lms.example.com/course/go-101/"); got != "go-101" {
		t.Fatalf("expected go-101, got %q", got)
	}
	if got := externalIDFromCourseURL(""); got != "" {
		t.Fatalf("expected empty id for empty url, got %q", got)
	}
}
