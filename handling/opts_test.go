package handling

import (
	"net/http/httptest"
	"testing"
)

func TestParsePaginationDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/stores/paginated", nil)

	p := ParsePagination(r)
	if p.Page != 1 {
		t.Errorf("default page = %d, want 1", p.Page)
	}
	if p.PerPage != defaultPerPage {
		t.Errorf("default per_page = %d, want %d", p.PerPage, defaultPerPage)
	}
}

func TestParsePaginationExplicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/?page=3&per_page=50", nil)

	p := ParsePagination(r)
	if p.Page != 3 || p.PerPage != 50 {
		t.Errorf("got page=%d per_page=%d, want 3/50", p.Page, p.PerPage)
	}
}

func TestParsePaginationClampsPerPage(t *testing.T) {
	r := httptest.NewRequest("GET", "/?per_page=5000", nil)

	p := ParsePagination(r)
	if p.PerPage != maxPerPage {
		t.Errorf("per_page = %d, want clamped to %d", p.PerPage, maxPerPage)
	}
}

func TestParsePaginationRejectsGarbage(t *testing.T) {
	cases := []string{
		"/?page=abc&per_page=xyz",
		"/?page=-1&per_page=0",
		"/?page=0",
	}
	for _, url := range cases {
		r := httptest.NewRequest("GET", url, nil)
		p := ParsePagination(r)
		if p.Page != 1 || p.PerPage != defaultPerPage {
			t.Errorf("%s: got page=%d per_page=%d, want defaults", url, p.Page, p.PerPage)
		}
	}
}
