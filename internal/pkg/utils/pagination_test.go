package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		query         string
		expectedPage  int
		expectedLimit int
	}{
		{"", 1, 20},
		{"?page=3&limit=50", 3, 50},
		{"?page=0", 1, 20},
		{"?page=-5&limit=-1", 1, 20},
		{"?limit=1000", 1, 100},
		{"?page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		app := fiber.New()
		var got PageParams
		app.Get("/", func(c *fiber.Ctx) error {
			got = ParsePageParams(c, 20, 100)
			return nil
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
		if err != nil {
			t.Fatalf("request %q failed: %v", tt.query, err)
		}
		resp.Body.Close()

		if got.Page != tt.expectedPage || got.Limit != tt.expectedLimit {
			t.Fatalf("query %q expected page=%d limit=%d, got page=%d limit=%d",
				tt.query, tt.expectedPage, tt.expectedLimit, got.Page, got.Limit)
		}
	}
}

func TestPageParams_Offset(t *testing.T) {
	tests := []struct {
		page, limit, expected int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{5, 10, 40},
	}

	for _, tt := range tests {
		p := PageParams{Page: tt.page, Limit: tt.limit}
		if got := p.Offset(); got != tt.expected {
			t.Fatalf("Offset(page=%d, limit=%d) expected %d, got %d", tt.page, tt.limit, tt.expected, got)
		}
	}
}
