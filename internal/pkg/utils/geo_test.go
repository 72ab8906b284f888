package utils

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		if d := HaversineDistance(55.75, 37.62, 55.75, 37.62); d != 0 {
			t.Fatalf("expected 0, got %f", d)
		}
	})

	t.Run("known Moscow distances", func(t *testing.T) {
		centerLat, centerLon := 55.847336, 37.635552

		tests := []struct {
			lat, lon float64
			min, max float64
		}{
			// центр города, ~11-12 км
			{55.741503, 37.628861, 11.0, 12.5},
			// рядом с центром зоны, < 2 км
			{55.843941, 37.662335, 0.5, 2.0},
			// середина, ~7-8 км
			{55.779665, 37.633636, 7.0, 8.0},
		}

		for _, tt := range tests {
			d := HaversineDistance(centerLat, centerLon, tt.lat, tt.lon)
			if d < tt.min || d > tt.max {
				t.Fatalf("distance to (%f, %f) expected in [%f, %f], got %f", tt.lat, tt.lon, tt.min, tt.max, d)
			}
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := HaversineDistance(55.75, 37.62, 59.93, 30.36)
		d2 := HaversineDistance(59.93, 30.36, 55.75, 37.62)
		if math.Abs(d1-d2) > 1e-9 {
			t.Fatalf("expected symmetric distance, got %f and %f", d1, d2)
		}
	})
}

func TestDegreeBoundingBox(t *testing.T) {
	box := DegreeBoundingBox(55.847336, 37.635552, 10)

	if !box.Contains(55.847336, 37.635552) {
		t.Fatal("box should contain its center")
	}
	// 10 км / 111 ~ 0.09 градуса широты
	if box.Contains(55.99, 37.635552) {
		t.Fatal("box should not reach 0.14 degrees north")
	}
	if !box.Contains(55.93, 37.635552) {
		t.Fatal("box should reach 0.08 degrees north")
	}
	// по долготе рамка шире из-за cos широты
	if !box.Contains(55.847336, 37.79) {
		t.Fatal("box should reach 0.15 degrees east at this latitude")
	}

	// на экваторе рамка по долготе сжимается до ~0.09 градуса
	equator := DegreeBoundingBox(0, 0, 10)
	if equator.Contains(0, 0.15) {
		t.Fatal("equator box should not reach 0.15 degrees east")
	}
}

func TestValidLatitude(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"55.847336", true},
		{"-55.847336", true},
		{"0", true},
		{"90", true},
		{"559.1", false},
		{"55,8", false},
		{"", false},
		{"abc", false},
		{"55.", false},
	}

	for _, tt := range tests {
		if got := ValidLatitude(tt.value); got != tt.valid {
			t.Fatalf("ValidLatitude(%q) expected %v, got %v", tt.value, tt.valid, got)
		}
	}
}

func TestValidLongitude(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"37.635552", true},
		{"-122.419418", true},
		{"179.9", true},
		{"1234.5", false},
		{"", false},
		{"37.63.55", false},
	}

	for _, tt := range tests {
		if got := ValidLongitude(tt.value); got != tt.valid {
			t.Fatalf("ValidLongitude(%q) expected %v, got %v", tt.value, tt.valid, got)
		}
	}
}
