package media

import "testing"

func TestParseKind(t *testing.T) {
	if k, ok := ParseKind("movie"); !ok || k != KindMovie {
		t.Errorf("ParseKind(movie) = %v, %v", k, ok)
	}
	if k, ok := ParseKind("tv"); !ok || k != KindShow {
		t.Errorf("ParseKind(tv) = %v, %v", k, ok)
	}
	for _, bad := range []string{"", "show", "film", "MOVIE", "tv "} {
		if _, ok := ParseKind(bad); ok {
			t.Errorf("ParseKind(%q) accepted", bad)
		}
	}
}

func TestInferKind(t *testing.T) {
	tests := []struct {
		mediaType    string
		firstAirDate string
		want         Kind
	}{
		{"movie", "", KindMovie},
		{"movie", "2020-01-01", KindMovie}, // explicit type wins
		{"tv", "", KindShow},
		{"tv", "2020-01-01", KindShow},
		{"", "2020-01-01", KindShow},
		{"", "", KindMovie},
		{"person", "", KindMovie}, // unknown type without air date defaults to movie
		{"person", "1999-09-09", KindShow},
	}
	for _, tt := range tests {
		if got := InferKind(tt.mediaType, tt.firstAirDate); got != tt.want {
			t.Errorf("InferKind(%q, %q) = %v, want %v", tt.mediaType, tt.firstAirDate, got, tt.want)
		}
	}
}
