package errors

import (
	"strings"
	"testing"
)

func TestValidatePermutation(t *testing.T) {
	tests := []struct {
		name    string
		perm    []int
		n       int
		wantErr bool
	}{
		{"identity", []int{1, 2, 3}, 3, false},
		{"reversed", []int{3, 2, 1}, 3, false},
		{"empty", nil, 0, false},

		{"too short", []int{1, 2}, 3, true},
		{"too long", []int{1, 2, 3, 4}, 3, true},
		{"zero id", []int{0, 1, 2}, 3, true},
		{"id too large", []int{1, 2, 4}, 3, true},
		{"duplicate", []int{1, 1, 3}, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePermutation(tt.perm, tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePermutation(%v, %d) error = %v, wantErr %v", tt.perm, tt.n, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPermutation) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidPermutation)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "matrix.json", false},
		{"absolute", "/tmp/matrix.toml", false},
		{"nested", "data/sets/m.txt", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCacheURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"none", false},
		{"file:///tmp/cache", false},
		{"redis://localhost:6379/0", false},
		{"mongodb://localhost:27017/robinson", false},

		{"http://example.com", true},
		{"localhost:6379", true},
	}

	for _, tt := range tests {
		err := ValidateCacheURL(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCacheURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
