package errors

import (
	"strings"
	"testing"
)

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "lodash", false},
		{"scoped", "@types/node", false},
		{"hyphens and dots", "zope.interface-base", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 257), true},
		{"control character", "pkg\x01name", true},
		{"parent traversal", "../../../etc/passwd", true},
		{"double slash", "a//b", true},
		{"backslash", "a\\b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidPackage {
				t.Errorf("code = %q, want %q", GetCode(err), ErrCodeInvalidPackage)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://github.com/acme/widget", false},
		{"http", "http://example.com", false},
		{"empty", "", true},
		{"file scheme", "file:///etc/passwd", true},
		{"bare text", "see the repository", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
