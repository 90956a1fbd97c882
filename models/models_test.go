package models

import (
	"errors"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
		want string
	}{
		{
			name: "invalid argument",
			err:  InvalidArgumentf("Invalid PDF ID"),
			kind: ErrInvalidArgument,
			want: "Invalid PDF ID",
		},
		{
			name: "invalid argument with format args",
			err:  InvalidArgumentf("Invalid page number. PDF has %d pages (0-%d)", 3, 2),
			kind: ErrInvalidArgument,
			want: "Invalid page number. PDF has 3 pages (0-2)",
		},
		{
			name: "not found",
			err:  NotFoundf("File not found: %s", "/tmp/missing.pdf"),
			kind: ErrNotFound,
			want: "File not found: /tmp/missing.pdf",
		},
		{
			name: "permission denied",
			err:  PermissionDeniedf("Path is not a file: %s", "/tmp"),
			kind: ErrPermissionDenied,
			want: "Path is not a file: /tmp",
		},
		{
			name: "parse failure",
			err:  ParseFailuref("Failed to open PDF: %v", errors.New("bad header")),
			kind: ErrParseFailure,
			want: "Failed to open PDF: bad header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(err, %v) = false, want true", tt.kind)
			}
		})
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	kinds := []error{ErrInvalidArgument, ErrNotFound, ErrPermissionDenied, ErrParseFailure}
	err := InvalidArgumentf("Missing path")
	for _, kind := range kinds[1:] {
		if errors.Is(err, kind) {
			t.Errorf("InvalidArgumentf error unexpectedly matches %v", kind)
		}
	}
}
