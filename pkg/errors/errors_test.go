// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/assetunion/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "config_invalid_error",
			code:    errors.ErrConfigValid,
			message: "no source directory configured",
			wantStr: "[CONFIG_INVALID] no source directory configured",
		},
		{
			name:    "output_write_error",
			code:    errors.ErrOutputWrite,
			message: "output path not set",
			wantStr: "[OUTPUT_WRITE] output path not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrBundleNotFound, "bundle %q is not configured", "site")
	if err.Message != `bundle "site" is not configured` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSourceRead, "cannot read source")

		if err.Code != errors.ErrSourceRead {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrSourceRead)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[SOURCE_READ] cannot read source: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrOutputWrite, "cannot write output").
		WithDetail("path", "/public/site.css").
		WithDetails(map[string]interface{}{"mode": 0644, "size": 1024})

	details := errors.GetErrorDetails(err)
	if details["path"] != "/public/site.css" {
		t.Errorf("path = %v", details["path"])
	}
	if details["mode"] != 0644 || details["size"] != 1024 {
		t.Errorf("WithDetails() = %v", details)
	}

	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for non BundleError")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrSourceRead, "error 1")
	err2 := errors.New(errors.ErrSourceRead, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with BundleError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrConfigValid, "no source dir"),
			code:     errors.ErrConfigValid,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrConfigValid, "no source dir"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrOutputWrite, "denied"),
			code:     errors.ErrOutputWrite,
			expected: true,
		},
		{
			name:     "non_bundle_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrSourceRead,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrSourceRead,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "bundle_error",
			err:      errors.New(errors.ErrBundleNotFound, "bundle not found"),
			expected: errors.ErrBundleNotFound,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrSourceRead, "cannot read file")
	configErr := errors.Wrap(readErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var bundleErr *errors.BundleError
		if !stderrors.As(configErr.Unwrap(), &bundleErr) {
			t.Fatal("middle error should be a BundleError")
		}
		if bundleErr.Code != errors.ErrSourceRead {
			t.Error("Middle error should have ErrSourceRead code")
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
