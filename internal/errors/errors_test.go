package errors

import (
	"errors"
	"fmt"
	"testing"
)

var errSample = New("sample failure")

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(errSample, ExitUser),
			want: "sample failure",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("loading state: %w", errSample), ExitSystem),
			want: "loading state: sample failure",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewExitError(fmt.Errorf("backing up: %w", errSample), ExitSystem)

	if !errors.Is(err, errSample) {
		t.Error("errors.Is() should find the sentinel through the chain")
	}
	if errors.Is(NewExitError(nil, ExitUser), errSample) {
		t.Error("errors.Is() matched with a nil underlying error")
	}
}

func TestExitError_As(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantAs   bool
	}{
		{
			name:     "direct ExitError",
			err:      NewExitError(errSample, ExitUser),
			wantCode: ExitUser,
			wantAs:   true,
		},
		{
			name:     "wrapped ExitError",
			err:      fmt.Errorf("command failed: %w", NewExitError(errSample, ExitSystem)),
			wantCode: ExitSystem,
			wantAs:   true,
		},
		{
			name:   "non-ExitError",
			err:    errSample,
			wantAs: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exitErr *ExitError
			gotAs := errors.As(tt.err, &exitErr)
			if gotAs != tt.wantAs {
				t.Errorf("errors.As() = %v, want %v", gotAs, tt.wantAs)
			}
			if gotAs && exitErr.Code != tt.wantCode {
				t.Errorf("ExitError.Code = %d, want %d", exitErr.Code, tt.wantCode)
			}
		})
	}
}

func TestNewConstructors(t *testing.T) {
	t.Run("NewUserError", func(t *testing.T) {
		e := NewUserError(errSample, "check input")
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion != "check input" {
			t.Errorf("Suggestion = %q, want 'check input'", e.Suggestion)
		}
	})

	t.Run("NewSystemError", func(t *testing.T) {
		e := NewSystemError(errSample, "check permissions")
		if e.Code != ExitSystem {
			t.Errorf("Code = %d, want %d", e.Code, ExitSystem)
		}
		if e.Suggestion != "check permissions" {
			t.Errorf("Suggestion = %q, want 'check permissions'", e.Suggestion)
		}
	})
}

func TestExitCodeConstants(t *testing.T) {
	if ExitSuccess != 0 || ExitUser != 1 || ExitSystem != 2 {
		t.Errorf("exit codes = %d/%d/%d, want 0/1/2", ExitSuccess, ExitUser, ExitSystem)
	}
}

func TestReexports(t *testing.T) {
	base := New("base")
	wrapped := Wrapf(base, "context %d", 42)

	if !Is(wrapped, base) {
		t.Error("Is() should see through Wrapf")
	}
	if got := wrapped.Error(); got != "context 42: base" {
		t.Errorf("Wrapf() message = %q", got)
	}
	if Unwrap(Wrap(base, "outer")) == nil {
		t.Error("Unwrap(Wrap()) = nil")
	}
}
