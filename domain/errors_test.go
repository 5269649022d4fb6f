// ABOUTME: Tests for domain-level sentinel errors
// ABOUTME: Ensures error values work correctly with errors.Is
package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Defined(t *testing.T) {
	// Verify all sentinel errors are defined and non-nil
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrUserNotFound", ErrUserNotFound},
		{"ErrNewsNotFound", ErrNewsNotFound},
		{"ErrFeedNotFound", ErrFeedNotFound},
		{"ErrCommentNotFound", ErrCommentNotFound},
		{"ErrSourceNotFound", ErrSourceNotFound},
		{"ErrVerdictNotAvailable", ErrVerdictNotAvailable},
		{"ErrDuplicateFeedName", ErrDuplicateFeedName},
		{"ErrDuplicateSource", ErrDuplicateSource},
		{"ErrSelfReferral", ErrSelfReferral},
		{"ErrAlreadyModerated", ErrAlreadyModerated},
		{"ErrFeedNotOwned", ErrFeedNotOwned},
		{"ErrInvalidRequest", ErrInvalidRequest},
		{"ErrInvalidRating", ErrInvalidRating},
		{"ErrInvalidAction", ErrInvalidAction},
		{"ErrInvalidFrequency", ErrInvalidFrequency},
		{"ErrInvalidBlockType", ErrInvalidBlockType},
		{"ErrUnknownModerationAction", ErrUnknownModerationAction},
		{"ErrInviteInvalid", ErrInviteInvalid},
		{"ErrServiceOverloaded", ErrServiceOverloaded},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Errorf("%s should not be nil", s.name)
			}
			if s.err.Error() == "" {
				t.Errorf("%s should have non-empty message", s.name)
			}
		})
	}
}

func TestSentinelErrors_Is(t *testing.T) {
	// Verify errors.Is works with sentinel errors
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "direct match ErrUserNotFound",
			err:    ErrUserNotFound,
			target: ErrUserNotFound,
			want:   true,
		},
		{
			name:   "wrapped ErrNewsNotFound",
			err:    fmt.Errorf("failed to load news: %w", ErrNewsNotFound),
			target: ErrNewsNotFound,
			want:   true,
		},
		{
			name:   "wrapped ErrServiceOverloaded",
			err:    fmt.Errorf("submit failed: %w", ErrServiceOverloaded),
			target: ErrServiceOverloaded,
			want:   true,
		},
		{
			name:   "wrapped ErrSelfReferral",
			err:    fmt.Errorf("accept invite: %w", ErrSelfReferral),
			target: ErrSelfReferral,
			want:   true,
		},
		{
			name:   "different errors should not match",
			err:    ErrUserNotFound,
			target: ErrNewsNotFound,
			want:   false,
		},
		{
			name:   "deeply wrapped error",
			err:    fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrInviteInvalid)),
			target: ErrInviteInvalid,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.want)
			}
		})
	}
}

func TestSentinelErrors_UniqueMessages(t *testing.T) {
	// Verify each sentinel has a unique message (no copy-paste errors)
	sentinels := []error{
		ErrUserNotFound,
		ErrNewsNotFound,
		ErrFeedNotFound,
		ErrCommentNotFound,
		ErrSourceNotFound,
		ErrVerdictNotAvailable,
		ErrDuplicateFeedName,
		ErrDuplicateSource,
		ErrSelfReferral,
		ErrAlreadyModerated,
		ErrFeedNotOwned,
		ErrInvalidRequest,
		ErrInvalidRating,
		ErrInvalidAction,
		ErrInvalidFrequency,
		ErrInvalidBlockType,
		ErrUnknownModerationAction,
		ErrInviteInvalid,
		ErrServiceOverloaded,
	}

	messages := make(map[string]bool)
	for _, err := range sentinels {
		msg := err.Error()
		if messages[msg] {
			t.Errorf("duplicate error message found: %q", msg)
		}
		messages[msg] = true
	}
}
