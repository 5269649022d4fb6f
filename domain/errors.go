// ABOUTME: Domain-level sentinel errors for the news-hub service
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Lookup errors
var (
	// ErrUserNotFound indicates the requested user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNewsNotFound indicates the requested news item does not exist
	ErrNewsNotFound = errors.New("news not found")

	// ErrFeedNotFound indicates the requested custom feed does not exist
	ErrFeedNotFound = errors.New("custom feed not found")

	// ErrCommentNotFound indicates the requested comment does not exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrSourceNotFound indicates the requested source does not exist
	ErrSourceNotFound = errors.New("source not found")

	// ErrVerdictNotAvailable indicates the item has not been fact-checked yet
	ErrVerdictNotAvailable = errors.New("fact-check verdict not available")

	// ErrSummaryNotCached indicates no summary has been generated for the item
	ErrSummaryNotCached = errors.New("summary not cached")
)

// Conflict errors
var (
	// ErrDuplicateFeedName indicates the user already owns a feed with that name
	ErrDuplicateFeedName = errors.New("custom feed name already exists")

	// ErrDuplicateSource indicates a source with the same name or link is registered
	ErrDuplicateSource = errors.New("source already exists")

	// ErrDuplicateEmail indicates another account already claimed the email
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrSelfReferral indicates a user tried to accept their own invite code
	ErrSelfReferral = errors.New("invite cannot be accepted by its issuer")

	// ErrAlreadyModerated indicates the target has already left the pending state
	ErrAlreadyModerated = errors.New("target already moderated")
)

// Authorization errors
var (
	// ErrFeedNotOwned indicates the feed belongs to a different user
	ErrFeedNotOwned = errors.New("custom feed not owned by user")
)

// Validation errors
var (
	// ErrInvalidRequest indicates the request format is invalid
	ErrInvalidRequest = errors.New("invalid request format")

	// ErrInvalidRating indicates a rating value outside 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidAction indicates an unsupported activity action
	ErrInvalidAction = errors.New("unsupported activity action")

	// ErrInvalidFrequency indicates an unsupported digest frequency
	ErrInvalidFrequency = errors.New("unsupported digest frequency")

	// ErrInvalidBlockType indicates an unsupported block scope
	ErrInvalidBlockType = errors.New("unsupported block type")

	// ErrInvalidFeedFilter indicates an unknown custom-feed filter kind
	ErrInvalidFeedFilter = errors.New("unsupported feed filter kind")

	// ErrUnknownModerationAction indicates an action outside the moderation vocabulary
	ErrUnknownModerationAction = errors.New("unknown moderation action")

	// ErrInviteInvalid indicates a missing, malformed, or already claimed invite code
	ErrInviteInvalid = errors.New("invite code invalid or already used")
)

// Capacity errors
var (
	// ErrServiceOverloaded indicates the ingestion queue is full; callers
	// must not wait and should retry later
	ErrServiceOverloaded = errors.New("ingestion queue overloaded")

	// ErrRateLimited indicates the caller exhausted its request budget
	ErrRateLimited = errors.New("too many requests")
)
