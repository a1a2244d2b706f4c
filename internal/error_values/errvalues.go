package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrNotAuthenticated = errors.New("operation requires a signed-in user")
)

var (
	ErrRecipeNotFound = errors.New("recipe doesn't exist")
	ErrRecipeExists   = errors.New("recipe with such id already exists")
	ErrInlineImage    = errors.New("inline image payloads are not allowed, upload the image and store its url")
	ErrMealNotFound   = errors.New("meal is not in the day plan")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange   = errors.New("range end precedes its start")
	ErrLogItemMissing = errors.New("log item doesn't exist")
	ErrValidation     = errors.New("validation error")
)

var (
	ErrSummaryExists        = errors.New("summary for this date already exists")
	ErrNoLegacyPlan         = errors.New("no legacy plan record")
	ErrLegacyNotMoved       = errors.New("legacy plan still holds dates missing from the per-day store")
	ErrUpstream             = errors.New("upstream service failure")
	ErrMalformedParseResult = errors.New("malformed parse result")
)
