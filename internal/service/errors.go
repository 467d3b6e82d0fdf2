package service

import "errors"

var (
	// ErrBankNotFound means the quiz id does not match a stored bank.
	ErrBankNotFound = errors.New("question bank not found")

	// ErrSessionNotFound means the session id is unknown.
	ErrSessionNotFound = errors.New("quiz session not found")

	// ErrQuestionNotFound means the question id is absent from the
	// session's bank.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrSessionComplete is returned when an answer is submitted to a
	// finished session. Completed sessions are read-only.
	ErrSessionComplete = errors.New("quiz session already complete")

	// ErrGenerationFailed means the external generator collaborator could
	// not produce a usable bank. The service never retries; retry policy
	// belongs to the generator.
	ErrGenerationFailed = errors.New("question bank generation failed")
)

// NotFound reports whether err is one of the not-found conditions a caller
// maps to a 404-style response.
func NotFound(err error) bool {
	return errors.Is(err, ErrBankNotFound) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrQuestionNotFound)
}
