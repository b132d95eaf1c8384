package repositories

import "errors"

// Remote failure taxonomy. Callers decide which of these are fatal for the
// request and which mean "optional feature unavailable".
var (
	// ErrConnection means the spreadsheet API could not be reached or
	// refused the credentials. Not retryable within the request.
	ErrConnection = errors.New("spreadsheet service unreachable")

	// ErrWorksheetNotFound means the named tab does not exist in the
	// workbook. Callers writing to optional sheets swallow this.
	ErrWorksheetNotFound = errors.New("worksheet not found")

	// ErrRemoteIO is a failure during a row operation.
	ErrRemoteIO = errors.New("spreadsheet operation failed")
)
