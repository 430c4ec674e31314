package errors

import "net/http"

// TitleInternalServerError is the title reported for every unclassified failure.
const TitleInternalServerError = "Internal Server Error"

// Classify maps a kind to the HTTP status and title sent to the client.
func Classify(kind Kind) (status int, title string) {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound, kind.String()
	case KindAlreadyComplete, KindValidation, KindNullArgument, KindMalformedRequest:
		return http.StatusBadRequest, kind.String()
	default:
		return http.StatusInternalServerError, TitleInternalServerError
	}
}
