package resp

import (
	"net/http"

	"github.com/ecomida/ecomida/ecode"
)

// BadRequest indicates a validation or malformed-input failure.
func BadRequest(message string) *Exception {
	return newException(http.StatusBadRequest, ecode.RequestErr, message)
}

// UnAuthorized indicates that the request is unauthenticated.
func UnAuthorized(message string) *Exception {
	return newException(http.StatusUnauthorized, ecode.Unauthorized, message)
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string) *Exception {
	return newException(http.StatusNotFound, ecode.NothingFound, message)
}

// Forbidden indicates access is forbidden.
func Forbidden(message string) *Exception {
	return newException(http.StatusForbidden, ecode.AccessDenied, message)
}

// Conflict indicates a duplicate-resource conflict.
func Conflict(message string) *Exception {
	return newException(http.StatusConflict, ecode.Conflict, message)
}

// NotAllowed indicates the HTTP method is not allowed on the route.
func NotAllowed(message string) *Exception {
	return newException(http.StatusMethodNotAllowed, ecode.MethodNotAllowed, message)
}

// InternalServer indicates an unexpected server failure. Internal detail
// never reaches the client through this constructor.
func InternalServer(message string) *Exception {
	return newException(http.StatusInternalServerError, ecode.ServerErr, message)
}
