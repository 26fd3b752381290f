package errors

// BadRequest creates a 400 error
func BadRequest(format string, args ...any) *Error {
	return New(400, format, args...)
}

// Unauthorized creates a 401 error
func Unauthorized(format string, args ...any) *Error {
	return New(401, format, args...)
}

// Forbidden creates a 403 error
func Forbidden(format string, args ...any) *Error {
	return New(403, format, args...)
}

// NotFound creates a 404 error
func NotFound(format string, args ...any) *Error {
	return New(404, format, args...)
}

// UnprocessableEntity creates a 422 error
func UnprocessableEntity(format string, args ...any) *Error {
	return New(422, format, args...)
}

// Internal creates a 500 error
func Internal(format string, args ...any) *Error {
	return New(500, format, args...)
}
