// Package http provides the JSON response envelope shared by handlers and
// middleware.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kochabx/cipherkit/errors"
)

const (
	StatusOK                  = http.StatusOK
	StatusBadRequest          = http.StatusBadRequest
	StatusUnauthorized        = http.StatusUnauthorized
	StatusInternalServerError = http.StatusInternalServerError
)

const (
	defaultSuccessMsg = "success"
	defaultErrorMsg   = "operation failed"

	successCode = http.StatusOK
)

// Response is the body of every JSON response
type Response[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data T      `json:"data,omitempty"`
}

// Encoder seals a payload into an envelope. *rsa.Engine implements it.
type Encoder interface {
	Encode(message []byte) (string, error)
}

// GinJSON writes a success response carrying data.
//
//	GinJSON(c, map[string]int{"bits": 2048})
//	// {"code":200,"msg":"success","data":{"bits":2048}}
func GinJSON(c *gin.Context, data any) {
	if c == nil {
		return
	}
	c.JSON(http.StatusOK, Success(data))
}

// GinJSONE writes a response with a custom code. The HTTP status is always
// 200. data is interpreted by type:
//   - error: its message, taken from *errors.Error when possible
//   - string: the message
//   - nil: a default message
//   - anything else: the data field
func GinJSONE(c *gin.Context, code int, data any) {
	if c == nil {
		return
	}

	resp := &Response[any]{Code: code}
	switch v := data.(type) {
	case error:
		resp.Msg = errorMessage(v)
	case string:
		resp.Msg = v
	case nil:
		resp.Msg = defaultErrorMsg
	default:
		resp.Data = v
	}
	c.JSON(http.StatusOK, resp)
}

// GinSealed writes a success response whose data is the sealed JSON of
// data. Payloads too large for enc fail and nothing is written.
//
//	GinSealed(c, engine, gin.H{"token": "..."})
//	// {"code":200,"msg":"success","data":"eyJ2YWx1ZSI6..."}
func GinSealed(c *gin.Context, enc Encoder, data any) error {
	if c == nil {
		return nil
	}
	if enc == nil {
		return errors.Internal("response encoder is required")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Internal("marshal response failed").WithCause(err)
	}
	sealed, err := enc.Encode(payload)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, Success(sealed))
	return nil
}

func errorMessage(err error) string {
	if err == nil {
		return defaultErrorMsg
	}
	return errors.FromError(err).Message
}

// Success returns a success response
func Success[T any](data T) *Response[T] {
	return &Response[T]{
		Code: successCode,
		Msg:  defaultSuccessMsg,
		Data: data,
	}
}

// Failure returns a failure response
func Failure(code int, msg string) *Response[any] {
	return &Response[any]{
		Code: code,
		Msg:  msg,
	}
}
