package middleware

import (
	"bytes"
	"io"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/kochabx/cipherkit/errors"
	"github.com/kochabx/cipherkit/log"
	"github.com/kochabx/cipherkit/transport/http"
	"github.com/kochabx/cipherkit/transport/http/metrics"
)

var (
	ErrEnvelopeFailed = errors.BadRequest("open request envelope failed")
)

// DefaultMaxEnvelopeBytes bounds the request body read by Envelope. A sealed
// message under an 8192-bit key stays well below it.
const DefaultMaxEnvelopeBytes = 16 << 10

// Codec seals and opens envelopes. *rsa.Engine implements it.
type Codec interface {
	Encode(message []byte) (string, error)
	Decode(envelope string) ([]byte, error)
}

// EnvelopeConfig configures the Envelope middleware
type EnvelopeConfig struct {
	Codec        Codec                     // required
	SkipPaths    []string                  // see PathMatcher
	SkipFunc     func(*gin.Context) bool   // skips the request when it returns true
	ErrorHandler func(*gin.Context, error) // must abort; answers ErrEnvelopeFailed by default
	Logger       *log.Logger               // defaults to log.G
	Metrics      *metrics.Envelope         // optional request counters
	MaxBodyBytes int64                     // defaults to DefaultMaxEnvelopeBytes
}

// Envelope returns a middleware that replaces a sealed request body with
// the message it carries. Requests without a body pass through unchanged.
// The body is the envelope text itself; surrounding whitespace is ignored.
func Envelope(cfg EnvelopeConfig) gin.HandlerFunc {
	if cfg.Codec == nil {
		panic("middleware: Codec is required")
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(c *gin.Context, err error) {
			http.GinJSONE(c, http.StatusBadRequest, ErrEnvelopeFailed)
			c.Abort()
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.G
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxEnvelopeBytes
	}

	matcher := NewPathMatcher(cfg.SkipPaths)

	return func(c *gin.Context) {
		if shouldSkip(c, matcher, cfg.SkipFunc) {
			cfg.Metrics.Observe(metrics.ResultSkipped)
			c.Next()
			return
		}

		c.Request.Body = stdhttp.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxBodyBytes)
		body, err := c.GetRawData()
		if err != nil {
			cfg.Metrics.Observe(metrics.ResultRejected)
			cfg.Logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("envelope: read request body failed")
			cfg.ErrorHandler(c, err)
			return
		}
		if len(bytes.TrimSpace(body)) == 0 {
			cfg.Metrics.Observe(metrics.ResultEmpty)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Next()
			return
		}

		message, err := cfg.Codec.Decode(string(body))
		if err != nil {
			// Decode errors carry no cause to log.
			cfg.Metrics.Observe(metrics.ResultRejected)
			cfg.Logger.Warn().Str("path", c.Request.URL.Path).Msg("envelope: rejected request")
			cfg.ErrorHandler(c, err)
			return
		}

		cfg.Metrics.Observe(metrics.ResultOpened)
		c.Request.Body = io.NopCloser(bytes.NewReader(message))
		c.Request.ContentLength = int64(len(message))

		c.Next()
	}
}
