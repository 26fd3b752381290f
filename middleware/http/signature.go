package middleware

import (
	"bytes"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kochabx/cipherkit/errors"
	"github.com/kochabx/cipherkit/log"
	"github.com/kochabx/cipherkit/transport/http"
)

var (
	ErrSignatureFailed = errors.BadRequest("verify signature failed")
)

// Verifier checks a base64 signature. *rsa.Engine implements it.
type Verifier interface {
	Verify(message []byte, signature string) bool
}

// VerifierFunc adapts a function to Verifier
type VerifierFunc func(message []byte, signature string) bool

func (f VerifierFunc) Verify(message []byte, signature string) bool {
	return f(message, signature)
}

// SignatureConfig configures the Signature middleware. The signed message
// is the concatenation, in this order, of the enabled parts: method, path,
// query ("k=v" pairs sorted by key and joined by "&") and body.
type SignatureConfig struct {
	Verifier      Verifier                  // required
	HeaderName    string                    // defaults to "X-Signature"
	MethodEnabled bool                      // sign the request method
	PathEnabled   bool                      // sign the request path
	ParamsEnabled bool                      // sign the query parameters
	BodyEnabled   bool                      // sign the request body
	SkipPaths     []string                  // see PathMatcher
	SkipFunc      func(*gin.Context) bool   // skips the request when it returns true
	ErrorHandler  func(*gin.Context, error) // must abort; answers ErrSignatureFailed by default
	Logger        *log.Logger               // defaults to log.G
}

// DefaultSignatureConfig signs query parameters and body with verifier
func DefaultSignatureConfig(verifier Verifier) SignatureConfig {
	return SignatureConfig{
		Verifier:      verifier,
		HeaderName:    "X-Signature",
		ParamsEnabled: true,
		BodyEnabled:   true,
	}
}

// Signature returns a middleware rejecting requests whose signature header
// does not verify
func Signature(cfg SignatureConfig) gin.HandlerFunc {
	if cfg.Verifier == nil {
		panic("middleware: Verifier is required")
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Signature"
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(c *gin.Context, err error) {
			http.GinJSONE(c, http.StatusBadRequest, ErrSignatureFailed)
			c.Abort()
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.G
	}

	matcher := NewPathMatcher(cfg.SkipPaths)

	return func(c *gin.Context) {
		if shouldSkip(c, matcher, cfg.SkipFunc) {
			c.Next()
			return
		}

		signature := c.GetHeader(cfg.HeaderName)
		if signature == "" {
			cfg.Logger.Warn().Str("header", cfg.HeaderName).Msg("signature: header missing")
			cfg.ErrorHandler(c, ErrSignatureFailed)
			return
		}

		message, err := signedMessage(c, cfg)
		if err != nil {
			cfg.Logger.Error().Err(err).Msg("signature: read request failed")
			cfg.ErrorHandler(c, err)
			return
		}

		if !cfg.Verifier.Verify(message, signature) {
			cfg.Logger.Warn().Str("path", c.Request.URL.Path).Msg("signature: verify failed")
			cfg.ErrorHandler(c, ErrSignatureFailed)
			return
		}

		c.Next()
	}
}

// signedMessage builds the message the client signed. The body is put back
// for the next handler.
func signedMessage(c *gin.Context, cfg SignatureConfig) ([]byte, error) {
	var b bytes.Buffer

	if cfg.MethodEnabled {
		b.WriteString(c.Request.Method)
	}
	if cfg.PathEnabled {
		b.WriteString(c.Request.URL.Path)
	}
	if cfg.ParamsEnabled {
		params := c.Request.URL.Query()
		keys := slices.Sorted(maps.Keys(params))
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+"="+params.Get(k))
		}
		b.WriteString(strings.Join(pairs, "&"))
	}
	if cfg.BodyEnabled {
		body, err := c.GetRawData()
		if err != nil {
			return nil, err
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		b.Write(body)
	}

	return b.Bytes(), nil
}
