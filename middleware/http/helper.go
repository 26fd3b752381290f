package middleware

import (
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// PathMatcher matches request paths against a fixed list.
//
// Three forms are supported:
//   - "/health" matches exactly "/health"
//   - "/public/**" matches "/public" and every path below it
//   - "/api/*/keys" is a path.Match pattern
type PathMatcher struct {
	exact    map[string]struct{}
	prefixes []string
	patterns []string
}

// NewPathMatcher compiles paths
func NewPathMatcher(paths []string) *PathMatcher {
	pm := &PathMatcher{exact: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		if prefix, ok := strings.CutSuffix(p, "/**"); ok {
			pm.prefixes = append(pm.prefixes, prefix)
		} else if strings.ContainsAny(p, "*?[") {
			pm.patterns = append(pm.patterns, p)
		} else {
			pm.exact[p] = struct{}{}
		}
	}
	return pm
}

// Match reports whether urlPath matches any entry. A nil matcher matches
// nothing.
func (pm *PathMatcher) Match(urlPath string) bool {
	if pm == nil {
		return false
	}
	if _, ok := pm.exact[urlPath]; ok {
		return true
	}
	for _, prefix := range pm.prefixes {
		rest, ok := strings.CutPrefix(urlPath, prefix)
		if ok && (rest == "" || rest[0] == '/') {
			return true
		}
	}
	for _, pattern := range pm.patterns {
		if matched, _ := path.Match(pattern, urlPath); matched {
			return true
		}
	}
	return false
}

// shouldSkip reports whether the request bypasses a middleware
func shouldSkip(c *gin.Context, matcher *PathMatcher, skipFunc func(*gin.Context) bool) bool {
	if skipFunc != nil && skipFunc(c) {
		return true
	}
	return matcher.Match(c.Request.URL.Path)
}
