// Package respond provides shared JSON response utilities for API handlers.
//
// The wire shapes follow what the browser tables already consume: plain
// arrays for row listings, {"error": ...} for public query failures, and
// success-flag envelopes for the search/standings/admin endpoints.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// JSON marshals v and writes it with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error sends the public-route error shape {"error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Fail sends the success-flag error shape {"success": false, "error": ...}.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]interface{}{"success": false, "error": message})
}

// FailMessage sends the admin error shape {"success": false, "message": ...}.
func FailMessage(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]interface{}{"success": false, "message": message})
}

// Data sends {"success": true, "data": v}.
func Data(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": v})
}

// Raw writes pre-marshalled JSON bytes with cache and ETag headers.
func Raw(w http.ResponseWriter, data []byte, etag string, ttl time.Duration, cacheHit bool) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Vary", "Accept-Encoding")
	setCacheHeaders(w, ttl, cacheHit)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// NotModified sends a 304 with the matching ETag.
func NotModified(w http.ResponseWriter, etag string) {
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
}

func setCacheHeaders(w http.ResponseWriter, ttl time.Duration, cacheHit bool) {
	maxAge := int(ttl.Seconds())
	if cacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.Header().Set("Cache-Control",
		fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAge, maxAge/2))
}
