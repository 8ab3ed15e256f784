package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"
	"mobile-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderIdempotencyKey opts a POST/DELETE request into the replay
	// cache.
	HeaderIdempotencyKey = "Idempotency-Key"
	// HeaderIdempotencyReplayed marks a response served from the cache.
	HeaderIdempotencyReplayed = "Idempotency-Replayed"

	idempotencyTTL     = 24 * time.Hour
	idempotencyLockTTL = 30 * time.Second

	// Waiters poll the cache while another request with the same key is
	// in flight, then fail closed.
	lockPollInterval = 100 * time.Millisecond
	lockWaitMax      = 2 * time.Second
)

// cachedHTTPResponse is the serialized replay payload.
type cachedHTTPResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Location    string `json:"location,omitempty"`
	Body        []byte `json:"body"`
}

// bodyCapturingWriter tees the response body so a successful handler
// run can be stored for replay.
type bodyCapturingWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapturingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapturingWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency implements the replay cache for mutating endpoints.
// Only POST and DELETE requests carrying a non-empty Idempotency-Key
// header are gated; everything else passes through untouched. The
// first request under a key takes a short-lived lock, runs the handler
// and stores the response; concurrent holders of the same key wait
// briefly for the stored response and otherwise fail closed with
// IDEMPOTENCY_IN_PROGRESS. Server errors and cancelled requests are
// never cached, so a retry gets a fresh run.
func Idempotency(cache ports.IdempotencyCache, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method != http.MethodPost && method != http.MethodDelete {
			c.Next()
			return
		}
		headerKey := c.GetHeader(HeaderIdempotencyKey)
		if headerKey == "" {
			c.Next()
			return
		}

		keyHash := sha256.Sum256([]byte(headerKey))
		key := fmt.Sprintf("idemp:%s:%s:%s", c.Request.Method, c.Request.URL.Path, hex.EncodeToString(keyHash[:]))
		lockKey := key + ":lock"
		ctx := c.Request.Context()

		if replayed := replayCached(c, cache, key, log); replayed {
			return
		}

		acquired, err := cache.AcquireLock(ctx, lockKey, idempotencyLockTTL)
		if err != nil {
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}
		if !acquired {
			// Another request is in flight; wait for its response.
			deadline := time.Now().Add(lockWaitMax)
			for time.Now().Before(deadline) {
				select {
				case <-ctx.Done():
					response.Error(c, apperror.InternalError(ctx.Err()))
					c.Abort()
					return
				case <-time.After(lockPollInterval):
				}
				if replayed := replayCached(c, cache, key, log); replayed {
					return
				}
			}
			response.Error(c, apperror.ErrIdempotencyInProgress())
			c.Abort()
			return
		}

		writer := &bodyCapturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		status := writer.Status()
		if ctx.Err() != nil || status >= http.StatusInternalServerError {
			if err := cache.Unlock(ctx, lockKey); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("idempotency unlock failed")
			}
			return
		}

		payload, err := json.Marshal(cachedHTTPResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			Location:    writer.Header().Get("Location"),
			Body:        writer.buf.Bytes(),
		})
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("idempotency marshal failed")
			_ = cache.Unlock(ctx, lockKey)
			return
		}
		if err := cache.StoreAndUnlock(ctx, key, payload, idempotencyTTL, lockKey); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("idempotency store failed")
		}
	}
}

// replayCached serves a stored response if present.
func replayCached(c *gin.Context, cache ports.IdempotencyCache, key string, log zerolog.Logger) bool {
	data, err := cache.Get(c.Request.Context(), key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("idempotency lookup failed")
		return false
	}
	if data == nil {
		return false
	}

	var cached cachedHTTPResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("idempotency cache corrupt")
		return false
	}

	c.Header(HeaderIdempotencyReplayed, "true")
	if cached.Location != "" {
		c.Header("Location", cached.Location)
	}
	contentType := cached.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(cached.Status, contentType, cached.Body)
	c.Abort()
	return true
}
