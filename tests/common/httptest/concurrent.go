//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Call is one request of a concurrent batch.
type Call struct {
	Method string
	Path   string
	Body   any
}

// PerformConcurrently releases every call at the same moment and waits for all
// of them. Recorders are returned in call order.
func PerformConcurrently(t *testing.T, router *gin.Engine, authToken string, calls ...Call) []*httptest.ResponseRecorder {
	t.Helper()

	payloads := make([][]byte, len(calls))
	for i, c := range calls {
		if c.Body == nil {
			continue
		}
		b, err := json.Marshal(c.Body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		payloads[i] = b
	}

	recorders := make([]*httptest.ResponseRecorder, len(calls))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, c := range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(c.Method, c.Path, bytes.NewReader(payloads[i]))
			if payloads[i] != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			if authToken != "" {
				req.Header.Set("Authorization", "Bearer "+authToken)
			}
			w := httptest.NewRecorder()
			<-start
			router.ServeHTTP(w, req)
			recorders[i] = w
		}()
	}
	close(start)
	wg.Wait()
	return recorders
}

// StatusCounts tallies response codes of a batch.
func StatusCounts(recorders []*httptest.ResponseRecorder) map[int]int {
	counts := make(map[int]int, 2)
	for _, w := range recorders {
		counts[w.Code]++
	}
	return counts
}
