package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"construction-cost-app/internal/modules/shared/infrastructure/ratelimit"
)

// MockLimiter テスト用のモックリミッター
type MockLimiter struct {
	AllowFunc func(ctx context.Context, key string) (ratelimit.Decision, error)
}

func (m *MockLimiter) Allow(ctx context.Context, key string) (ratelimit.Decision, error) {
	return m.AllowFunc(ctx, key)
}

func TestRateLimit(t *testing.T) {
	resetAt := time.Now().Add(30 * time.Second)

	tests := []struct {
		name        string
		method      string
		decision    ratelimit.Decision
		allowErr    error
		wantStatus  int
		wantCalled  bool
		wantHeaders bool
	}{
		{
			name:        "正常系: 上限内のPOST",
			method:      http.MethodPost,
			decision:    ratelimit.Decision{Allowed: true, Limit: 10, Remaining: 9, ResetAt: resetAt},
			wantStatus:  http.StatusOK,
			wantCalled:  true,
			wantHeaders: true,
		},
		{
			name:        "異常系: 上限超過のPATCH",
			method:      http.MethodPatch,
			decision:    ratelimit.Decision{Allowed: false, Limit: 10, Remaining: 0, ResetAt: resetAt},
			wantStatus:  http.StatusTooManyRequests,
			wantCalled:  false,
			wantHeaders: true,
		},
		{
			name:       "正常系: GETは対象外",
			method:     http.MethodGet,
			decision:   ratelimit.Decision{Allowed: false},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "異常系: リミッター障害時は通す",
			method:     http.MethodPost,
			allowErr:   errors.New("redis: connection refused"),
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := &MockLimiter{
				AllowFunc: func(ctx context.Context, key string) (ratelimit.Decision, error) {
					return tt.decision, tt.allowErr
				},
			}
			called := false
			handler := RateLimit(limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/api/v1/projects", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status code = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != tt.wantCalled {
				t.Errorf("next called = %v, want %v", called, tt.wantCalled)
			}
			if got := rec.Header().Get("X-RateLimit-Limit") != ""; got != tt.wantHeaders {
				t.Errorf("X-RateLimit-Limit present = %v, want %v", got, tt.wantHeaders)
			}
			if tt.wantStatus == http.StatusTooManyRequests && rec.Header().Get("Retry-After") == "" {
				t.Error("Retry-After header not set")
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	trusted := parseTrustedProxies([]string{"10.0.0.0/8", "192.0.2.50"})

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{
			name:       "正常系: RemoteAddrのホスト部",
			remoteAddr: "192.0.2.1:1234",
			want:       "192.0.2.1",
		},
		{
			name:       "正常系: 信頼済みプロキシ経由ならX-Forwarded-Forを使う",
			remoteAddr: "10.0.0.1:1234",
			forwarded:  "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "正常系: 右から辿って最初の信頼外アドレス",
			remoteAddr: "192.0.2.50:1234",
			forwarded:  "198.51.100.1, 203.0.113.7, 10.1.2.3",
			want:       "203.0.113.7",
		},
		{
			name:       "異常系: 信頼外の接続元が送ったX-Forwarded-Forは無視",
			remoteAddr: "192.0.2.1:1234",
			forwarded:  "203.0.113.7",
			want:       "192.0.2.1",
		},
		{
			name:       "境界値: 信頼済みプロキシでもヘッダーがなければRemoteAddr",
			remoteAddr: "10.0.0.1:1234",
			want:       "10.0.0.1",
		},
		{
			name:       "境界値: ポートなしのRemoteAddr",
			remoteAddr: "192.0.2.9",
			want:       "192.0.2.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := clientIP(req, trusted); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimit_ForwardedForRotationIsIgnored(t *testing.T) {
	keys := map[string]int{}
	limiter := &MockLimiter{
		AllowFunc: func(ctx context.Context, key string) (ratelimit.Decision, error) {
			keys[key]++
			return ratelimit.Decision{Allowed: true, Limit: 10, Remaining: 9, ResetAt: time.Now().Add(time.Minute)}, nil
		},
	}
	handler := RateLimit(limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for _, forwarded := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
		req.RemoteAddr = "192.0.2.1:5555"
		req.Header.Set("X-Forwarded-For", forwarded)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	if len(keys) != 1 || keys["192.0.2.1"] != 3 {
		t.Errorf("limiter keys = %v, want all requests keyed by 192.0.2.1", keys)
	}
}
