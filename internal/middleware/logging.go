package middleware

import (
	"net/http"
	"time"

	"github.com/ali-ismaeel564/fitxAPI/pkg"

	log "github.com/sirupsen/logrus"
)

// LogRequest traces each request on the way in and out. The token itself is never logged.
func LogRequest(trustedProxies pkg.TrustedProxies) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			clientIP, err := pkg.ReadUserIP(r, trustedProxies)
			if err != nil {
				clientIP = "unknown"
			}

			entry := log.WithFields(log.Fields{
				"method":    r.Method,
				"path":      r.URL.Path,
				"ip":        clientIP,
				"has_token": r.Header.Get(AuthTokenHeader) != "",
			})
			entry.Trace(" ====> request")

			next.ServeHTTP(w, r)

			entry.WithField("took", time.Since(begin)).Trace(" <==== request done")
		})
	}
}
