package server

import (
	"net/http"
)

// securityHeaders are stamped onto every response. Balances change on every
// wager, so nothing the API returns may be cached.
var securityHeaders = []struct{ name, value string }{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
	{HeaderCacheControl, HeaderValueNoStore},
}

// SecurityHeadersMiddleware adds securityHeaders before the handler runs
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, sh := range securityHeaders {
			h.Set(sh.name, sh.value)
		}
		next.ServeHTTP(w, r)
	})
}
