// Package clientip extracts the client address of an HTTP request behind proxies.
//
// Headers are checked in priority order: CF-Connecting-IP, DO-Connecting-IP,
// X-Forwarded-For (leftmost entry), X-Real-IP, then RemoteAddr. Addresses are
// normalized with net.IP.String, so "::ffff:192.0.2.1" becomes "192.0.2.1".
//
// Only trust these headers when a proxy you control overwrites them.
package clientip
