// Package upstream proxies requests to the real site once a visitor gets past
// the coming-soon page.
package upstream
