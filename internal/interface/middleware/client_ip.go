package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

const realIPKey = "real_ip"

// RealIP stores the client address under "real_ip". Forwarding headers are only
// honoured when the engine trusts the peer (SetTrustedProxies) or a
// TrustedPlatform header is configured; see ConfigureClientIP.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(realIPKey, c.ClientIP())
		c.Next()
	}
}

// ConfigureClientIP limits which peers may set X-Forwarded-For / X-Real-IP.
// An empty proxies list trusts nobody, so ClientIP is the socket address.
// platform names a CDN header such as gin.PlatformCloudflare; empty disables it.
func ConfigureClientIP(engine *gin.Engine, proxies []string, platform string) error {
	engine.TrustedPlatform = platform
	if len(proxies) == 0 {
		return engine.SetTrustedProxies(nil)
	}
	return engine.SetTrustedProxies(proxies)
}

// ipFromCtx extracts the client IP from Gin context, falling back to "unknown"
func ipFromCtx(c *gin.Context) string {
	if ip := c.GetString(realIPKey); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// AllowPrivateIP bypasses rate limits for loopback and private-range callers
// such as in-cluster scrapers.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		parsed := net.ParseIP(ipFromCtx(c))
		return parsed != nil && (parsed.IsLoopback() || parsed.IsPrivate())
	}
}
