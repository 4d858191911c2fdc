package middleware

import (
	"log"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// IPFilterMiddleware only lets clients inside one of the allowed CIDR ranges
// through. An empty list allows everyone. Bare addresses are treated as
// single-host ranges.
func IPFilterMiddleware(allowed []string) gin.HandlerFunc {
	// Parse allowlist into CIDR ranges
	allowedCIDRs := make([]*net.IPNet, 0, len(allowed))
	for _, cidr := range allowed {
		ipNet, err := parseRange(cidr)
		if err != nil {
			log.Printf("Ignoring invalid allowed IP range %q: %v", cidr, err)
			continue
		}
		allowedCIDRs = append(allowedCIDRs, ipNet)
	}

	return func(c *gin.Context) {
		if len(allowedCIDRs) == 0 {
			c.Next()
			return
		}

		// Extract client IP
		clientIP := extractIP(c)
		if clientIP == nil {
			c.AbortWithStatusJSON(403, gin.H{"error": "forbidden"})
			return
		}

		for _, ipNet := range allowedCIDRs {
			if ipNet.Contains(clientIP) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(403, gin.H{"error": "forbidden"})
	}
}

func parseRange(value string) (*net.IPNet, error) {
	value = strings.TrimSpace(value)
	if !strings.Contains(value, "/") {
		ip := net.ParseIP(value)
		if ip == nil {
			return nil, &net.ParseError{Type: "IP address", Text: value}
		}
		bits := 128
		if ip.To4() != nil {
			ip = ip.To4()
			bits = 32
		}
		return &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}, nil
	}
	_, ipNet, err := net.ParseCIDR(value)
	return ipNet, err
}

// extractIP returns the client address as resolved by the engine. Forwarding
// headers are honoured only from trusted proxies (see gin's SetTrustedProxies).
func extractIP(c *gin.Context) net.IP {
	return net.ParseIP(c.ClientIP())
}
