package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Hostname  string    `json:"hostname"`
	IPAddress string    `json:"ip_address"`
	Echo      *string   `json:"echo"`
	PathEcho  *string   `json:"path_echo"`
}

// HealthHandler answers the liveness probe, echoing the optional query
// and path strings back to the caller. Host identity is resolved once at
// startup; it does not change while the process lives.
func HealthHandler() gin.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	ip := resolveIP(hostname)
	return func(c *gin.Context) {
		h := Health{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
			Hostname:  hostname,
			IPAddress: ip,
		}
		if v, ok := c.GetQuery("echo"); ok {
			h.Echo = &v
		}
		if v := c.Param("path_echo"); v != "" {
			h.PathEcho = &v
		}
		c.JSON(http.StatusOK, h)
	}
}

func resolveIP(hostname string) string {
	addrs, err := net.LookupHost(hostname)
	if err != nil || len(addrs) == 0 {
		return "127.0.0.1"
	}
	return addrs[0]
}
