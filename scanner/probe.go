package scanner

import (
	"net"
	"strconv"
	"time"
)

// Probe attempts a single TCP connection to host:port, waiting at most timeout
// for the handshake to complete. It reports only whether the port accepted the
// connection: refused, timed out, unreachable and unresolvable targets all
// collapse into not-open. The connection is closed before returning.
func Probe(host string, port int, timeout time.Duration) bool {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
