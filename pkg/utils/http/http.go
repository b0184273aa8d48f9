package http

import (
	"net"
	"time"
)

const retries = 5

// IsListeningFunction is a function type for checking if http endpoint is responding.
type IsListeningFunction func(address string, timeout time.Duration) bool

// IsListening tries to connect to given address in a form of `host:port`.
// It returns true when it was able to connect to given endpoint within timeout time.
func IsListening(address string, timeout time.Duration) bool {
	sleepTime := time.Duration(timeout.Nanoseconds() / int64(retries))
	for i := 0; i < retries; i++ {
		conn, err := net.DialTimeout("tcp", address, sleepTime)
		if err != nil {
			time.Sleep(sleepTime)
			continue
		}
		conn.Close()
		return true
	}

	return false
}
