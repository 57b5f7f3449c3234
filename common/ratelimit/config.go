package ratelimit

// Limits defines the rate limit scopes the service enforces
type Limits struct {
	GlobalPerWindow int64 // Total requests per window across all clients
	WritePerWindow  int64 // Write requests per window per client IP
	WindowSeconds   int   // Time window in seconds
}

// DefaultLimits are sensible defaults for a small public board
var DefaultLimits = Limits{
	GlobalPerWindow: 1000,
	WritePerWindow:  30,
	WindowSeconds:   60,
}
