package logger

import (
	"log/slog"
	"time"
)

// Empty Attr values are dropped by slog, so helpers return slog.Attr{} for
// missing input instead of forcing nil checks at call sites.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an "error" attribute. Nil errors yield an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Latency creates a "latency" attribute.
func Latency(d time.Duration) slog.Attr {
	return slog.Duration("latency", d)
}

// RequestID creates a "request_id" attribute.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Method creates an HTTP "method" attribute.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates a URL "path" attribute.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode creates a "status_code" attribute.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// ClientIP creates a "client_ip" attribute.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

// UserAgent creates a "user_agent" attribute.
func UserAgent(ua string) slog.Attr {
	if ua == "" {
		return slog.Attr{}
	}
	return slog.String("user_agent", ua)
}

// Component creates a "component" attribute.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Action creates an "action" attribute.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Result creates a "result" attribute (success/failure/...).
func Result(result string) slog.Attr {
	return slog.String("result", result)
}

// Backend names the storage backend involved in an operation.
func Backend(name string) slog.Attr {
	return slog.String("backend", name)
}

// GateState records the access gate decision for a request.
func GateState(state string) slog.Attr {
	return slog.String("gate_state", state)
}

// Key creates a generic attribute. Nil values yield an empty Attr.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
