package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// FormatName records the machine name of an input format, e.g. "eth_address".
func FormatName(name string) slog.Attr {
	return slog.String("format", name)
}

// Label records the human-readable format label, e.g. "Ethereum address".
func Label(label string) slog.Attr {
	return slog.String("label", label)
}

// Input records the raw input under the key "input".
func Input(value string) slog.Attr {
	return slog.String("input", value)
}

// Policy records the failure policy under the key "policy".
func Policy(p string) slog.Attr {
	return slog.String("policy", p)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the caller address under the key "client_ip".
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}
