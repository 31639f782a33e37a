package xslog

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/garrettladley/lumi/internal/version"
	"github.com/garrettladley/lumi/internal/xhttp"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func RequestMethod(r *http.Request) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, r.Method)
}

func RequestPath(r *http.Request) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, r.URL.Path)
}

func IP(ip string) slog.Attr {
	const ipKey = "ip"
	return slog.String(ipKey, ip)
}

func RequestIP(r *http.Request) slog.Attr {
	return IP(xhttp.GetRequestIP(r))
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func ClientVersion(clientVersion string) slog.Attr {
	const clientVersionKey = "client_version"
	return slog.String(clientVersionKey, clientVersion)
}

func ServerVersion(serverVersion string) slog.Attr {
	const serverVersionKey = "server_version"
	return slog.String(serverVersionKey, serverVersion)
}

func MinVersion(minVersion string) slog.Attr {
	const minVersionKey = "min_version"
	return slog.String(minVersionKey, minVersion)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}

func Face(i int) slog.Attr {
	const faceKey = "face"
	return slog.Int(faceKey, i)
}

func Color(hex string) slog.Attr {
	const colorKey = "color"
	return slog.String(colorKey, hex)
}

func PatternID(id int) slog.Attr {
	const patternIDKey = "pattern_id"
	return slog.Int(patternIDKey, id)
}

func PatternName(name string) slog.Attr {
	const patternNameKey = "pattern_name"
	return slog.String(patternNameKey, name)
}

func Device(name string) slog.Attr {
	const deviceKey = "device"
	return slog.String(deviceKey, name)
}

func DeviceURL(url string) slog.Attr {
	const deviceURLKey = "device_url"
	return slog.String(deviceURLKey, url)
}

func Backend(name string) slog.Attr {
	const backendKey = "backend"
	return slog.String(backendKey, name)
}

func Effect(kind string) slog.Attr {
	const effectKey = "effect"
	return slog.String(effectKey, kind)
}

func Bytes(n int) slog.Attr {
	const bytesKey = "bytes"
	return slog.Int(bytesKey, n)
}
