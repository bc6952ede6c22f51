package lib

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// RequestIdKey is the gin context key under which the request id middleware stores the id.
const RequestIdKey = "request_id"

func JsonLogFormatter(params gin.LogFormatterParams) string {
	logline := map[string]interface{}{
		"time":    params.TimeStamp.UTC().Format("2006-01-02T15:04:05.999"),
		"status":  params.StatusCode,
		"latency": params.Latency.String(),
		"client":  params.ClientIP,
		"method":  params.Method,
		"path":    params.Path,
	}
	if params.ErrorMessage != "" {
		logline["error"] = params.ErrorMessage
	}
	if id, ok := params.Keys[RequestIdKey]; ok {
		logline[RequestIdKey] = id
	}
	b, _ := json.Marshal(logline)
	return string(b) + "\n"
}
