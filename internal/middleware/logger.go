package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

const maxLoggedBody = 2048

var skipPaths = []string{"/health"}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range skipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		start := time.Now()
		method := c.Request.Method

		var requestBody string
		if c.Request.Body != nil && c.Request.ContentLength > 0 && c.Request.ContentLength <= maxLoggedBody {
			if bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLoggedBody)); err == nil {
				c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
				requestBody = maskSensitive(string(bodyBytes), c.ContentType())
			}
		}

		log.Printf("%s→%s %s%s%s %s%s%s rid=%s",
			colorCyan, colorReset,
			methodColor(method), method, colorReset,
			colorBlue, path, colorReset,
			c.GetString("requestID"))
		if requestBody != "" {
			log.Printf("%s    body:%s %s", colorGray, colorReset, requestBody)
		}

		c.Next()

		status := c.Writer.Status()
		log.Printf("%s←%s %s%d%s %s %s %s%v%s rid=%s",
			colorCyan, colorReset,
			statusColor(status), status, colorReset,
			method, path,
			colorGray, time.Since(start), colorReset,
			c.GetString("requestID"))
	}
}

// maskSensitive hides credential fields before they reach the log
func maskSensitive(body, contentType string) string {
	if !strings.Contains(contentType, "application/json") {
		if len(body) > 200 {
			return body[:200] + "..."
		}
		return body
	}

	var data map[string]interface{}
	if json.Unmarshal([]byte(body), &data) != nil {
		return "[unparseable body]"
	}

	for key := range data {
		lower := strings.ToLower(key)
		if strings.Contains(lower, "senha") || strings.Contains(lower, "password") || strings.Contains(lower, "token") {
			data[key] = "********"
		}
	}

	masked, err := json.Marshal(data)
	if err != nil {
		return "[unparseable body]"
	}
	return string(masked)
}

func methodColor(method string) string {
	switch method {
	case "GET":
		return colorGreen
	case "POST":
		return colorBlue
	case "PUT":
		return colorYellow
	case "DELETE":
		return colorRed
	default:
		return colorReset
	}
}

func statusColor(status int) string {
	switch {
	case status >= 500:
		return colorRed
	case status >= 400:
		return colorYellow
	default:
		return colorGreen
	}
}
