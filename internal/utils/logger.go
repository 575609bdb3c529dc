package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
)

var (
	infoTag      = color.New(color.FgBlue).SprintFunc()
	successTag   = color.New(color.FgGreen).SprintFunc()
	warningTag   = color.New(color.FgYellow).SprintFunc()
	errorTag     = color.New(color.FgRed).SprintFunc()
	debugTag     = color.New(color.FgMagenta).SprintFunc()
	requestTag   = color.New(color.FgCyan).SprintFunc()
	responseTag  = color.New(color.FgHiBlack).SprintFunc()
	dbTag        = color.New(color.FgHiBlack).SprintFunc()
	componentTag = color.New(color.FgCyan).SprintFunc()
	highlight    = color.New(color.FgWhite).SprintFunc()
	accent       = color.New(color.FgYellow).SprintFunc()
	failure      = color.New(color.FgRed).SprintFunc()
	okStatus     = color.New(color.FgGreen).SprintFunc()
)

func format(message string, args []interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf(message, args...)
	}
	return message
}

func logLine(tag func(a ...interface{}) string, level, component, message string) {
	log.Printf("%s %s %s", tag("["+level+"]"), componentTag("["+component+"]"), message)
}

func LogInfo(component, message string, args ...interface{}) {
	logLine(infoTag, "INFO", component, format(message, args))
}

func LogSuccess(component, message string, args ...interface{}) {
	logLine(successTag, "SUCCESS", component, format(message, args))
}

func LogWarning(component, message string, args ...interface{}) {
	logLine(warningTag, "WARNING", component, format(message, args))
}

func LogError(component, message string, err error) {
	if err != nil {
		logLine(errorTag, "ERROR", component, fmt.Sprintf("%s: %s", message, failure(err)))
		return
	}
	logLine(errorTag, "ERROR", component, message)
}

func LogDebug(component, message string, args ...interface{}) {
	logLine(debugTag, "DEBUG", component, format(message, args))
}

func LogRequest(method, path, token string) {
	if token == "" {
		token = "anonymous"
	}
	log.Printf("%s %s %s | Token: %s",
		requestTag("[REQUEST]"), highlight(method), path, accent(token))
}

// LogResponse окрашивает статус: 4xx жёлтым, 5xx красным.
func LogResponse(path string, statusCode int, duration time.Duration) {
	status := okStatus
	if statusCode >= 400 && statusCode < 500 {
		status = accent
	} else if statusCode >= 500 {
		status = failure
	}

	log.Printf("%s %s | Status: %s | Duration: %s",
		responseTag("[RESPONSE]"), path,
		status(statusCode), highlight(duration))
}

func LogDB(operation, query string) {
	log.Printf("%s %s %s", dbTag("[DB]"), highlight("["+operation+"]"), query)
}
