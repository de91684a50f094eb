package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime"
	"sort"
	"strings"

	"alertr-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

// redactedHeaders are never copied into bug reports.
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stackTrace []string
	for {
		f, more := frames.Next()
		stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return stackTrace
}

// sendDiscordMessageAsync sends the report in chunks from a detached goroutine.
func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	if d == nil || message == "" {
		return
	}
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				// The request logger is gone by now.
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	var bodyBytes []byte
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		bodyBytes, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}

	var sb strings.Builder
	sb.WriteString("============= CLAUDE-ALERTR SERVICE ERROR =============\n")
	fmt.Fprintf(&sb, "Route   : %s\n", c.Request.URL.Path)
	fmt.Fprintf(&sb, "Method  : %s\n", c.Request.Method)
	sb.WriteString("-------------------------------------------------------\n")

	if len(c.Request.Header) > 0 {
		keys := make([]string, 0, len(c.Request.Header))
		for k := range c.Request.Header {
			if !redactedHeaders[k] {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		sb.WriteString("Headers :\n")
		for _, k := range keys {
			fmt.Fprintf(&sb, "    %s: %s\n", k, strings.Join(c.Request.Header[k], ", "))
		}
		sb.WriteString("-------------------------------------------------------\n")
	}

	if len(bodyBytes) > 0 {
		sb.WriteString("Body    :\n")
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, bodyBytes, "    ", "  "); err == nil {
			sb.WriteString("    " + pretty.String() + "\n")
		} else {
			sb.WriteString("    " + string(bodyBytes) + "\n")
		}
		sb.WriteString("-------------------------------------------------------\n")
	}

	fmt.Fprintf(&sb, "Error   : %s\n", errString)
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			fmt.Fprintf(&sb, "[%d]: %s\n", i, line)
		}
	}
	sb.WriteString("=======================================================\n")
	return sb.String()
}
