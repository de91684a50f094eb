package usecase

import (
	"strings"

	"alertr-srv/internal/alert"
)

const projectUnknown = "unknown"

type message struct {
	Title string
	Body  string
}

// projectName is the last segment of cwd.
func projectName(cwd string) string {
	if cwd == "" {
		return projectUnknown
	}
	parts := strings.Split(cwd, "/")
	if last := parts[len(parts)-1]; last != "" {
		return last
	}
	return projectUnknown
}

func formatMessage(p alert.Payload) message {
	title := "Claude Code: Action Required — " + projectName(p.Cwd)
	hostPrefix := ""
	if p.Hostname != "" {
		title += " (" + p.Hostname + ")"
		hostPrefix = "[" + p.Hostname + "] "
	}

	lines := []string{hostPrefix + "Claude Code is waiting for your input (" + p.NotificationType + ")"}
	if p.Details != "" {
		lines = append(lines, p.Details)
	}
	if p.Message != "" {
		lines = append(lines, p.Message)
	}
	cwd := p.Cwd
	if cwd == "" {
		cwd = projectUnknown
	}
	lines = append(lines, "Project: "+cwd)
	if p.Timestamp != "" {
		lines = append(lines, "Waiting since: "+p.Timestamp)
	}

	return message{Title: title, Body: strings.Join(lines, "\n")}
}
