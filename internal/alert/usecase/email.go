package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"alertr-srv/internal/alert"
	"alertr-srv/pkg/resend"
)

var emailTemplate = template.Must(template.New("alert").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, sans-serif; line-height: 1.5;">
<h2>{{.Title}}</h2>
{{range .Lines}}<p>{{.}}</p>
{{end}}<table style="border-collapse: collapse; font-size: 13px; color: #555;">
<tr><td style="padding-right: 12px;">Session</td><td><code>{{.Payload.SessionID}}</code></td></tr>
<tr><td style="padding-right: 12px;">Type</td><td>{{.Payload.NotificationType}}</td></tr>
{{if .Payload.Hostname}}<tr><td style="padding-right: 12px;">Host</td><td>{{.Payload.Hostname}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type emailView struct {
	Title   string
	Lines   []string
	Payload alert.Payload
}

func renderEmail(p alert.Payload) (subject, html string, err error) {
	msg := formatMessage(p)
	subject = p.Title
	if subject == "" {
		subject = msg.Title
	}

	var buf bytes.Buffer
	view := emailView{Title: msg.Title, Lines: strings.Split(msg.Body, "\n"), Payload: p}
	if err := emailTemplate.Execute(&buf, view); err != nil {
		return "", "", fmt.Errorf("render email: %w", err)
	}
	return subject, buf.String(), nil
}

func (uc *implUseCase) sendEmail(ctx context.Context, p alert.Payload) error {
	subject, html, err := renderEmail(p)
	if err != nil {
		return err
	}
	return uc.email.Send(ctx, resend.Email{To: uc.emailTo, Subject: subject, HTML: html})
}
