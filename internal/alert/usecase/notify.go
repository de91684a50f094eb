package usecase

import (
	"context"
	"fmt"

	"alertr-srv/internal/alert"

	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) emailEnabled() bool {
	return uc.email != nil && len(uc.emailTo) > 0
}

func (uc *implUseCase) Notify(ctx context.Context, payload alert.Payload) (alert.Report, error) {
	if len(payload.MissingFields()) > 0 {
		return nil, alert.ErrInvalidPayload
	}

	var (
		g          errgroup.Group
		webhookOK  bool
		emailOK    bool
		targetRuns []alert.Result
	)
	if uc.webhookURL != "" {
		g.Go(func() error {
			webhookOK = uc.runChannel(ctx, alert.ChannelWebhook, func() error { return uc.sendWebhook(ctx, payload) })
			return nil
		})
	}
	if uc.emailEnabled() {
		g.Go(func() error {
			emailOK = uc.runChannel(ctx, alert.ChannelEmail, func() error { return uc.sendEmail(ctx, payload) })
			return nil
		})
	}
	if len(uc.urls) > 0 {
		g.Go(func() error {
			targetRuns = uc.Dispatch(ctx, uc.urls, payload)
			return nil
		})
	}
	_ = g.Wait()

	report := make(alert.Report, 0, 2+len(targetRuns))
	seen := map[string]bool{}
	if uc.webhookURL != "" {
		report = append(report, alert.ChannelResult{Key: uniqueKey(seen, alert.ChannelWebhook), Service: alert.ChannelWebhook, Success: webhookOK})
	}
	if uc.emailEnabled() {
		report = append(report, alert.ChannelResult{Key: uniqueKey(seen, alert.ChannelEmail), Service: alert.ChannelEmail, Success: emailOK})
	}
	for _, r := range targetRuns {
		report = append(report, alert.ChannelResult{Key: uniqueKey(seen, r.Service), Service: r.Service, Success: r.Success})
	}

	if len(report) == 0 {
		return nil, alert.ErrNoChannels
	}

	uc.logger.Infof(ctx, "alert.usecase.Notify: session %s delivered %d/%d", payload.SessionID, report.Delivered(), len(report))
	return report, nil
}

// runChannel isolates one built-in channel: errors and panics become false.
func (uc *implUseCase) runChannel(ctx context.Context, name string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Errorf(ctx, "alert.usecase.Notify: %s channel panicked: %v", name, r)
			ok = false
		}
	}()
	if err := fn(); err != nil {
		uc.logger.Warnf(ctx, "alert.usecase.Notify: %s channel: %v", name, err)
		return false
	}
	return true
}

// uniqueKey returns base the first time and base_2, base_3, ... afterwards.
func uniqueKey(seen map[string]bool, base string) string {
	key := base
	for n := 2; seen[key]; n++ {
		key = fmt.Sprintf("%s_%d", base, n)
	}
	seen[key] = true
	return key
}

func (uc *implUseCase) Channels() alert.ChannelStatus {
	services := make([]string, 0, len(uc.urls))
	for _, raw := range uc.urls {
		services = append(services, describeTarget(raw))
	}
	return alert.ChannelStatus{
		Webhook:  uc.webhookURL != "",
		Email:    uc.emailEnabled(),
		Shoutrrr: services,
	}
}
