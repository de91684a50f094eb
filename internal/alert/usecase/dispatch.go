package usecase

import (
	"context"

	"alertr-srv/internal/alert"
	"alertr-srv/pkg/shoutrrr"

	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) Dispatch(ctx context.Context, urls []string, payload alert.Payload) []alert.Result {
	results := make([]alert.Result, len(urls))
	if len(urls) == 0 {
		return results
	}

	var g errgroup.Group
	for i, raw := range urls {
		g.Go(func() error {
			results[i] = uc.dispatchOne(ctx, i, raw, payload)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// dispatchOne never panics and never returns an error; every failure
// becomes Success=false.
func (uc *implUseCase) dispatchOne(ctx context.Context, idx int, raw string, payload alert.Payload) (res alert.Result) {
	u, ok := shoutrrr.Parse(raw)
	if !ok {
		uc.logger.Warnf(ctx, "alert.usecase.Dispatch: target %d is not a valid url", idx)
		return alert.Result{Service: alert.ServiceUnknown}
	}

	res = alert.Result{Service: u.Scheme}
	svc, ok := lookupService(u.Scheme)
	if !ok {
		uc.logger.Warnf(ctx, "alert.usecase.Dispatch: target %d: unsupported service %q", idx, u.Scheme)
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			uc.logger.Errorf(ctx, "alert.usecase.Dispatch: target %d (%s) panicked: %v", idx, u.Scheme, r)
			res.Success = false
		}
	}()

	if err := uc.deliver(ctx, svc, u, payload); err != nil {
		uc.logger.Warnf(ctx, "alert.usecase.Dispatch: target %d (%s): %v", idx, u.Scheme, err)
		return res
	}

	uc.logger.Debugf(ctx, "alert.usecase.Dispatch: target %d (%s) delivered", idx, u.Scheme)
	res.Success = true
	return res
}

func describeTarget(raw string) string {
	u, ok := shoutrrr.Parse(raw)
	if !ok {
		return alert.ServiceUnknown
	}
	return u.Scheme
}
