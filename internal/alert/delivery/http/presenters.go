package http

import "alertr-srv/internal/alert"

const serviceName = "claude-alertr"

type channelsResp struct {
	Webhook  bool     `json:"webhook"`
	Email    bool     `json:"email"`
	Shoutrrr []string `json:"shoutrrr"`
}

type statusResp struct {
	Service  string       `json:"service"`
	Status   string       `json:"status"`
	Version  string       `json:"version"`
	Channels channelsResp `json:"channels"`
}

func (h *Handler) newStatusResp(cs alert.ChannelStatus) statusResp {
	shoutrrr := cs.Shoutrrr
	if shoutrrr == nil {
		shoutrrr = []string{}
	}
	return statusResp{
		Service: serviceName,
		Status:  "ok",
		Version: h.version,
		Channels: channelsResp{
			Webhook:  cs.Webhook,
			Email:    cs.Email,
			Shoutrrr: shoutrrr,
		},
	}
}

type alertResp struct {
	Results   map[string]bool `json:"results"`
	Delivered int             `json:"delivered"`
	Total     int             `json:"total"`
}

func newAlertResp(r alert.Report) alertResp {
	return alertResp{
		Results:   r.Map(),
		Delivered: r.Delivered(),
		Total:     len(r),
	}
}
