package alert

// Payload describes one "waiting for input" event.
type Payload struct {
	SessionID        string `json:"session_id"`
	NotificationType string `json:"notification_type"`
	Message          string `json:"message,omitempty"`
	Title            string `json:"title,omitempty"`
	Details          string `json:"details,omitempty"`
	Cwd              string `json:"cwd,omitempty"`
	Hostname         string `json:"hostname,omitempty"`
	Timestamp        string `json:"timestamp,omitempty"`
}

// MissingFields lists the required fields that are empty, in a stable order.
func (p Payload) MissingFields() []string {
	var missing []string
	if p.SessionID == "" {
		missing = append(missing, "session_id")
	}
	if p.NotificationType == "" {
		missing = append(missing, "notification_type")
	}
	return missing
}

// Result is the outcome of one Shoutrrr URL.
type Result struct {
	Service string `json:"service"`
	Success bool   `json:"success"`
}

const ServiceUnknown = "unknown"

const (
	ChannelWebhook = "webhook"
	ChannelEmail   = "email"
)

// ChannelResult is one entry of a Report. Key is unique within the report.
type ChannelResult struct {
	Key     string
	Service string
	Success bool
}

type Report []ChannelResult

// Delivered counts successful channels.
func (r Report) Delivered() int {
	n := 0
	for _, c := range r {
		if c.Success {
			n++
		}
	}
	return n
}

// Map returns key -> success.
func (r Report) Map() map[string]bool {
	m := make(map[string]bool, len(r))
	for _, c := range r {
		m[c.Key] = c.Success
	}
	return m
}

// ChannelStatus reports which channels are configured.
type ChannelStatus struct {
	Webhook  bool
	Email    bool
	Shoutrrr []string
}
