package ws

import (
	"encoding/json"
	"time"

	"jobhunt/internal/domain/job"
)

const (
	EventJobPosted  = "job_posted"
	EventJobRetired = "job_retired"
)

type JobEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Title     string `json:"title"`
	Company   string `json:"company,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Notifier turns catalog changes into broadcast events.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) JobPosted(p job.Posting) {
	n.publish(EventJobPosted, p)
}

func (n *Notifier) JobRetired(p job.Posting) {
	n.publish(EventJobRetired, p)
}

func (n *Notifier) publish(eventType string, p job.Posting) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := encodeEvent(eventType, p, n.now())
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}

func encodeEvent(eventType string, p job.Posting, at time.Time) ([]byte, error) {
	return json.Marshal(JobEvent{
		Type:      eventType,
		JobID:     p.ID.String(),
		Title:     p.Title,
		Company:   p.Company,
		Timestamp: at.UTC().Format(time.RFC3339),
	})
}
