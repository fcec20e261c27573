// Package pubsub broadcasts team mutations to viewers of an event.
package pubsub

import (
	"context"
	"fmt"
	"time"
)

// Team event types published on an event's channel.
const (
	TypeTeamCreated     = "team.created"
	TypeTeamRenamed     = "team.renamed"
	TypeTeamStatus      = "team.status"
	TypeRequestCreated  = "team.request.created"
	TypeRequestApproved = "team.request.approved"
	TypeRequestRejected = "team.request.rejected"
	TypeMemberAdded     = "team.member.added"
)

// TeamEvent is the payload broadcast after a successful team mutation.
type TeamEvent struct {
	Type     string    `json:"type"`
	EventID  string    `json:"eventId"`
	TeamID   string    `json:"teamId"`
	TeamName string    `json:"teamName"`
	ActorID  string    `json:"actorId"`
	At       time.Time `json:"at"`
}

// Channel returns the pub/sub channel name for an event's team feed.
func Channel(eventID string) string {
	return fmt.Sprintf("event:%s:teams", eventID)
}

// Publisher publishes team mutation events. Publishing is fire-and-forget
// from the coordinator's point of view: a failed publish never fails the
// operation that triggered it.
type Publisher interface {
	Publish(ctx context.Context, event TeamEvent) error
}

// Subscriber delivers the team feed for one event. The returned cancel
// function releases the subscription and closes the channel.
type Subscriber interface {
	Subscribe(ctx context.Context, eventID string) (<-chan TeamEvent, func(), error)
}
