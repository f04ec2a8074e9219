package server

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NatsBroadcaster is the default, concrete Broadcaster implementation
// (SPEC_FULL.md §4.10): it gives the external real-time pub/sub
// collaborator spec §1/§6 place out of scope one realistic implementation
// to exercise, without pulling in a websocket framework. Every outbound
// broadcast becomes one NATS publish on "<prefix>.<gameID>.<eventName>";
// a transport collaborator subscribes to "<prefix>.<gameID>.*" per game
// and fans messages out to that game's connected clients itself.
type NatsBroadcaster struct {
	nc            *nats.Conn
	subjectPrefix string
}

// NewNatsBroadcaster wraps an already-connected NATS client. subjectPrefix
// namespaces this deployment's subjects (e.g. "lexigrid") so multiple
// environments can share one NATS cluster.
func NewNatsBroadcaster(nc *nats.Conn, subjectPrefix string) *NatsBroadcaster {
	if subjectPrefix == "" {
		subjectPrefix = "lexigrid"
	}
	return &NatsBroadcaster{nc: nc, subjectPrefix: subjectPrefix}
}

// Broadcast implements Broadcaster.
func (n *NatsBroadcaster) Broadcast(gameID string, b Broadcast) error {
	data, err := json.Marshal(b.Data)
	if err != nil {
		return fmt.Errorf("server: marshal broadcast %q: %w", b.Name, err)
	}
	subject := fmt.Sprintf("%s.%s.%s", n.subjectPrefix, gameID, b.Name)
	return n.nc.Publish(subject, data)
}
