// Package wire defines the messages exchanged between the authoritative
// peer and its replicas, and their encoding: a msgpack envelope tagging a
// msgpack payload, lz4-compressed inside the envelope once it outgrows a
// size threshold.
//
// Two logical channels carry these messages: an ordered-reliable one
// (websocket) for configuration and control, and an unreliable one (UDP)
// for periodic kinematic broadcasts that the next broadcast supersedes.
package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"orrery.space/internal/body"
	"orrery.space/internal/ship"
	"orrery.space/internal/vec"
)

// Kind discriminates the payload carried by an envelope.
type Kind uint8

const (
	// Server to client, reliable channel.
	KindInitialData Kind = iota + 1
	KindToggleTime
	KindBodiesConfig

	// Server to client, unreliable channel.
	KindPeriodicUpdate

	// Client to server, reliable channel.
	KindCreateShip

	// Client to server, unreliable channel: registers the datagram
	// return address for periodic updates.
	KindHello
)

func (k Kind) String() string {
	switch k {
	case KindInitialData:
		return "initial_data"
	case KindToggleTime:
		return "toggle_time"
	case KindBodiesConfig:
		return "bodies_config"
	case KindPeriodicUpdate:
		return "periodic_update"
	case KindCreateShip:
		return "create_ship"
	case KindHello:
		return "hello"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// compressThreshold is the payload size above which reliable payloads are
// lz4-framed.
const compressThreshold = 4 << 10

// maxPayload bounds a decoded payload, compressed or not.
const maxPayload = 4 << 20

type envelope struct {
	Kind       Kind   `msgpack:"k"`
	Compressed bool   `msgpack:"z"`
	Payload    []byte `msgpack:"p"`
}

// InitialData is sent once per new connection immediately upon acceptance.
// Token identifies the connection on the unreliable channel: the client
// echoes it in a Hello datagram to register its return address.
type InitialData struct {
	Bodies       body.Config `msgpack:"bodies"`
	ClockRunning bool        `msgpack:"running"`
	Token        string      `msgpack:"token"`
}

// ToggleTime announces a change of the authoritative running flag.
type ToggleTime struct {
	Running bool `msgpack:"running"`
}

// BodiesConfig announces a change of the catalog filter.
type BodiesConfig struct {
	Bodies body.Config `msgpack:"bodies"`
}

// ShipState is the wire projection of one ship's kinematics.
type ShipState struct {
	ID  string   `msgpack:"id"`
	Pos vec.Vec3 `msgpack:"pos"`
	Vel vec.Vec3 `msgpack:"vel"`
}

// PeriodicUpdate replicates the clock tick and all ship kinematics. It is
// never retried: a lost update is superseded by the next one.
type PeriodicUpdate struct {
	Tick  uint64      `msgpack:"tick"`
	Ships []ShipState `msgpack:"ships"`
}

// CreateShip asks the authoritative peer to adopt a ship the sender has
// already begun simulating. Pos and Vel carry the sender's current
// kinematics, which have moved on from the spawn record by the time the
// request lands; acceleration is re-derived on arrival.
type CreateShip struct {
	Info ship.Info `msgpack:"info"`
	Pos  vec.Vec3  `msgpack:"pos"`
	Vel  vec.Vec3  `msgpack:"vel"`
}

// Hello registers the sender's datagram address for periodic updates. The
// token was issued on the reliable channel at connection time.
type Hello struct {
	Token string `msgpack:"token"`
}

// Marshal encodes a message into an envelope, compressing payloads above
// the threshold.
func Marshal(kind Kind, msg any) ([]byte, error) {
	payload, err := msgpack.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", kind, err)
	}
	env := envelope{Kind: kind, Payload: payload}
	if len(payload) > compressThreshold {
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return nil, fmt.Errorf("compress %s payload: %w", kind, err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("compress %s payload: %w", kind, err)
		}
		env.Compressed = true
		env.Payload = buf.Bytes()
	}
	data, err := msgpack.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal %s envelope: %w", kind, err)
	}
	return data, nil
}

// Unmarshal decodes an envelope and returns its kind and raw payload,
// decompressed when needed.
func Unmarshal(data []byte) (Kind, []byte, error) {
	var env envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return 0, nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if len(env.Payload) > maxPayload {
		return 0, nil, fmt.Errorf("%s payload exceeds %d bytes", env.Kind, maxPayload)
	}
	payload := env.Payload
	if env.Compressed {
		zr := lz4.NewReader(bytes.NewReader(env.Payload))
		out, err := io.ReadAll(io.LimitReader(zr, maxPayload+1))
		if err != nil {
			return 0, nil, fmt.Errorf("decompress %s payload: %w", env.Kind, err)
		}
		if len(out) > maxPayload {
			return 0, nil, fmt.Errorf("%s payload exceeds %d bytes", env.Kind, maxPayload)
		}
		payload = out
	}
	return env.Kind, payload, nil
}

// Decode unmarshals a payload produced by Unmarshal into msg.
func Decode(kind Kind, payload []byte, msg any) error {
	if err := msgpack.Unmarshal(payload, msg); err != nil {
		return fmt.Errorf("unmarshal %s: %w", kind, err)
	}
	return nil
}

// CheckID validates an entity identifier taken off the wire.
func CheckID(id string) error {
	if id == "" {
		return fmt.Errorf("empty id")
	}
	if len(id) > body.MaxIDLen {
		return fmt.Errorf("id %q exceeds %d bytes", id[:body.MaxIDLen], body.MaxIDLen)
	}
	return nil
}
