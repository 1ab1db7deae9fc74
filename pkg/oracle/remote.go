package oracle

import (
	"context"

	"github.com/gorilla/websocket"

	"github.com/lgoulart/jumpmap/pkg/errors"
	"github.com/lgoulart/jumpmap/pkg/observability"
)

// Wire operation identifiers for the oracle protocol.
const (
	opHello     = "hello"
	opConfigure = "configure"
	opAdvance   = "advance"
	opState     = "state"
)

// request is a single client → oracle message. One request is answered by
// exactly one response; the protocol has no unsolicited server messages.
type request struct {
	Op        string  `json:"op"`
	Level     int     `json:"level,omitempty"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	WindPhase float64 `json:"wind_phase,omitempty"`
	Frames    int     `json:"frames,omitempty"`
	Command   int     `json:"command,omitempty"`

	// hello fields, sent once per connection
	Headless bool `json:"headless,omitempty"`
	FPS      int  `json:"fps,omitempty"`
	Paused   bool `json:"paused,omitempty"`
}

// response is a single oracle → client message.
type response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	State *State `json:"state,omitempty"`
}

// Remote drives an instrumented game process over a WebSocket connection.
//
// The game side owns all bootstrapping (display mode, working directory,
// asset loading); Remote only speaks the configure/advance/state protocol.
// Any transport failure is fatal: once a message is lost the simulation
// state is unknown and cannot be trusted, so Remote surfaces
// ORACLE_UNAVAILABLE and the caller must abort the run rather than retry.
type Remote struct {
	conn *websocket.Conn
	addr string
	dead bool
}

// DialRemote connects to an oracle endpoint (e.g. "ws://localhost:7777/oracle")
// and sends the runtime configuration. The configuration is applied once at
// construction and never mutated afterwards.
func DialRemote(ctx context.Context, addr string, rc RuntimeConfig) (*Remote, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, addr, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOracleUnavailable, err, "dial oracle %s", addr)
	}

	r := &Remote{conn: conn, addr: addr}
	if _, err := r.roundTrip(ctx, request{
		Op:       opHello,
		Headless: rc.Headless,
		FPS:      rc.FPS,
		Paused:   rc.Paused,
	}); err != nil {
		conn.Close()
		return nil, err
	}
	return r, nil
}

// Configure resets the remote simulation to the given takeoff state.
// Ranges are validated locally before any message is sent.
func (r *Remote) Configure(ctx context.Context, level int, x, y, windPhase float64) error {
	if err := errors.ValidateLevel(level); err != nil {
		return err
	}
	if err := errors.ValidateCoordinates(x, y); err != nil {
		return err
	}
	if err := errors.ValidateWindPhase(windPhase); err != nil {
		return err
	}
	observability.Oracle().OnConfigure(ctx, level, x, y)
	_, err := r.roundTrip(ctx, request{Op: opConfigure, Level: level, X: x, Y: y, WindPhase: windPhase})
	return err
}

// Advance steps the remote simulation while holding cmd for every tick.
func (r *Remote) Advance(ctx context.Context, frames int, cmd Command) error {
	observability.Oracle().OnAdvance(ctx, frames, cmd.String())
	_, err := r.roundTrip(ctx, request{Op: opAdvance, Frames: frames, Command: int(cmd)})
	return err
}

// ReadState returns the current remote snapshot.
func (r *Remote) ReadState(ctx context.Context) (State, error) {
	resp, err := r.roundTrip(ctx, request{Op: opState})
	if err != nil {
		return State{}, err
	}
	if resp.State == nil {
		r.dead = true
		return State{}, errors.New(errors.ErrCodeOracleProtocol, "state response missing state payload")
	}
	return *resp.State, nil
}

// Close closes the underlying connection.
func (r *Remote) Close() error {
	return r.conn.Close()
}

// roundTrip writes one request and reads its response. Transport errors
// mark the connection dead; all subsequent calls fail fast.
func (r *Remote) roundTrip(ctx context.Context, req request) (response, error) {
	if r.dead {
		return response{}, errors.New(errors.ErrCodeOracleUnavailable, "oracle connection %s is dead", r.addr)
	}
	if err := ctx.Err(); err != nil {
		return response{}, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = r.conn.SetWriteDeadline(deadline)
		_ = r.conn.SetReadDeadline(deadline)
	}

	if err := r.conn.WriteJSON(req); err != nil {
		r.dead = true
		observability.Oracle().OnError(ctx, req.Op, err)
		return response{}, errors.Wrap(errors.ErrCodeOracleUnavailable, err, "write %s to %s", req.Op, r.addr)
	}

	var resp response
	if err := r.conn.ReadJSON(&resp); err != nil {
		r.dead = true
		observability.Oracle().OnError(ctx, req.Op, err)
		return response{}, errors.Wrap(errors.ErrCodeOracleUnavailable, err, "read %s response from %s", req.Op, r.addr)
	}
	if !resp.OK {
		return response{}, errors.New(errors.ErrCodeOracleProtocol, "oracle rejected %s: %s", req.Op, respError(resp))
	}
	return resp, nil
}

func respError(resp response) string {
	if resp.Error != "" {
		return resp.Error
	}
	return "no reason given"
}

var _ Oracle = (*Remote)(nil)
