package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorilla/websocket"
	"github.com/oomph-ac/webxr"
	"github.com/oomph-ac/webxr/proximity"
	"github.com/oomph-ac/webxr/settings"
	"github.com/oomph-ac/webxr/tracking"
	"github.com/oomph-ac/webxr/virtual"
	"github.com/oomph-ac/webxr/worker"
	"github.com/sirupsen/logrus"
)

// Inbound message types sent by the page.
const (
	messageData       = "data"
	messageBegin      = "begin"
	messageEnd        = "end"
	messageTestTime   = "testTime"
	messageTogglePerf = "togglePerf"
)

// Outbound message types sent to the page.
const (
	messageFinishLoading  = "finishLoading"
	messagePostRender     = "postRender"
	messageTestTimeReturn = "testTimeReturn"
)

const writeTimeout = 5 * time.Second

type message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Bridge connects a WebXR page over a websocket to an engine driving a headless scene. Every
// engine call runs on a single worker loop.
type Bridge struct {
	log *logrus.Logger
	s   settings.Settings

	loop   *worker.Loop
	engine *webxr.Engine
	player *virtual.Player
	world  *virtual.World

	upgrader websocket.Upgrader

	connMu sync.Mutex
	conn   *websocket.Conn
	ready  bool
}

// NewBridge builds the headless scene and the engine driving it.
func NewBridge(log *logrus.Logger, s settings.Settings) (*Bridge, error) {
	b := &Bridge{
		log:    log,
		s:      s,
		loop:   worker.NewLoop(log, 64),
		player: virtual.NewPlayer(mgl32.Vec3{}),
		world:  virtual.NewWorld(log),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	e, err := webxr.New(log, s, webxr.Bindings{
		Render: b.player.Bindings(),
		Host:   bridgeHost{b: b},
		Interactions: []webxr.Interaction{
			{Point: b.player.LeftHand, Joint: b.world.NewJoint(b.player.LeftHand)},
			{Point: b.player.RightHand, Joint: b.world.NewJoint(b.player.RightHand)},
		},
	})
	if err != nil {
		b.loop.Close()
		return nil, err
	}
	b.engine = e
	b.spawnScene()
	if err := b.loop.Do(context.Background(), func() error {
		e.Loaded()
		return nil
	}); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bridge) spawnScene() {
	for i, x := range []float32{-0.3, 0, 0.3} {
		b.world.Spawn(mgl32.Vec3{x, 1, -0.4 - 0.1*float32(i)}, 0.08, proximity.InteractableTag)
	}
	b.world.Spawn(mgl32.Vec3{0, 0, 0}, 10, "Floor")
}

// ServeHTTP upgrades the request and serves the page until it disconnects. A new page replaces
// the one currently connected.
func (b *Bridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.log.Warnf("websocket upgrade failed: %v", err)
		return
	}
	b.connMu.Lock()
	if b.conn != nil {
		_ = b.conn.Close()
	}
	b.conn = conn
	ready := b.ready
	b.connMu.Unlock()
	b.log.Infof("page connected from %s", r.RemoteAddr)

	if ready {
		b.send(messageFinishLoading)
	}
	defer func() {
		b.connMu.Lock()
		if b.conn == conn {
			b.conn = nil
		}
		b.connMu.Unlock()
		_ = conn.Close()
		b.log.Infof("page %s disconnected", r.RemoteAddr)
	}()

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				b.log.Debugf("read from %s: %v", r.RemoteAddr, err)
			}
			return
		}
		if err := b.handle(r.Context(), msg); err != nil {
			b.log.Errorf("handling %s message: %v", msg.Type, err)
			if !isRecoverable(err) {
				return
			}
		}
	}
}

func (b *Bridge) handle(ctx context.Context, msg message) error {
	switch msg.Type {
	case messageData:
		var p tracking.Payload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return errPayloadDecode{err}
		}
		return b.loop.Do(ctx, func() error { return b.ingest(&p) })
	case messageBegin:
		return b.loop.Do(ctx, b.engine.Begin)
	case messageEnd:
		return b.loop.Do(ctx, b.engine.End)
	case messageTestTime:
		return b.loop.Submit(b.engine.TestTime)
	case messageTogglePerf:
		return b.loop.Submit(b.engine.TogglePerf)
	default:
		b.log.Debugf("ignoring unknown message type %q", msg.Type)
		return nil
	}
}

// ingest applies a payload and runs the grab button logic on its edges.
func (b *Bridge) ingest(p *tracking.Payload) error {
	if err := b.engine.Ingest(p); err != nil {
		return err
	}
	grab := b.s.Interaction.GrabButton
	for _, h := range tracking.Hands {
		if b.engine.KeyDown(h, grab) {
			b.engine.Pickup(h)
		}
		if b.engine.KeyUp(h, grab) {
			b.engine.Drop(h)
		}
	}
	return nil
}

// Run renders frames at the configured frame rate until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	frameTime := time.Second / time.Duration(b.s.Bridge.FrameRate)
	t := time.NewTicker(frameTime)
	defer t.Stop()
	perf := time.NewTicker(time.Second)
	defer perf.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			dt := now.Sub(last)
			last = now
			if err := b.loop.Do(ctx, func() error { return b.tick(dt) }); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
		case <-perf.C:
			_ = b.loop.Submit(func() {
				if text, shown := b.engine.PerfText(); shown {
					b.log.Infof("frame time: %s", text)
				}
			})
		}
	}
}

// tick advances the headless scene by one frame. The scene has nothing to flush, so the frame
// is submitted as soon as the cameras are updated.
func (b *Bridge) tick(dt time.Duration) error {
	b.world.Step(float32(dt.Seconds()))
	candidates := b.world.Candidates()
	for _, h := range tracking.Hands {
		b.engine.UpdateProximity(h, candidates)
	}
	frame, err := b.engine.Frame(dt)
	if err != nil {
		return err
	}
	if frame != nil {
		frame.Resume()
	}
	return nil
}

func (b *Bridge) send(msgType string) {
	b.connMu.Lock()
	defer b.connMu.Unlock()
	if b.conn == nil {
		return
	}
	_ = b.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := b.conn.WriteJSON(message{Type: msgType}); err != nil {
		b.log.Debugf("write %s: %v", msgType, err)
	}
}

// Close stops the worker loop and disconnects the page.
func (b *Bridge) Close() {
	b.loop.Close()
	b.connMu.Lock()
	defer b.connMu.Unlock()
	if b.conn != nil {
		_ = b.conn.Close()
		b.conn = nil
	}
}

// bridgeHost forwards host signals of the engine to the connected page.
type bridgeHost struct {
	b *Bridge
}

func (h bridgeHost) FinishLoading() {
	h.b.connMu.Lock()
	h.b.ready = true
	h.b.connMu.Unlock()
	h.b.send(messageFinishLoading)
}

func (h bridgeHost) FrameReady()     { h.b.send(messagePostRender) }
func (h bridgeHost) TestTimeReturn() { h.b.send(messageTestTimeReturn) }
