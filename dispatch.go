package stomp

import (
	"time"

	"go.uber.org/zap"
)

// readFrameTimed arms the stream's read deadline from the Client's
// configured ReadTimeout and reads one frame, recording the wall-clock
// timestamp before the read starts so the watchdog has a last-activity
// baseline. A deadline-exceeded read surfaces as an ordinary
// *TransportError here -- only the select-layer timeout of
// WaitForMessages signals a missed heartbeat. Used by Connect, which has
// no select phase of its own.
func (c *Client) readFrameTimed() (Response, error) {
	deadline := time.Now().Add(time.Duration(c.opts.ReadTimeout) * time.Millisecond)
	if err := c.stream.SetReadDeadline(deadline); err != nil {
		return Response{}, newTransportError("set read deadline", err)
	}
	return c.readFrameRecordingActivity()
}

// readFrameRecordingActivity records the wall-clock timestamp before
// reading, without touching the read deadline -- the caller
// (WaitForMessages) has already armed it to the select-layer timeout.
func (c *Client) readFrameRecordingActivity() (Response, error) {
	c.lastActivity = time.Now()
	return c.reader.readFrame()
}

// WaitForMessages runs the client's read/dispatch loop. With loop=true it
// runs until a fatal error or missed heartbeat; with loop=false it returns
// after the first dispatched non-heartbeat frame (leading HEARTBEAT frames
// are consumed and routed to onHeartbeat without counting toward "one
// message" -- see DESIGN.md for the reasoning behind that choice).
func (c *Client) WaitForMessages(loop bool) error {
	for {
		timeout := c.selectTimeout()

		if err := c.stream.SetReadDeadline(c.readyDeadline(timeout)); err != nil {
			return newTransportError("set read deadline", err)
		}

		resp, err := c.readFrameRecordingActivity()
		if err != nil {
			if isTimeout(err) {
				if err := c.missedHeartbeat(); err != nil {
					return err
				}
				if loop {
					continue
				}
				return nil
			}
			return err
		}

		dispatched, err := c.dispatch(resp)
		if err != nil {
			return err
		}
		if !loop && dispatched {
			return nil
		}
		if !loop && !dispatched {
			continue
		}
	}
}

// selectTimeout returns (heartbeat_seconds+1) as a time.Duration if a
// heartbeat interval is configured, else zero (block indefinitely). The
// extra second is slack against jitter in the broker's own heartbeat
// timer before a late beat is treated as missed.
func (c *Client) selectTimeout() time.Duration {
	if c.opts.Heartbeat > 0 {
		return time.Duration(c.opts.Heartbeat+1) * time.Second
	}
	return 0
}

// readyDeadline turns a zero timeout (block indefinitely) into the zero
// time.Time, which clears any deadline on the stream.
func (c *Client) readyDeadline(timeout time.Duration) time.Time {
	if timeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(timeout)
}

func (c *Client) missedHeartbeat() error {
	if c.onMissedHeartbeat != nil {
		c.onMissedHeartbeat(c)
		return nil
	}
	c.log.Warn("missed heartbeat, disconnecting", zap.String("lastActivity", c.lastActivity.String()))
	c.fail()
	return &HeartbeatTimeout{LastActivity: c.lastActivity.String()}
}

// dispatch routes resp to the appropriate handler slot and reports
// whether resp counted as a dispatched (non-heartbeat) frame.
func (c *Client) dispatch(resp Response) (dispatched bool, err error) {
	switch resp.Kind {
	case cmdHeartbeat:
		if c.onHeartbeat != nil {
			c.onHeartbeat(c, &resp)
		}
		return false, nil
	case cmdReceipt:
		if c.onReceipt != nil {
			c.onReceipt(c, &resp)
		}
		return true, nil
	case cmdMessage:
		if c.onMessage != nil {
			c.onMessage(c, &resp)
		}
		return true, nil
	case cmdError:
		if c.onError != nil {
			c.onError(c, &resp)
			return true, nil
		}
		msg, _ := resp.Header("message")
		c.log.Warn("protocol error from broker, disconnecting", zap.String("message", msg))
		c.fail()
		return true, &ProtocolError{Message: msg, Body: trimTrailingNewline(resp.Body)}
	default:
		if c.debug {
			c.log.Debug("unhandled frame kind", zap.String("kind", resp.Kind))
		}
		return true, nil
	}
}
