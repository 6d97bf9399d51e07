package stomp

// ConnectedHandler is invoked once, synchronously, after a successful
// CONNECT/CONNECTED exchange.
type ConnectedHandler func(c *Client, r *Response)

// MessageHandler is invoked for each MESSAGE frame.
type MessageHandler func(c *Client, r *Response)

// ReceiptHandler is invoked for each RECEIPT frame.
type ReceiptHandler func(c *Client, r *Response)

// ErrorHandler is invoked for each ERROR frame read by WaitForMessages. If
// unset, the default behavior closes the stream, marks the Client
// disconnected and returns a *ProtocolError from WaitForMessages. An ERROR
// (or any other non-CONNECTED) reply to Connect is not passed to this
// handler: Connect always closes the stream and returns a *ProtocolError.
type ErrorHandler func(c *Client, r *Response)

// HeartbeatHandler is invoked for each HEARTBEAT frame received from the
// broker.
type HeartbeatHandler func(c *Client, r *Response)

// MissedHeartbeatHandler is invoked when the watchdog in WaitForMessages
// fires. If unset, the default behavior closes the stream, marks the
// Client disconnected and returns a *HeartbeatTimeout from WaitForMessages.
type MissedHeartbeatHandler func(c *Client)

// Handlers bundles the six optional handler slots so they can be installed
// together in one call, an alternative to the individual On* setters below.
type Handlers struct {
	Connected       ConnectedHandler
	Message         MessageHandler
	Receipt         ReceiptHandler
	Error           ErrorHandler
	Heartbeat       HeartbeatHandler
	MissedHeartbeat MissedHeartbeatHandler
}

// SetHandlers installs every non-nil field of h, leaving any handler
// already registered for a nil field untouched.
func (c *Client) SetHandlers(h Handlers) {
	if h.Connected != nil {
		c.onConnected = h.Connected
	}
	if h.Message != nil {
		c.onMessage = h.Message
	}
	if h.Receipt != nil {
		c.onReceipt = h.Receipt
	}
	if h.Error != nil {
		c.onError = h.Error
	}
	if h.Heartbeat != nil {
		c.onHeartbeat = h.Heartbeat
	}
	if h.MissedHeartbeat != nil {
		c.onMissedHeartbeat = h.MissedHeartbeat
	}
}

func (c *Client) OnConnected(h ConnectedHandler)             { c.onConnected = h }
func (c *Client) OnMessage(h MessageHandler)                 { c.onMessage = h }
func (c *Client) OnReceipt(h ReceiptHandler)                 { c.onReceipt = h }
func (c *Client) OnError(h ErrorHandler)                     { c.onError = h }
func (c *Client) OnHeartbeat(h HeartbeatHandler)             { c.onHeartbeat = h }
func (c *Client) OnMissedHeartbeat(h MissedHeartbeatHandler) { c.onMissedHeartbeat = h }
