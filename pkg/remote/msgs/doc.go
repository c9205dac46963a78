// Package msgs provides the remote invocation protocol and all message schemas.
package msgs

// The protocol is communicated between a client (rcsh, any program using
// remote.Client) and an rc server (rcd) owning the cape.
//
// Every packet is a Typed envelope. Commands carry a sequence number which
// the reply repeats. Invoke is answered with InvokeResult, or CommandErr when
// the method doesn't exist or arguments can't be converted. Native status
// codes are results, not errors.
