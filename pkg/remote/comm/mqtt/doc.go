// Package mqtt transports the remote protocol over an MQTT broker.
//
// All topics are relative to the prefix in the broker URL path, e.g.
// mqtt://host:1883/rc/. A server with ref name/id uses:
//
//	name/id/meta  JSON ServerMeta, retained. The broker clears it with an
//	              empty retained message (the will) when the server is gone.
//	name/id/cmd   commands sent by clients.
//	name/id/msg   replies sent by the server.
//
// Connectors discover servers by subscribing to +/+/meta.
package mqtt
