// Package env provides the environment of remote servers and clients.
package env

import (
	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// AppID salts the machine ID so it isn't exposed on the wire.
const AppID = "roboticscape"

// MachineID retrieves the unique ID identifying the machine, or "local"
// if it can't be determined.
func MachineID() string {
	id, err := machineid.ProtectedID(AppID)
	if err != nil {
		glog.Warningf("machine ID unavailable: %v", err)
		return "local"
	}
	return id[:16]
}
