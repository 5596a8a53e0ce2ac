// Package adb implements auth.DeviceClient against a running ADB server.
//
// The ADB server listens on 127.0.0.1:5037 and speaks the "smart socket"
// host protocol: every request is a 4 hex digit length followed by the
// service name, and the server answers with OKAY or FAIL followed by a
// length-prefixed message.
//
//	host:pair:<code>:<ip>:<port>    pair with a device using its pair code
//	host:connect:<ip>:<port>        open a wireless debugging session
//
// Each request uses a fresh TCP connection, which the server closes after
// replying.
package adb
