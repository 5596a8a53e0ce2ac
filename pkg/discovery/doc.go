// Package discovery implements mDNS/DNS-SD discovery for Android wireless
// debugging.
//
// Android announces two separate service types:
//
// # Pairing (_adb-tls-pairing._tcp)
//
// Announced while the "Pair device with QR code" or "Pair device with
// pairing code" screen is open. When pairing through a QR code, the
// instance name is the name encoded in the QR payload, so a host can tell
// its own pairing request apart from others on the network.
//
// # Connect (_adb-tls-connect._tcp)
//
// Announced while wireless debugging is enabled. Devices that already
// trust the host accept a session on this port directly.
//
// Both streams are exposed as pull-based snapshots (Discovery.PairingServices
// and Discovery.ConnectServices) rather than callbacks, so the consumer
// decides when to look at the records.
package discovery
