// Package auth implements the authentication engine that turns discovery
// records into a connected ADB session.
//
// The engine is a small forward-only state machine:
//
//	UNPAIRED --pair ok--> PAIRED --connect ok--> CONNECTED
//	UNPAIRED --------------connect ok----------> CONNECTED
//
// Records from the pairing stream are fed through Engine.OnPair and records
// from the connect stream through Engine.OnConnect. Both reducers are
// synchronous and must be driven from a single goroutine. Failed pair or
// connect calls leave the state unchanged; the next poll re-offers the
// records and thereby retries.
//
// The engine never talks to the network itself. It calls a DeviceClient,
// which the adb package implements against the local ADB server and tests
// replace with mocks.DeviceClient.
package auth
