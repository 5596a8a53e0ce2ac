// Package pairing implements the out-of-band credentials used to pair a
// host with an Android device over Wi-Fi.
//
// # Pair Code
//
// A pair code is a 6-digit number in [100000, 999999]. Generated codes are
// drawn uniformly from [100000, 999000).
//
// # QR Payload
//
// The QR code shown to the device encodes:
//
//	WIFI:T:ADB;S:<name>;P:<code>;;
//
// <name> is the instance name the device will announce on the pairing
// stream. It is written as-is without escaping. <code> is always six
// decimal digits. The device's scanner depends on this exact layout.
package pairing
