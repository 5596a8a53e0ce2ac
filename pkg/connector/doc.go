// Package connector drives an auth.Engine with live discovery data until a
// device is connected.
//
// Reconcile is the loop: it starts discovery, then repeatedly folds the
// current pairing and connect snapshots through the engine and yields for
// LoopConfig.PollInterval between iterations. The loop has no iteration
// cap. Callers bound it with a context deadline; discovery is stopped on
// every exit path.
//
// Connector wraps the loop with the production collaborators (mDNS
// discovery and the ADB server client) and the pairing payload:
//
//	c, err := connector.Default()
//	qr, _ := c.QRCode()
//	fmt.Println(qr)
//	err = c.Run(ctx)
package connector
