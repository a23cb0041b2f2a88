// Package hooprelay provides a Go client for the hooprelay proxy HTTP API.
//
// The proxy fronts two sports-data providers and keeps an in-memory call
// ledger; this client wraps its endpoints with typed responses where the
// shape is owned by the proxy (health, usage) and raw JSON where the proxy
// relays the upstream body verbatim (odds, ratings, games, teams).
//
// Basic usage:
//
//	client := hooprelay.New("http://localhost:8080")
//	snap, err := client.Usage(ctx)
//	if err != nil { ... }
//	fmt.Println(snap.TodayRemaining)
package hooprelay
