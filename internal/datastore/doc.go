// Package datastore holds the persistent in-app-purchase state for one
// device and account: the purchase update offset, the entitled SKUs and the
// queue of purchase transactions awaiting acknowledgment.
//
// Every mutation is applied in memory first and then written through to the
// injected persister. Load and persist failures are logged, never returned
// from the mutation API; the in-memory state stays authoritative for the
// rest of the process lifetime.
//
// A DataStore is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package datastore
