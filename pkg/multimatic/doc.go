// Package multimatic provides types, interfaces, and helpers for working
// with the Vaillant multiMATIC cloud API.
//
// # Overview
//
// The multimatic package defines the domain types (e.g., Zone, Room,
// HotWater, QuickVeto, HolidayMode) and the Manager interface grouping the
// operations the mobile API exposes. A concrete implementation is provided
// by the mmclient package, which wires configuration, transport, session
// handling, and serial-number resolution. Most consumers should import
// mmclient to construct a Manager and then interact with the interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/homeclimate-io/multimatic/pkg/mmclient"
//	  "github.com/homeclimate-io/multimatic/pkg/multimatic"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  mgr, err := mmclient.New(&multimatic.Config{
//	    Username:     "user@example.com",
//	    Password:     "secret",
//	    SmartphoneID: "homeclimate",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  system, err := mgr.GetSystem(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = system
//	}
//
// # Sessions and serial numbers
//
// The manager logs in lazily with the configured credentials and keeps the
// session cookies for subsequent calls. The gateway serial number, required
// in nearly every endpoint path, is resolved from the facility list unless
// fixed via Config.Serial. When the backend drops the session, the manager
// re-authenticates, re-resolves the serial, and replays the request once.
//
// # Retries
//
// RetryPolicy and WithRetry implement the retry decorator applied to read
// operations: malformed 2xx responses and configured status codes are
// retried with linear backoff, everything else surfaces immediately with
// its original error kind and status intact.
package multimatic
