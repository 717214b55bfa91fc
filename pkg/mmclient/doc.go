// Package mmclient provides the primary entry point for constructing a
// Vaillant multiMATIC API client that implements the multimatic.Manager
// interface.
//
// It layers configuration, HTTP transport, session authentication and serial
// number resolution on top of the types and interfaces defined in the
// multimatic package. Most applications should import mmclient to build a
// client, then use the returned multimatic.Manager to read and control the
// installation.
//
// Quick start
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
//
//	  // Minimal: account credentials. The session is established lazily on
//	  // the first request and the gateway serial is discovered from the
//	  // facility list.
//	  manager, err := mmclient.NewWithCredentials("user@example.com", "secret")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full configuration:
//	  manager, err = mmclient.New(&multimatic.Config{
//	    Username:     "user@example.com",
//	    Password:     "secret",
//	    SmartphoneID: "my-integration",
//	    // Serial: "1234567890", // skip facility discovery
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  system, err := manager.GetSystem(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = system
//	}
//
// # Sessions and serial numbers
//
// The backend authenticates with a session cookie, not a bearer token. The
// manager logs in lazily, replays a request once after a session expiry, and
// re-resolves the gateway serial after a session loss unless Config.Serial
// pins it.
//
// # Helpers
//
// The package also provides convenience constructors NewWithCredentials and
// NewWithSerial that wrap New with the appropriate configuration.
package mmclient
