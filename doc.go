// File: lixenwraith/logconf/doc.go

// Package logconf loads logger configuration for a logging library from
// property-style key/value text that has already been read into memory.
//
// Reserved keys:
//   - debug: a boolean; "false" turns off the diagnostic trace of the parse
//   - root: the root logger value
//   - logger.<name>: a named logger value, <name> being a package or class
//     full name such as com.example.Foo
//
// Logger values have the form level[,tag[,showThread]]:
//
//	root=info
//	logger.com.example=debug,Example
//	logger.com.example.net=warn,Net,true
//
// The level is matched case-insensitively against VERBOSE, DEBUG, INFO,
// WARN, ERROR, ASSERT and OFF. The first comma ends the level and the last
// comma starts the show-thread flag; when that flag is not a boolean it is
// kept as part of the tag, so "info,My,Weird,Tag" has the tag "My,WeirdTag".
// An empty tag leaves consumers to derive one from the logger name.
//
// Quick Start:
//
//	store, err := logconf.Quick(map[string]string{
//	    "root":                "info",
//	    "logger.com.example": "debug,Example,true",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := store.Resolve("com.example.net.Client") // falls back to com.example
//
// Invalid entries never fail a parse. They are reported to the Tracer and
// skipped, leaving the defaults in place.
package logconf
