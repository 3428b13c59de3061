// Package log provides the logging abstraction used by the simdb resolver.
//
// This package defines a Logger interface that can be implemented by any
// logging library. A zerolog adapter and a no-op logger are provided; the
// no-op logger is the default so that library users who do not care about
// resolver diagnostics get no output.
//
// Use the provided zerolog adapter:
//
//	logger := log.NewZerologAdapter()
//
// Or wrap an existing zerolog.Logger:
//
//	logger := log.NewZerologAdapterWithLogger(zl)
package log
