// Package tracing wires schuko tracing to the Go testing log for the
// tests of this module.
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Tracer keys used by the packages of this module.
var keys = []string{
	"rtlfix",
	"rtlfix.placeholder",
	"rtlfix.reverse",
	"rtlfix.shaping",
	"rtlfix.xmltree",
	"rtlfix.batch",
}

// SetTestingLog routes all tracers of this module to t.Logf at debug level.
// The teardown is registered with t.Cleanup.
//
// Tests using it must not run in parallel, as tracers are global.
func SetTestingLog(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, keys...)
	t.Cleanup(teardown)
}
