package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// StampLayout is the layout used for transcript footer timestamps.
const StampLayout = "2006-01-02 15:04"

// Stamp formats the current time with the transcript footer layout.
func Stamp() string { return Now().Format(StampLayout) }
