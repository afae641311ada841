package sqlgen

// Window kinds supported by the wizard.
const (
	WindowTumbling = "tumbling"
	WindowHopping  = "hopping"
	WindowSliding  = "sliding"
	WindowSession  = "session"
	WindowCount    = "count"
)

var windowFuncs = map[string]string{
	WindowTumbling: "TumblingWindow",
	WindowHopping:  "HoppingWindow",
	WindowSliding:  "SlidingWindow",
	WindowSession:  "SessionWindow",
	WindowCount:    "CountWindow",
}

// WindowFunc maps a wizard window kind to the engine's window function name.
// Unknown or missing kinds fall back to TumblingWindow.
func WindowFunc(kind string) string {
	if name, ok := windowFuncs[kind]; ok {
		return name
	}
	return "TumblingWindow"
}
