//go:build !pprof

package profile

// start is a stub when profiling support is compiled out.
func start(string, string, bool) interface{ Stop() } {
	return ignore{}
}
