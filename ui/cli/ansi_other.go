//go:build !windows

package cli

// EnableANSI is a no-op outside Windows.
func EnableANSI() {}
