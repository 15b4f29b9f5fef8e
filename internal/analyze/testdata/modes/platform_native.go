//go:build linux || darwin

package modes

// PlatformNative is only available on hosts with a native backend.
const PlatformNative Platform = 2
