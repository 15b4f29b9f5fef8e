package modes

//bitenum:enum u2, exhaustive: conditional
type Platform uint8

const (
	PlatformAny  Platform = 0
	PlatformWasm Platform = 1
)
