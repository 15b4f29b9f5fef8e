package modes

// Mode selects the operating mode of a channel.
//
//bitenum:enum u3
type Mode uint8

const (
	ModeOff  Mode = 0
	ModeOn   Mode = 0b1
	ModeAuto Mode = 0x7
)
