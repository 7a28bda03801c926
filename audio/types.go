package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundJoin   SoundType = iota // Player committed to the next round
	SoundCrash                   // Cycle destroyed
	SoundShield                  // Shield picked up
	SoundCross                   // Shield absorbed a trail hit
	SoundRed                     // Countdown red light
	SoundYellow                  // Countdown yellow light
	SoundGreen                   // Countdown green light, round running
	SoundStart                   // Program start
	SoundClear                   // Wins cleared
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundJoin:
		return "join"
	case SoundCrash:
		return "crash"
	case SoundShield:
		return "shield"
	case SoundCross:
		return "cross"
	case SoundRed:
		return "red"
	case SoundYellow:
		return "yellow"
	case SoundGreen:
		return "green"
	case SoundStart:
		return "start"
	case SoundClear:
		return "clear"
	default:
		return "unknown"
	}
}
