package game

import "time"

type CardStatus int

const (
	Hidden CardStatus = iota
	Revealed
	Matched
)

func (status CardStatus) String() string {
	switch status {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// BackSprite is drawn in place of a Hidden card's own sprite
const BackSprite = "back"

const (
	MessageGreeting   = "Memory Game"
	MessageMatchFound = "Match found!!"
	MessageTryAgain   = "Try again"
	MessageWin        = "You win!!"
)

const (
	DefaultRevertDelay      = 600 * time.Millisecond
	DefaultRedrawInterval   = 16 * time.Millisecond
	DefaultDirectorInterval = 500 * time.Millisecond
	DefaultColumns          = 4
)

var DefaultPairIDs = []string{
	"8-ball",
	"potato",
	"dinosaur",
	"kronos",
	"rocket",
	"unicorn",
	"guy",
	"zeppelin",
}
