package tui

// Key bindings shared by the interactive views.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEsc   = "esc"
	keyEnter = "enter"
	keySlash = "/"
	keyUser  = "u"
	keySpots = "s"
)

// Default interactive dimensions before the first WindowSizeMsg.
const (
	defaultWidth         = 80
	defaultHeight        = 24
	chromeHeight         = 6
	filterInputCharLimit = 64
	filterInputWidth     = 40
)
