package app

// Level classifies a Notice for display.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a one-line message for the user.
type Notice struct {
	Text  string
	Level Level
}

func info(text string) Notice    { return Notice{Text: text, Level: LevelInfo} }
func success(text string) Notice { return Notice{Text: text, Level: LevelSuccess} }
func failure(text string) Notice { return Notice{Text: text, Level: LevelError} }

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool { return n.Text == "" }
