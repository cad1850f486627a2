package icon

// Icon identifies a UI symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Play
	Pause
	Mute
	Next
	Prev
	Stop
	Entry
)

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "👎", nerd: "", plain: "✗", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", squares: "🟦"},
	Play:     {emoji: "▶️", nerd: "", plain: ">", squares: "🟩"},
	Pause:    {emoji: "⏸️", nerd: "", plain: "||", squares: "🟨"},
	Mute:     {emoji: "🔇", nerd: "", plain: "(muted)", squares: "⬛"},
	Next:     {emoji: "⏭️", nerd: "", plain: ">>", squares: "▶"},
	Prev:     {emoji: "⏮️", nerd: "", plain: "<<", squares: "◀"},
	Stop:     {emoji: "⏹️", nerd: "", plain: "[]", squares: "⬜"},
	Entry:    {emoji: "🎵", nerd: "", plain: "~", squares: "▪"},
}
