// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playback Pipeline - these keys configure the external player process and its notifications.
const (
	PlayerBinary        = "player.binary"
	PlayerVolume        = "player.volume"
	PlayerAboutToFinish = "player.about_to_finish"
	PlayerExtraArgs     = "player.extra_args"
)

// Playlist Navigation - these keys govern how the cursor moves across playlist entries.
const (
	PlaylistLoop           = "playlist.loop"
	PlaylistSkipUnplayable = "playlist.skip_unplayable"
)

// History Tracking - these keys configure the persistence of the last played position.
const (
	HistorySave = "history.save"
)

// Terminal User Interface (TUI) - these keys define the interactive view.
const (
	TUIShowProgress = "tui.show_progress"
	TUIShowHelp     = "tui.show_help"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
