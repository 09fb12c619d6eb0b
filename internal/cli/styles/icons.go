package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconConfig  = "" // config
	IconFolder  = "" // folder

	IconCursor = "" // chevron-right
	IconRemote = "" // television
	IconBack   = "" // rotate-left
	IconFocus  = "" // crosshairs
)
