package locale

// Message IDs shared by the CLI, the TUI and the ICS export.
const (
	MsgAppTitle          = "app_title"
	MsgLabelToday        = "label_today"
	MsgLabelShamsi       = "label_shamsi"
	MsgLabelGregorian    = "label_gregorian"
	MsgLabelLunar        = "label_lunar"
	MsgLabelTheme        = "label_theme"
	MsgHelpMonth         = "help_month"
	MsgHelpYear          = "help_year"
	MsgHelpJump          = "help_jump"
	MsgHelpToday         = "help_today"
	MsgHelpTheme         = "help_theme"
	MsgHelpHelp          = "help_help"
	MsgHelpQuit          = "help_quit"
	MsgHelpTitle         = "help_title"
	MsgHelpLanguage      = "help_language"
	MsgLabelLanguage     = "label_language"
	MsgJumpPrompt        = "jump_prompt"
	MsgJumpInvalid       = "jump_invalid"
	MsgAgeSummary        = "age_summary"
	MsgAgeBornOn         = "age_born_on"
	MsgAgeDaysLived      = "age_days_lived"
	MsgAgeGregorianBirth = "age_gregorian_birth"
	MsgDateLine          = "date_line"
	MsgEventSummary      = "event_summary"
)

// Prefixes of the generated name IDs: months are suffixed 1..12, weekdays 0..6
// counted from Saturday.
const (
	prefixShamsiMonth      = "shamsi_month_"
	prefixGregorianMonth   = "gregorian_month_"
	prefixLunarMonth       = "lunar_month_"
	prefixShamsiWeekday    = "shamsi_weekday_"
	prefixGregorianWeekday = "gregorian_weekday_"
	prefixWeekdayHeader    = "weekday_header_"
)

// textKeys lists every fixed message ID.
var textKeys = []string{
	MsgAppTitle, MsgLabelToday, MsgLabelShamsi, MsgLabelGregorian, MsgLabelLunar,
	MsgLabelTheme, MsgHelpMonth, MsgHelpYear, MsgHelpJump, MsgHelpToday,
	MsgHelpTheme, MsgHelpHelp, MsgHelpQuit, MsgHelpTitle, MsgHelpLanguage,
	MsgLabelLanguage, MsgJumpPrompt, MsgJumpInvalid,
	MsgAgeSummary, MsgAgeBornOn, MsgAgeDaysLived, MsgAgeGregorianBirth,
	MsgDateLine, MsgEventSummary,
}
