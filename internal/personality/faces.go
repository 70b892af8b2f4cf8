// Package personality maps session context onto the mood/role label shown
// in the statusline. The whole package is pure: no I/O, no globals, every
// input the rules look at comes in through Input.
package personality

// Face is a kaomoji plus its role name. The statusline shows both.
type Face struct {
	Icon string
	Name string
}

// String returns the display form, "<kaomoji> <name>".
func (f Face) String() string {
	return f.Icon + " " + f.Name
}

// Mood faces, driven by error counts and action streaks.
var (
	TableFlipper  = Face{"(╯°□°)╯︵ ┻━┻", "Table Flipper"}
	ErrorWarrior  = Face{"(ノಠ益ಠ)ノ", "Error Warrior"}
	Hyperfocused  = Face{"┌༼◉ل͟◉༽┐", "Hyperfocused Coder"}
	CodeBerserker = Face{"【╯°□°】╯︵ ┻━┻", "Code Berserker"}
)

// Time-of-day faces. The four buckets cover the whole clock; TGIF replaces
// the evening bucket on Fridays.
var (
	NightOwl    = Face{"(ʘ,ʘ)", "Night Owl"}
	Caffeinated = Face{"( -_-)旦~", "Caffeinated"}
	CodeWizard  = Face{"ʕ•ᴥ•ʔ", "Code Wizard"}
	NightShift  = Face{"(¬‿¬)", "Night Shift"}
	TGIF        = Face{"ヽ(⌐■_■)ノ♪♬", "TGIFFFFF"}
)

// Per-tool defaults, used when no mood, streak, or file rule fired.
var (
	CodeWizardAlt    = Face{"(⌐■_■)", "Code Wizard"}
	GentleRefactorer = Face{"(• ε •)", "Gentle Refactorer"}
	CodeJanitor      = Face{"(ง'̀-'́)ง", "Code Janitor"}
	CasualReviewer   = Face{"¯\\_(ツ)_/¯", "Casual Code Reviewer"}
	ResearchKing     = Face{"╭༼ ººل͟ºº ༽╮", "Research King"}
	SearchMaestro    = Face{"⋋| ◉ ͟ʖ ◉ |⋌", "Search Maestro"}
	BugHunter        = Face{"(つ◉益◉)つ", "Bug Hunter"}
	CommandExplorer  = Face{"ᕕ( ᐛ )ᕗ", "Command Explorer"}
)

// Shell command families.
var (
	GitManager           = Face{"┗(▀̿Ĺ̯▀̿ ̿)┓", "Git Manager"}
	TestTaskmaster       = Face{"( ദ്ദി ˙ᗜ˙ )", "Test Taskmaster"}
	DeploymentGuard      = Face{"( ͡ _ ͡°)ﾉ⚲", "Deployment Guard"}
	DatabaseExpert       = Face{"⚆_⚆", "Database Expert"}
	CompilationWarrior   = Face{"ᕦ(ò_óˇ)ᕤ", "Compilation Warrior"}
	DependencyWrangler   = Face{"^⎚-⎚^", "Dependency Wrangler"}
	FileExplorer         = Face{"ᓚ₍ ^. .^₎", "File Explorer"}
	TaskAssassin         = Face{"(╬ ಠ益ಠ)", "Task Assassin"}
	NetworkSentinel      = Face{"(╭ರ_ಠ)", "Network Sentinel"}
	SystemDetective      = Face{"(◉_◉)", "System Detective"}
	SystemAdmin          = Face{"( ͡ಠ ʖ̯ ͡ಠ)", "System Admin"}
	PermissionPolice     = Face{"(╯‵□′)╯", "Permission Police"}
	StringSurgeon        = Face{"(˘▾˘~)", "String Surgeon"}
	EditorUser           = Face{"( . .)φ", "Editor User"}
	CompressionChef      = Face{"(っ˘ڡ˘ς)", "Compression Chef"}
	EnvironmentEnchanter = Face{"(∗´ര ᎑ ര`∗)", "Environment Enchanter"}
	CodeHistorian        = Face{"(╯︵╰,)", "Code Historian"}
	ContainerCaptain     = Face{"(づ｡◕‿‿◕｡)づ", "Container Captain"}
)

// File-type specialists.
var (
	SecurityAnalyst     = Face{"ಠ_ಠ", "Security Analyst"}
	PerformanceTuner    = Face{"★⌒ヽ( ͡° ε ͡°)", "Performance Tuner"}
	DocumentationWriter = Face{"φ(．．)", "Documentation Writer"}
	UIDeveloper         = Face{"(✿◠ᴗ◠)", "UI Developer"}
	StyleArtist         = Face{"♥‿♥", "Style Artist"}
	MarkupWizard        = Face{"<(￣︶￣)>", "Markup Wizard"}
	JSMaster            = Face{"(▀̿Ĺ̯▀̿ ̿)", "JS Master"}
	ConfigHelper        = Face{"(๑>؂•̀๑)", "Config Helper"}
	QualityAuditor      = Face{"৻( •̀ ᗜ •́ ৻)", "Quality Auditor"}
)
