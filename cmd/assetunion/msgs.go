package assetunion

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Concatenate asset files into bundles"
	MsgBuildShort      = "Build bundles whose sources changed"
	MsgCheckShort      = "Report which bundles need a rebuild"
	MsgListShort       = "List configured bundles"
	MsgInitShort       = "Write a starter project config"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Status messages
	MsgBuildTitle   = "Build:"
	MsgCheckTitle   = "Check:"
	MsgBytesFormat  = "%d bytes"
	MsgInitCreated  = "Created %s\n"
	MsgVersionLine  = "assetunion version %s\n"
	MsgCommitLine   = "  commit: %s\n"
	MsgBuiltAtLine  = "  built:  %s\n"
	MsgLogFileLine  = "  log:    %s\n"
	MsgAdHocNoNames = "bundle names cannot be combined with --files"

	// Error messages
	MsgErrBundlesFailed = "%d bundle(s) failed"
	MsgErrBundlesStale  = "%d bundle(s) need a rebuild"
	MsgErrBadFormat     = "unknown format %q (want text or yaml)"
	MsgErrNoCommand     = "no command specified"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Project config file (default: ./assetunion.toml or similar)"
	MsgFlagSourceDir  = "Directory source files are read from, overrides source_dir"
	MsgFlagNoLogFile  = "Do not write the log file"
	MsgFlagForce      = "Rebuild even when the output is up to date"
	MsgFlagFiles      = "Build an ad-hoc bundle from these files (comma separated)"
	MsgFlagOutput     = "Output path for the ad-hoc bundle"
	MsgFlagTransform  = "Transform applied to every built bundle, overrides the config"
	MsgFlagListFormat = "Output format: text or yaml"
	MsgFlagInitFormat = "Config format: toml or yaml"
	MsgFlagInitDir    = "Directory the config is written to"
)

// Long messages
const (
	MsgRootLong = `assetunion joins an ordered list of source files (CSS, JavaScript, any text)
into a single output file. A bundle is only rebuilt when its output is missing
or older than one of its sources.

Bundles are configured in assetunion.toml (or .yaml) in the project directory.
Run 'assetunion init' to write a starter file.`

	MsgBuildLong = `Build rebuilds every selected bundle that is stale, applies its transform and
writes the output. With no arguments all configured bundles are built.

Use --files and --output to build a bundle that is not in the config file.`

	MsgBuildExample = `  assetunion build                       # Build all stale bundles
  assetunion build site --force          # Rebuild site unconditionally
  assetunion build --files a.css,b.css --output public/all.css`

	MsgCheckLong = `Check reports whether each selected bundle is up to date without writing
anything. It exits with an error when any bundle is stale, which makes it
usable in CI.`

	MsgListLong = "List prints every configured bundle with its sources and output."

	MsgInitLong = `Init writes a starter assetunion.toml (or assetunion.yaml) to the current
directory. It refuses to replace an existing project config.`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(assetunion completion bash)

Zsh:
  $ assetunion completion zsh > "${fpath[1]}/_assetunion"

Fish:
  $ assetunion completion fish | source

PowerShell:
  PS> assetunion completion powershell | Out-String | Invoke-Expression`

	MsgUsageTemplate = `{{boldUpper "Usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Commands"}}:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
)
