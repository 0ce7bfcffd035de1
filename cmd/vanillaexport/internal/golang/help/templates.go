package help

const (
	commandTemplate = `usage: {{.UsageLine}}

{{.Long | trim}}
`
	usageTemplate = `{{.Long | trim}}

Usage:

	{{.UsageLine}} <command> [flags]

The commands are:
{{range .Commands}}{{if .Runnable}}
	{{.Name | printf "%-11s"}} {{.Short | capitalize}}{{end}}{{end}}

Use "{{.UsageLine}} help <command>" for more information about a command.
`
)
