package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long   string   // --output
	Short  string   // -o (empty if none)
	IsBool bool     // no argument expected
	Desc   string   // help text
	Values []string // for enum flags
	IsDir  bool     // directory completion
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values []string // enum values
	IsDir  bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"mode":   {Values: []string{"raster", "pdfjs"}},
	"format": {Values: []string{"png", "jpeg"}},

	// Directory flags
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// buildFlagSet creates a FlagSet with all build command flags.
// This reuses the same flag registration as parseBuildFlags.
func buildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (wiped per build)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "preview capture timeout (e.g., 30s, 2m)")

	// Flag groups - same as parseBuildFlags
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addSiteFlags(fs, &f.site)
	addViewerFlags(fs, &f.viewer)
	addAssetFlags(fs, &f.assets)

	return fs
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:   f.Name,
			Short:  f.Shorthand,
			IsBool: f.Value.Type() == "bool",
			Desc:   f.Usage,
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			fd.Values = meta.Values
			fd.IsDir = meta.IsDir
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet - single source of truth.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:  "build",
			Desc:  "Build a static site from a directory of PDFs",
			Flags: extractFlagsFromFlagSet(buildFlagSet()),
		},
		{Name: "doctor", Desc: "Check external tool availability"},
		{Name: "version", Desc: "Show version information"},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// generateBash writes a bash completion script built from the registry.
func generateBash(w io.Writer) error {
	cmds := getCommands()

	var names []string
	for _, c := range cmds {
		names = append(names, c.Name)
	}

	fmt.Fprintln(w, "# bash completion for pdf2site")
	fmt.Fprintln(w, "_pdf2site() {")
	fmt.Fprintln(w, "  local cur prev words cword")
	fmt.Fprintln(w, "  COMPREPLY=()")
	fmt.Fprintln(w, `  cur="${COMP_WORDS[COMP_CWORD]}"`)
	fmt.Fprintln(w, `  prev="${COMP_WORDS[COMP_CWORD-1]}"`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  if [ \"$COMP_CWORD\" -eq 1 ]; then")
	fmt.Fprintf(w, "    COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(names, " "))
	fmt.Fprintln(w, "    return")
	fmt.Fprintln(w, "  fi")
	fmt.Fprintln(w)

	// Per-flag value completion
	for _, c := range cmds {
		for _, f := range c.Flags {
			if len(f.Values) > 0 {
				fmt.Fprintf(w, "  if [ \"$prev\" = \"--%s\" ]; then\n", f.Long)
				fmt.Fprintf(w, "    COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(f.Values, " "))
				fmt.Fprintln(w, "    return")
				fmt.Fprintln(w, "  fi")
			} else if f.IsDir {
				fmt.Fprintf(w, "  if [ \"$prev\" = \"--%s\" ]; then\n", f.Long)
				fmt.Fprintln(w, "    COMPREPLY=( $(compgen -d -- \"$cur\") )")
				fmt.Fprintln(w, "    return")
				fmt.Fprintln(w, "  fi")
			}
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  case \"${COMP_WORDS[1]}\" in")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		var opts []string
		for _, f := range c.Flags {
			opts = append(opts, "--"+f.Long)
			if f.Short != "" {
				opts = append(opts, "-"+f.Short)
			}
		}
		fmt.Fprintf(w, "    %s)\n", c.Name)
		fmt.Fprintf(w, "      COMPREPLY=( $(compgen -W %q -d -- \"$cur\") )\n", strings.Join(opts, " "))
		fmt.Fprintln(w, "      ;;")
	}
	fmt.Fprintln(w, "    completion)")
	fmt.Fprintln(w, "      COMPREPLY=( $(compgen -W \"bash zsh fish\" -- \"$cur\") )")
	fmt.Fprintln(w, "      ;;")
	fmt.Fprintln(w, "  esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "complete -F _pdf2site pdf2site")
	return nil
}

// generateZsh writes a zsh completion script built from the registry.
func generateZsh(w io.Writer) error {
	cmds := getCommands()

	fmt.Fprintln(w, "#compdef pdf2site")
	fmt.Fprintln(w, "_pdf2site() {")
	fmt.Fprintln(w, "  local -a commands")
	fmt.Fprintln(w, "  commands=(")
	for _, c := range cmds {
		fmt.Fprintf(w, "    '%s:%s'\n", c.Name, strings.ReplaceAll(c.Desc, "'", ""))
	}
	fmt.Fprintln(w, "  )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  if (( CURRENT == 2 )); then")
	fmt.Fprintln(w, "    _describe 'command' commands")
	fmt.Fprintln(w, "    return")
	fmt.Fprintln(w, "  fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  case $words[2] in")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(w, "    %s)\n", c.Name)
		fmt.Fprintln(w, "      _arguments \\")
		for _, f := range c.Flags {
			desc := strings.ReplaceAll(f.Desc, "'", "")
			desc = strings.ReplaceAll(desc, "[", "(")
			desc = strings.ReplaceAll(desc, "]", ")")
			action := ""
			if len(f.Values) > 0 {
				action = ":value:(" + strings.Join(f.Values, " ") + ")"
			} else if f.IsDir {
				action = ":directory:_files -/"
			} else if !f.IsBool {
				action = ":value:"
			}
			fmt.Fprintf(w, "        '--%s[%s]%s' \\\n", f.Long, desc, action)
		}
		fmt.Fprintln(w, "        '*:directory:_files -/'")
		fmt.Fprintln(w, "      ;;")
	}
	fmt.Fprintln(w, "    completion)")
	fmt.Fprintln(w, "      _values 'shell' bash zsh fish")
	fmt.Fprintln(w, "      ;;")
	fmt.Fprintln(w, "  esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "_pdf2site \"$@\"")
	return nil
}

// generateFish writes a fish completion script built from the registry.
func generateFish(w io.Writer) error {
	cmds := getCommands()

	fmt.Fprintln(w, "# fish completion for pdf2site")
	for _, c := range cmds {
		fmt.Fprintf(w, "complete -c pdf2site -n '__fish_use_subcommand' -a %s -d %q\n", c.Name, c.Desc)
	}
	for _, c := range cmds {
		for _, f := range c.Flags {
			var b strings.Builder
			fmt.Fprintf(&b, "complete -c pdf2site -n '__fish_seen_subcommand_from %s' -l %s", c.Name, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			if len(f.Values) > 0 {
				fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
			} else if f.IsDir {
				b.WriteString(" -r -a '(__fish_complete_directories)'")
			} else if !f.IsBool {
				b.WriteString(" -r")
			}
			fmt.Fprintf(&b, " -d %q", f.Desc)
			fmt.Fprintln(w, b.String())
		}
	}
	fmt.Fprintln(w, "complete -c pdf2site -n '__fish_seen_subcommand_from completion' -x -a 'bash zsh fish'")
	return nil
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2site completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash    Bash completion script")
	fmt.Fprintln(w, "  zsh     Zsh completion script")
	fmt.Fprintln(w, "  fish    Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(pdf2site completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(pdf2site completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    pdf2site completion fish > ~/.config/fish/completions/pdf2site.fish")
}
