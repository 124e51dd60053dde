package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/appdirs"
	clierrors "github.com/thoreinstein/appdirs/internal/errors"
)

var (
	showAuthor     string
	showAppVersion string
	showRoaming    bool
	showNoSandbox  bool
	showCreate     bool
	showKinds      []string
	showFormat     string
	showOS         string
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVar(&showAuthor, "author", "",
		"application author, required for Windows paths")
	showCmd.Flags().StringVar(&showAppVersion, "app-version", "",
		"application version appended after the name")
	showCmd.Flags().BoolVar(&showRoaming, "roaming", false,
		"use the roaming application data folder on Windows")
	showCmd.Flags().BoolVar(&showNoSandbox, "no-sandbox", false,
		"ignore an active isolated runtime environment")
	showCmd.Flags().BoolVar(&showCreate, "create", false,
		"create the resolved directories")
	showCmd.Flags().StringSliceVar(&showKinds, "kind", nil,
		"directory kind(s) to show (default: all), e.g. user_data, site_config")
	showCmd.Flags().StringVar(&showFormat, "format", "",
		"output format: text, json, yaml, toml")
	showCmd.Flags().StringVar(&showOS, "os", runtime.GOOS,
		"resolve for the given operating system instead of the current one")
}

// dirSet is one kind's resolved directories in the show report.
type dirSet struct {
	Kind string   `json:"kind" yaml:"kind" toml:"kind"`
	Dirs []string `json:"dirs" yaml:"dirs" toml:"dirs"`
}

// report is the full output of the show command.
type report struct {
	App     string   `json:"app" yaml:"app" toml:"app"`
	Version string   `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	OS      string   `json:"os" yaml:"os" toml:"os"`
	Dirs    []dirSet `json:"dirs" yaml:"dirs" toml:"dirs"`
}

var showCmd = &cobra.Command{
	Use:   "show <app-name>",
	Short: "Show the resolved directories for an application",
	Long: `Show resolves every directory kind for the given application name and
prints the result. Site kinds may resolve to multiple directories; they are
printed highest priority first.

Directories are not created unless --create is passed.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	author := showAuthor
	if author == "" {
		author = cfg.Author
	}
	roaming := showRoaming || cfg.Roaming
	format := showFormat
	if format == "" {
		format = cfg.Format
	}

	kinds, err := selectedKinds()
	if err != nil {
		return err
	}

	resolver := &appdirs.Resolver{GOOS: showOS}
	opts := []appdirs.Option{
		appdirs.WithAuthor(author),
		appdirs.WithVersion(showAppVersion),
		appdirs.WithRoaming(roaming),
		appdirs.WithSandbox(!showNoSandbox),
		appdirs.WithCreate(showCreate),
	}

	rep := report{App: name, Version: showAppVersion, OS: showOS}
	for _, kind := range kinds {
		dirs, err := resolver.Resolve(kind, name, opts...)
		if err != nil {
			if errors.Is(err, appdirs.ErrMissingAuthor) {
				return clierrors.NewUserError(err, "pass --author or set author in the config file")
			}
			return clierrors.NewSystemError(err)
		}
		slog.Debug("resolved", "kind", kind.String(), "dirs", dirs)
		rep.Dirs = append(rep.Dirs, dirSet{Kind: kind.String(), Dirs: dirs})
	}

	return render(cmd, rep, format)
}

// selectedKinds returns the kinds requested via --kind, or all of them.
func selectedKinds() ([]appdirs.Kind, error) {
	if len(showKinds) == 0 {
		return appdirs.Kinds(), nil
	}
	kinds := make([]appdirs.Kind, 0, len(showKinds))
	for _, name := range showKinds {
		kind, err := appdirs.ParseKind(name)
		if err != nil {
			return nil, clierrors.NewUserError(
				fmt.Errorf("%w: %q", clierrors.ErrUnknownKind, name),
				"valid kinds: "+strings.Join(kindNames(), ", "))
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func kindNames() []string {
	all := appdirs.Kinds()
	names := make([]string, len(all))
	for i, kind := range all {
		names[i] = kind.String()
	}
	return names
}

func render(cmd *cobra.Command, rep report, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "text", "":
		label := color.New(color.FgCyan)
		for _, set := range rep.Dirs {
			fmt.Fprintf(out, "%s:\n", label.Sprint(set.Kind))
			for _, dir := range set.Dirs {
				fmt.Fprintf(out, "  %s\n", dir)
			}
		}
		return nil
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return clierrors.NewSystemError(err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(rep)
		if err != nil {
			return clierrors.NewSystemError(err)
		}
		fmt.Fprint(out, string(data))
		return nil
	case "toml":
		data, err := toml.Marshal(rep)
		if err != nil {
			return clierrors.NewSystemError(err)
		}
		fmt.Fprint(out, string(data))
		return nil
	default:
		return clierrors.NewUserError(
			fmt.Errorf("%w: %q", clierrors.ErrUnknownFormat, format),
			"use one of: text, json, yaml, toml")
	}
}
