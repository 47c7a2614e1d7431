// Command jestsay overlays a witty quip onto a piece of ANSI terminal art.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jestsay/jestsay"
	"github.com/jestsay/jestsay/defaults"
)

var newlines = regexp.MustCompile(`[\r\n]+`)

var rootCmd = &cobra.Command{
	Use:   "jestsay",
	Short: "Overlay witty quips onto ANSI art images",
	Long: `jestsay picks a random quip (or reads one from stdin) and renders it
into the speech bubble of an ANSI art jester, preserving the art's colors.`,
	Example: `  jestsay                                # stock jester, random quip
  jestsay --align left --color "#FF5733"
  fortune | jestsay --x-offset 20 --y-offset 5 --width 40`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("config", "", "path to config file (default: ~/.config/jestsay/config.toml)")
	flags.String("jester", "", "path to ANSI art file")
	flags.StringSlice("quips", nil, "path(s) to quips file(s)")
	flags.Int("x-offset", jestsay.DefaultXOffset, "horizontal position for text start")
	flags.Int("y-offset", jestsay.DefaultYOffset, "vertical position for text start")
	flags.Int("width", jestsay.DefaultWidth, "width of text area")
	flags.Int("height", jestsay.DefaultHeight, "number of text lines")
	flags.String("align", jestsay.DefaultAlign, "text alignment: left|center|right")
	flags.String("color", jestsay.DefaultColor, "text color as hex code")
	flags.Bool("no-bold", false, "disable bold text")
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cfg, warn := jestsay.LoadConfig(configPath)
	if warn != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", warn)
	}

	// A flag the user actually set wins over the config file.
	if flags.Changed("jester") {
		cfg.Jester, _ = flags.GetString("jester")
	}
	if flags.Changed("quips") {
		paths, _ := flags.GetStringSlice("quips")
		cfg.Quips = paths
	}
	if flags.Changed("x-offset") {
		cfg.XOffset, _ = flags.GetInt("x-offset")
	}
	if flags.Changed("y-offset") {
		cfg.YOffset, _ = flags.GetInt("y-offset")
	}
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("align") {
		cfg.Align, _ = flags.GetString("align")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("no-bold") {
		cfg.NoBold, _ = flags.GetBool("no-bold")
	}

	align, err := jestsay.ParseAlign(cfg.Align)
	if err != nil {
		return err
	}
	color, err := jestsay.ParseHexColor(cfg.Color)
	if err != nil {
		return err
	}

	art, err := loadArt(cfg.Jester)
	if err != nil {
		return err
	}

	quip, err := chooseQuip(cfg.Quips)
	if err != nil {
		return err
	}

	out := jestsay.Say(art, quip, jestsay.Options{
		Region: jestsay.Region{
			X:      cfg.XOffset,
			Y:      cfg.YOffset,
			Width:  cfg.Width,
			Height: cfg.Height,
		},
		Align: align,
		Color: color,
		Bold:  !cfg.NoBold,
	})

	if termenv.EnvColorProfile() == termenv.Ascii {
		out = jestsay.Strip(out)
	}

	_, err = os.Stdout.Write(out)
	return err
}

// loadArt reads the art file, falling back from the explicit path to the
// user's data dir and finally to the embedded stock jester.
func loadArt(path string) ([]byte, error) {
	if path != "" {
		art, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ANSI art file not found: %s", path)
		}
		return art, nil
	}
	if installed := jestsay.DataPath("jester.ans"); installed != "" {
		if art, err := os.ReadFile(installed); err == nil {
			return art, nil
		}
	}
	return defaults.Jester(), nil
}

// chooseQuip returns the caption to render: piped stdin wins, otherwise one
// random line from the quips files (or the embedded stock quips).
func chooseQuip(paths []string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		piped := strings.TrimSpace(newlines.ReplaceAllString(string(data), " "))
		if piped != "" {
			return piped, nil
		}
	}

	var quips []string
	switch {
	case len(paths) > 0:
		loaded, err := jestsay.LoadQuips(paths...)
		if err != nil {
			return "", err
		}
		quips = loaded
	default:
		if installed := jestsay.DataPath("quips.txt"); installed != "" {
			if loaded, err := jestsay.LoadQuips(installed); err == nil {
				quips = loaded
			}
		}
		if len(quips) == 0 {
			quips = jestsay.ReadQuips(strings.NewReader(string(defaults.Quips())))
		}
	}

	if len(quips) == 0 {
		return "", fmt.Errorf("no quips found")
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return jestsay.Pick(quips, rnd), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
