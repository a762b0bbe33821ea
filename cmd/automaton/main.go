// Command automaton is a small demo driver for the gofa library: it
// parses a regular expression or loads an automaton text description,
// prints its canonical signature and minimized state count, and
// optionally runs state elimination back to a regex, logging every
// elimination step.
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/tidalf/gofa/automaton"
	"github.com/tidalf/gofa/load"
	"github.com/tidalf/gofa/regex"
)

func main() {
	var (
		regexInput  string
		fileInput   string
		alphabetStr string
		minimizeAlg string
		toRegex     bool
		verbose     bool
	)

	pflag.StringVarP(&regexInput, "regex", "r", "", "regular expression to parse, e.g. (a+b)*a")
	pflag.StringVarP(&fileInput, "file", "f", "", "path to an automaton text description")
	pflag.StringVarP(&alphabetStr, "alphabet", "a", "ab", "alphabet symbols, e.g. ab")
	pflag.StringVarP(&minimizeAlg, "minimize", "m", "hopcroft", "minimization algorithm: hopcroft or brzozowski")
	pflag.BoolVar(&toRegex, "to-regex", false, "run state elimination back to a regex")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	pflag.Parse()

	if verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelDebug)
	}

	if regexInput == "" && fileInput == "" {
		gologger.Fatal().Msgf("one of --regex or --file is required")
	}

	alphabet := automaton.NewAlphabet([]byte(alphabetStr)...)
	builder := regex.NewBuilder(alphabet)

	var aut *automaton.Automaton
	switch {
	case regexInput != "":
		re, err := regex.Parse(alphabet, regexInput)
		if err != nil {
			gologger.Fatal().Msgf("parsing regex %q: %v", regexInput, err)
		}
		aut = re.EquivalentAutomaton()
		gologger.Info().Msgf("parsed regex %q as %q", regexInput, re.String())
	case fileInput != "":
		f, err := os.Open(fileInput)
		if err != nil {
			gologger.Fatal().Msgf("opening %s: %v", fileInput, err)
		}
		defer f.Close()
		aut, err = load.Parse(alphabet, f)
		if err != nil {
			gologger.Fatal().Msgf("loading %s: %v", fileInput, err)
		}
		gologger.Info().Msgf("loaded automaton from %s", fileInput)
	}

	var minimized *automaton.Automaton
	switch minimizeAlg {
	case "hopcroft":
		minimized = aut.MinimizeHopcroft()
	case "brzozowski":
		minimized = aut.MinimizeBrzozowski()
	default:
		gologger.Fatal().Msgf("unknown minimization algorithm %q", minimizeAlg)
	}

	sig, err := minimized.SignatureDFS()
	if err != nil {
		gologger.Fatal().Msgf("computing signature: %v", err)
	}

	rows := pterm.TableData{
		{"alphabet", alphabet.String()},
		{"states (minimized)", fmt.Sprintf("%d", len(minimized.States()))},
		{"signature", sig},
	}

	if toRegex {
		result, err := regex.ToRegexWithConfig(minimized, builder, func(g *regex.GeneralizedAutomaton, step string) error {
			gologger.Debug().Msgf("elimination step: %s", step)
			return nil
		})
		if err != nil {
			gologger.Fatal().Msgf("state elimination: %v", err)
		}
		rows = append(rows, []string{"regex", result.String()})
	}

	if err := pterm.DefaultTable.WithHasHeader(false).WithData(rows).Render(); err != nil {
		gologger.Fatal().Msgf("rendering table: %v", err)
	}
}
