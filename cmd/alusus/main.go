package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"alusus/internal/l18n"
	"alusus/internal/osal"
	"alusus/internal/version"
	"alusus/l18ndata"
)

var rootCmd = &cobra.Command{
	Use:   "alusus [<Core options>] <source> [<program options>]",
	Short: "Alusus language compiler",
	Long:  `The Alusus compiler parses a source file against an extensible grammar, resolves its imports and drives the configured build passes`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runRoot,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	os.Exit(run())
}

// run keeps the UTF-8 console scope on the defer chain so it is released
// on every exit path; main converts the result into the process exit
// code afterwards. The normalized argv is a plain copy with nothing to
// release.
func run() int {
	restoreConsole := osal.EnterUTF8Console()
	defer restoreConsole()

	lang := osal.SystemLanguage()
	initDictionary(lang)

	rootCmd.Version = version.PlainVersion
	rootCmd.SetHelpFunc(helpFunc(lang))
	rootCmd.SetArgs(foldArabicFlags(osal.NormalizeArgs(os.Args[1:])))

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errBuildFailed) {
			fmt.Fprintln(osal.Stderr(), err.Error())
		}
		return 1
	}
	return 0
}

// initDictionary prefers the installed Notices_L18n directory and falls
// back to the dictionaries embedded in the binary.
func initDictionary(lang string) {
	dict := l18n.Default()
	if moduleDir, err := osal.ModuleDirectory(); err == nil {
		dir := moduleDir.Parent().Join("Notices_L18n")
		if dir.Join(lang + ".txt").IsRegular() {
			dict.Initialize(lang, dir.String())
			return
		}
	}
	dict.InitializeFS(lang, l18ndata.LocalesFS())
}

// arabicFlagAliases folds the Arabic spellings onto their English
// synonyms before cobra parses, so both are accepted everywhere.
var arabicFlagAliases = map[string]string{
	"--مساعدة": "--help",
	"--تفاعلي": "--interactive",
	"-ت":       "-i",
	"--إلقاء":  "--dump",
	"--تدوين":  "--log",
}

func foldArabicFlags(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if folded, ok := arabicFlagAliases[a]; ok {
			a = folded
		}
		out[i] = a
	}
	return out
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
