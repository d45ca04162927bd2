package main

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"alusus/internal/core"
	"alusus/internal/diagfmt"
	"alusus/internal/engine"
	"alusus/internal/logger"
	"alusus/internal/notices"
	"alusus/internal/osal"
)

// errBuildFailed signals a failure whose message was already printed.
var errBuildFailed = errors.New("build failed")

func init() {
	// Flags stop at the first non-flag argument: everything after the
	// source path belongs to the compiled program.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().BoolP("interactive", "i", false, "run in interactive mode")
	rootCmd.Flags().Bool("dump", false, "dump the resulting AST tree")
	if osal.DebugBuild {
		rootCmd.Flags().Uint("log", 0, "a 6 bit value to control the level of details of the log")
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	lang := osal.SystemLanguage()
	interactive, _ := cmd.Flags().GetBool("interactive")
	dump, _ := cmd.Flags().GetBool("dump")
	if osal.DebugBuild {
		if mask, err := cmd.Flags().GetUint("log"); err == nil {
			if bits, convErr := safecast.Conv[uint8](mask & uint(logger.MaskBits)); convErr == nil {
				logger.SetFilter(logger.Level(bits))
			}
		}
	}

	var srcFile string
	if len(args) > 0 {
		srcFile = args[0]
	}
	if srcFile == "" && !interactive {
		return cmd.Help()
	}

	root, err := core.NewRootManager(core.Options{
		Argv:          append([]string{"alusus"}, args...),
		Language:      lang,
		DriverFactory: engine.Factory(),
	})
	if err != nil {
		return err
	}
	defer root.Close()

	root.NoticeSignal().Connect(diagfmt.NoticePrinter(osal.Stderr(), diagfmt.PrettyOpts{
		Color: isTerminal(osal.Stderr()),
	}))

	if interactive {
		root.SetInteractive(true)
		printInteractiveBanner(lang)
		if _, err := root.ProcessStream(osal.Stdin(), "user input"); err != nil {
			fmt.Fprintln(osal.Stderr(), err.Error())
			return errBuildFailed
		}
		return nil
	}

	result, err := root.ProcessFile(srcFile, false)
	if err != nil {
		printFileError(err, srcFile, lang)
		return errBuildFailed
	}

	if dump && result != nil {
		out := osal.Stdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "-- BUILD COMPLETE --")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Build Results:")
		fmt.Fprintln(out)
		diagfmt.DumpTree(out, result)
	}

	// Errors and fatals collected as notices still fail the build.
	if sev := root.MinNoticeSeverityEncountered(); sev != notices.NoSeverity && sev <= notices.SevError {
		return errBuildFailed
	}
	return nil
}

func printFileError(err error, srcFile, lang string) {
	w := osal.Stderr()
	switch {
	case errors.Is(err, core.ErrInvalidFileType):
		if lang == "ar" {
			fmt.Fprintln(w, "صنف الملف غير صالح: "+srcFile)
		} else {
			fmt.Fprintln(w, "Invalid file type: "+srcFile)
		}
	case errors.Is(err, core.ErrFileNotFound):
		if lang == "ar" {
			fmt.Fprintln(w, "الملف مفقود: "+srcFile)
		} else {
			fmt.Fprintln(w, "File not found: "+srcFile)
		}
	default:
		fmt.Fprintln(w, err.Error())
	}
}

func printInteractiveBanner(lang string) {
	out := osal.Stdout()
	if lang == "ar" {
		fmt.Fprintln(out, "تنفيذ بشكل تفاعلي.")
		fmt.Fprintln(out, "إضغط على CTRL+C للخروج.")
	} else {
		fmt.Fprintln(out, "Running in interactive mode.")
		fmt.Fprintln(out, "Press CTRL+C to exit.")
	}
	fmt.Fprintln(out)
}
