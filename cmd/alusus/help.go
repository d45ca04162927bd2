package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"alusus/internal/osal"
	"alusus/internal/version"
)

var titleColor = color.New(color.Bold)

// helpFunc renders the localized version/copyright banner and usage.
func helpFunc(lang string) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		out := osal.Stdout()
		if lang == "ar" {
			printArabicHelp(out)
		} else {
			printEnglishHelp(out)
		}
	}
}

func printEnglishHelp(out io.Writer) {
	titleColor.Fprintln(out, "Alusus Language")
	fmt.Fprintf(out, "Version %s%s (%s)\n", version.Version, version.Revision, version.ReleaseDate)
	fmt.Fprintf(out, "Copyright (C) %s Sarmad Khalid Abdullah\n\n", version.ReleaseYear())
	fmt.Fprintln(out, "This software is released under Alusus Public License, Version 1.0.")
	fmt.Fprintln(out, "For details on usage and copying conditions read the full license at")
	fmt.Fprintln(out, "<https://alusus.org/license.html>. By using this software you acknowledge")
	fmt.Fprintln(out, "that you have read the terms in the license and agree with and accept all such")
	fmt.Fprintln(out, "terms.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage: alusus [<Core options>] <source> [<program options>]")
	fmt.Fprintln(out, "source = filename.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fmt.Fprintln(out, "\t--interactive, -i  Run in interactive mode.")
	fmt.Fprintln(out, "\t--dump  Tells the Core to dump the resulting AST tree.")
	if osal.DebugBuild {
		fmt.Fprintln(out, "\t--log  A 6 bit value to control the level of details of the log.")
	}
}

func printArabicHelp(out io.Writer) {
	titleColor.Fprintln(out, "لغة الأسُس")
	fmt.Fprintf(out, "الإصدار (%s%s)\n", version.Version, version.Revision)
	fmt.Fprintf(out, "(%s م) (%s هـ)\n", version.ReleaseDate, version.HijriReleaseDate)
	fmt.Fprintf(out, "جميع الحقوق محفوظة لـ سرمد خالد عبدالله (%s م) \\ (%s هـ)\n\n", version.ReleaseYear(), version.HijriReleaseYear())
	fmt.Fprintln(out, "نُشر هذا البرنامج برخصة الأسُس العامة، الإصدار 1.0، والمتوفرة على الرابط أدناه.")
	fmt.Fprintln(out, "يرجى قراءة الرخصة قبل استخدام البرنامج. استخدامك لهذا البرنامج أو أي من الملفات")
	fmt.Fprintln(out, "المرفقة معه إقرار منك أنك قرأت هذه الرخصة ووافقت على جميع فقراتها.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Alusus Public License: <https://alusus.org/ar/license.html>")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "طريقة الاستخدام:")
	fmt.Fprintln(out, "الأسُس [<خيارات القلب>] <الشفرة المصدرية> [<خيارات البرنامج>]")
	fmt.Fprintln(out, "الشفرة المصدرية = اسم الملف الحاوي على الشفرة المصدرية")
	fmt.Fprintln(out, "alusus [<Core options>] <source> [<program options>]")
	fmt.Fprintln(out, "source = filename.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "الخيارات:")
	fmt.Fprintln(out, "\tتنفيذ بشكل تفاعلي:")
	fmt.Fprintln(out, "\t\t--تفاعلي")
	fmt.Fprintln(out, "\t\t-ت")
	fmt.Fprintln(out, "\t\t--interactive")
	fmt.Fprintln(out, "\t\t-i")
	fmt.Fprintln(out, "\tالقاء شجرة AST عند الانتهاء:")
	fmt.Fprintln(out, "\t\t--إلقاء")
	fmt.Fprintln(out, "\t\t--dump")
	if osal.DebugBuild {
		fmt.Fprintln(out, "\tالتحكم بمستوى التدوين (قيمة من 6 بتات):")
		fmt.Fprintln(out, "\t\t--تدوين")
		fmt.Fprintln(out, "\t\t--log")
	}
}
