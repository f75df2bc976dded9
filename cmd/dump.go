package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mabhi256/jclassfile/classfile"
	"github.com/mabhi256/jclassfile/classfile/render"
	"github.com/mabhi256/jclassfile/utils"
	"github.com/spf13/cobra"
)

var (
	dumpParseSignature bool
	dumpSkipUnknown    bool
	dumpStrictVersion  bool
	dumpDebug          bool
)

var dumpCmd = &cobra.Command{
	Use:               "dump [class-file]",
	Short:             "Decode a .class file and print its structure",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".class"}, false),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filename)
		}
		if ext := filepath.Ext(filename); ext != ".class" {
			fmt.Printf("Warning: File extension '%s' is not '.class', but proceeding anyway...\n", ext)
		}

		f, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", filename, err)
		}
		defer f.Close()

		opts := classfile.ParsingOption{
			ParseAttribute:        true,
			ParseSignature:        dumpParseSignature,
			SkipUnknownAttributes: dumpSkipUnknown,
			StrictVersionCheck:    dumpStrictVersion,
		}
		if dumpDebug {
			opts.DebugWriter = os.Stderr
		}

		cls, err := classfile.ToClass(f, opts)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", filename, err)
		}

		fmt.Print(render.Summary(cls))
		fmt.Println()
		fmt.Print(render.Fields(cls))
		fmt.Println()
		fmt.Print(render.Methods(cls))

		return nil
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpParseSignature, "parse-signature", false, "parse Signature attribute payloads into a typed generics tree")
	dumpCmd.Flags().BoolVar(&dumpSkipUnknown, "skip-unknown-attributes", false, "drop unrecognized attributes instead of retaining them raw")
	dumpCmd.Flags().BoolVar(&dumpStrictVersion, "strict-version", false, "reject major versions outside 45-64")
	dumpCmd.Flags().BoolVar(&dumpDebug, "debug", false, "write a trace of the decode to stderr")
	rootCmd.AddCommand(dumpCmd)
}
