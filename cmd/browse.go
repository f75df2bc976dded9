package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mabhi256/jclassfile/classfile"
	"github.com/mabhi256/jclassfile/internal/browse"
	"github.com/mabhi256/jclassfile/utils"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:               "browse [class-file]",
	Short:             "Interactively browse a decoded .class file",
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

		cls, err := classfile.ToClass(f, classfile.ParsingOption{ParseAttribute: true, ParseSignature: true})
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", filename, err)
		}

		return browse.Run(cls)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
