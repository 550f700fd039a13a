package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"studyaid-backend/internal/analysis"
	"studyaid-backend/internal/generator"
	"studyaid-backend/internal/services"
)

// options are the flags shared by every subcommand.
type options struct {
	file   string
	format string
	seed   uint64
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "studyctl",
		Short: "Generate study aids from notes",
		Long: `Generate study aids from a notes file or stdin.

Input formats: .txt, .md, .pdf, .docx (from --file), or plain text on stdin.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "notes file (reads stdin when empty)")
	root.PersistentFlags().StringVarP(&opts.format, "output", "o", "yaml", "output format: yaml or json")
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "random seed for repeatable quizzes (0 = random)")

	root.AddCommand(
		newSummaryCmd(opts),
		newQuestionsCmd(opts),
		newQuizCmd(opts),
		newKeywordsCmd(opts),
		newFactsCmd(opts),
	)
	return root
}

// document reads the configured input and analyses it.
func (o *options) document(cmd *cobra.Command) (analysis.Document, error) {
	if o.file == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return analysis.Document{}, fmt.Errorf("read stdin: %w", err)
		}
		return analysis.NewDocument(string(data)), nil
	}

	data, err := os.ReadFile(o.file)
	if err != nil {
		return analysis.Document{}, err
	}
	text, err := services.NewFileExtractService().ExtractText(o.file, data)
	if err != nil {
		return analysis.Document{}, err
	}
	return analysis.NewDocument(text), nil
}

func (o *options) generator() *generator.Generator {
	if o.seed == 0 {
		return generator.New(nil)
	}
	return generator.New(rand.New(rand.NewPCG(o.seed, o.seed)))
}

func (o *options) print(cmd *cobra.Command, v interface{}) error {
	out := cmd.OutOrStdout()
	switch o.format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", o.format)
	}
}
