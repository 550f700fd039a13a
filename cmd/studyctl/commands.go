package main

import (
	"github.com/spf13/cobra"

	"studyaid-backend/internal/analysis"
	"studyaid-backend/internal/generator"
)

type summaryOutput struct {
	Domain   analysis.Domain `json:"domain" yaml:"domain"`
	Summary  string          `json:"summary" yaml:"summary"`
	Insight  string          `json:"insight" yaml:"insight"`
	Keywords []string        `json:"keywords" yaml:"keywords"`
}

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the summary paragraph, study insight and top keywords",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.document(cmd)
			if err != nil {
				return err
			}
			s := generator.Summarize(doc)
			return opts.print(cmd, summaryOutput{
				Domain:   analysis.Classify(doc.Text),
				Summary:  s.Summary,
				Insight:  s.Insight,
				Keywords: analysis.CandidateTerms(doc.Text, 8),
			})
		},
	}
}

func newQuestionsCmd(opts *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print open exam-style questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.document(cmd)
			if err != nil {
				return err
			}
			return opts.print(cmd, generator.Questions(doc, count))
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 6, "maximum number of questions")
	return cmd
}

func newQuizCmd(opts *options) *cobra.Command {
	var (
		minQ  int
		naive bool
	)
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Print a multiple-choice quiz with answers",
		Long: `Print a multiple-choice quiz with answers.

By default items are built from extracted facts (definitions, causes,
contrasts, lists) and topped up from keywords. --naive uses the simpler
keyword-frequency generator.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.document(cmd)
			if err != nil {
				return err
			}
			g := opts.generator()
			if naive {
				return opts.print(cmd, g.FrequencyMCQs(doc, minQ))
			}
			return opts.print(cmd, g.ExamMCQs(doc, minQ))
		},
	}
	cmd.Flags().IntVar(&minQ, "min", 5, "minimum number of questions")
	cmd.Flags().BoolVar(&naive, "naive", false, "use the keyword-frequency generator")
	return cmd
}

func newKeywordsCmd(opts *options) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Print scored candidate keywords",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.document(cmd)
			if err != nil {
				return err
			}
			return opts.print(cmd, analysis.CandidateKeywords(doc.Text, n))
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 12, "number of keywords")
	return cmd
}

func newFactsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "facts",
		Short: "Print definitions, causes, contrasts, examples, lists and steps found in the notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.document(cmd)
			if err != nil {
				return err
			}
			return opts.print(cmd, analysis.ExtractFacts(doc))
		},
	}
}
