// Command classify runs the rule-based classifier offline and prints JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lawpick-backend/classifier"
	"lawpick-backend/models"
)

type classifyFlags struct {
	file      string
	sender    string
	recipient string
	letter    bool
	explain   bool
	compact   bool
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var flags classifyFlags
	root := &cobra.Command{
		Use:   "classify [narrative...]",
		Short: "Classify a legal narrative with the rule-based engine",
		Long: "Classify reads a narrative from the arguments, --file, or stdin and prints the verdict as JSON.\n" +
			"No network access is needed; the generative upstream is never called.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readNarrative(args, flags.file, stdin)
			if err != nil {
				return err
			}
			return runClassify(stdout, models.CaseNarrative{
				Content:       text,
				SenderName:    flags.sender,
				RecipientName: flags.recipient,
			}, flags)
		},
	}

	f := root.Flags()
	f.StringVarP(&flags.file, "file", "f", "", "Read the narrative from a file (- for stdin)")
	f.StringVar(&flags.sender, "sender", "", "Client name")
	f.StringVar(&flags.recipient, "recipient", "", "Counterparty name")
	f.BoolVar(&flags.letter, "letter", false, "Also compose the demand letter")
	f.BoolVar(&flags.explain, "explain", false, "Include roles, matched rule and extracted facts")
	f.BoolVar(&flags.compact, "compact", false, "Print single-line JSON")

	var compact bool
	diagnoseCmd := &cobra.Command{
		Use:   "diagnose [housing] [job] [recent-transaction] [driving]",
		Short: "Score the risk self-diagnosis questionnaire",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(stdout, classifier.ScoreDiagnosis(models.DiagnosisAnswers(args)), compact)
		},
	}
	diagnoseCmd.Flags().BoolVar(&compact, "compact", false, "Print single-line JSON")
	root.AddCommand(diagnoseCmd)

	return root
}

func readNarrative(args []string, file string, stdin io.Reader) (string, error) {
	switch {
	case len(args) > 0 && file != "":
		return "", errors.New("pass the narrative as arguments or --file, not both")
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file != "" && file != "-":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read narrative: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

type classifyOutput struct {
	Verdict  models.Verdict       `json:"verdict"`
	Letter   *models.DemandLetter `json:"letter,omitempty"`
	Analysis *classifier.Analysis `json:"analysis,omitempty"`
}

func runClassify(w io.Writer, n models.CaseNarrative, flags classifyFlags) error {
	a := classifier.Analyze(n)
	out := classifyOutput{Verdict: a.Verdict}
	if flags.letter {
		l := classifier.ComposeLetter(a)
		out.Letter = &l
	}
	if flags.explain {
		out.Analysis = a
	}
	return writeJSON(w, out, flags.compact)
}

func writeJSON(w io.Writer, v interface{}, compact bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
