package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	ingestAppend      bool
	ingestMinTokenLen int
	ingestNoStopwords bool

	ingestCmd = &cobra.Command{
		Use:   "ingest <file>",
		Short: "Tokenize a text corpus and store it as transactions",
		Long: `Read a text corpus (one record per line), tokenize each record into a
set of normalized words, and store the resulting transactions in the
textmine database.

Tokenization lowercases each word and strips leading/trailing punctuation.
Words listed in the stopword file ({config-dir}/stopwords, one per line)
are dropped, as are words shorter than --min-token-len. Records with no
surviving words are skipped.

By default the new corpus replaces the previous one and clears any stored
mining results, which would otherwise describe a corpus that no longer
exists. Use --append to extend the current corpus instead; stored results
then go stale until the next 'textmine mine'.`,
		Example: `  # Replace the corpus with a new file
  textmine ingest corpus.txt

  # Add more records to the existing corpus
  textmine ingest extra.txt --append

  # Keep very short tokens and ignore the stopword file
  textmine ingest corpus.txt --min-token-len 1 --no-stopwords`,
		Args: cobra.ExactArgs(1),
		RunE: runIngest,
	}
)

func init() {
	ingestCmd.Flags().BoolVar(&ingestAppend, "append", false, "append to the existing corpus instead of replacing it")
	ingestCmd.Flags().IntVar(&ingestMinTokenLen, "min-token-len", 1, "drop tokens shorter than this many characters")
	ingestCmd.Flags().BoolVar(&ingestNoStopwords, "no-stopwords", false, "ignore the stopword file")

	RootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestMinTokenLen < 1 {
		return fmt.Errorf("invalid min-token-len: %d (must be at least 1)", ingestMinTokenLen)
	}

	opts, err := tokenizerOptions(ingestMinTokenLen, ingestNoStopwords)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	kept, skipped, err := ingestFile(st, args[0], opts, ingestAppend)
	if err != nil {
		return err
	}

	verb := "Ingested"
	if ingestAppend {
		verb = "Appended"
	}
	fmt.Printf("%s %d transactions from %s", verb, kept, args[0])
	if skipped > 0 {
		fmt.Printf(" (%d empty records skipped)", skipped)
	}
	fmt.Println()

	if !ingestAppend {
		fmt.Println("Previous mining results cleared. Run 'textmine mine' to analyze the new corpus.")
	} else {
		fmt.Println("Stored mining results are stale. Run 'textmine mine' to refresh them.")
	}

	return nil
}
