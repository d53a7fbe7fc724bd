package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skysurvey-tools/authlist/order"
	"github.com/skysurvey-tools/authlist/pipeline"
	"github.com/skysurvey-tools/authlist/profile"
	"github.com/skysurvey-tools/authlist/pubdb"
)

var (
	inputFile     string
	outputFile    string
	profileFile   string
	policyName    string
	auxFile       string
	collab        string
	collabID      string
	pubRef        string
	contactEmail  string
	title         string
	abstract      string
	orcid         bool
	noCollab      bool
	collabFirst   bool
	sortedAffil   bool
	sortBuilder   bool
	sortNonBuild  bool
	contributions bool
	document      bool
	force         bool
	startIndex    int
)

var generateCmd = &cobra.Command{
	Use:   "generate [target]",
	Short: "Generate a formatted author list",
	Long: `Generate the author-list block for a journal render target.

Arguments:
  target  Render target name or alias (see 'authlist targets').
          Defaults to the journal set in the run profile.

Input defaults to stdin, output defaults to stdout. Targets that produce
secondary files (jcap.appendix affiliations, contribution lists) write
them next to the output file, or after the main output on stdout.

Examples:
  # JCAP author list from the PubDB export
  authlist generate jcap -i author_list.csv -o author_list.tex

  # Alphabetized arXiv metadata line without the collaboration
  authlist generate arxiv --policy alphabetical --no-collab -i author_list.csv

  # First-tier ordering with ORCID links and a standalone document
  authlist generate revtex --policy first-tier --orcid --doc -i author_list.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file (default: stdin)")
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().StringVar(&profileFile, "profile-file", "", "Run profile YAML file")
	generateCmd.Flags().StringVar(&policyName, "policy", "", "Ordering policy: none, alphabetical or first-tier")
	generateCmd.Flags().StringVarP(&auxFile, "aux", "a", "", "Auxiliary ordering file (one name per line)")
	generateCmd.Flags().StringVarP(&collab, "collab", "c", "", "Collaboration name")
	generateCmd.Flags().StringVar(&collabID, "collab-id", "", "Collaboration id for INSPIRE author.xml (e.g. c1)")
	generateCmd.Flags().StringVar(&pubRef, "pubref", "", "Publication reference URL for INSPIRE author.xml")
	generateCmd.Flags().StringVar(&contactEmail, "email", "", "Contact email for targets that emit one")
	generateCmd.Flags().StringVar(&title, "title", "", "Document title (with --doc)")
	generateCmd.Flags().StringVar(&abstract, "abstract", "", "Document abstract (with --doc)")
	generateCmd.Flags().BoolVar(&orcid, "orcid", false, "Include ORCID markup")
	generateCmd.Flags().BoolVar(&noCollab, "no-collab", false, "Exclude the collaboration name")
	generateCmd.Flags().BoolVar(&collabFirst, "collab-first", false, "Put the collaboration name first in the author sequence")
	generateCmd.Flags().BoolVar(&sortedAffil, "sorted-affiliations", false, "Number affiliations in sorted instead of first-seen order")
	generateCmd.Flags().BoolVar(&sortBuilder, "sort-builder", false, "Alphabetize the builder author tier")
	generateCmd.Flags().BoolVar(&sortNonBuild, "sort-nonbuilder", false, "Alphabetize the non-builder author tier")
	generateCmd.Flags().BoolVar(&contributions, "contributions", false, "Also produce the author contribution list")
	generateCmd.Flags().BoolVarP(&document, "doc", "d", false, "Wrap the list in a standalone LaTeX document")
	generateCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing output files")
	generateCmd.Flags().IntVar(&startIndex, "idx", 0, "Starting affiliation index (multi-collaboration papers)")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	targetName := ""
	if len(args) > 0 {
		targetName = args[0]
	}
	opts, err := buildOptions(cmd, targetName)
	if err != nil {
		return err
	}

	var input io.Reader
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
	} else {
		input = os.Stdin
	}

	rows, err := pubdb.Parse(input)
	if err != nil {
		return err
	}

	out, err := pipeline.Generate(rows, *opts)
	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Print(out.Main)
		for _, name := range []string{"affiliations", pipeline.ExtraContributions} {
			if text, ok := out.Extras[name]; ok {
				fmt.Print("\n" + text)
			}
		}
		return nil
	}

	if err := writeFile(outputFile, out.Main); err != nil {
		return err
	}
	if text, ok := out.Extras["affiliations"]; ok {
		if err := writeFile(extraPath(outputFile, "affiliations"), text); err != nil {
			return err
		}
	}
	if text, ok := out.Extras[pipeline.ExtraContributions]; ok {
		if err := writeFile(extraPath(outputFile, "contributions"), text); err != nil {
			return err
		}
	}
	return nil
}

// buildOptions layers command-line flags over the run profile: the
// embedded default, or the file named by --profile-file. A flag the user
// set always wins.
func buildOptions(cmd *cobra.Command, targetName string) (*pipeline.Options, error) {
	p := profile.Default()
	if profileFile != "" {
		loaded, err := profile.Load(profileFile)
		if err != nil {
			return nil, err
		}
		p = loaded
	}

	if targetName == "" {
		targetName = p.Journal
	}
	if targetName == "" {
		return nil, fmt.Errorf("no render target given and the profile names no journal")
	}

	opts := &pipeline.Options{
		Target:        targetName,
		Collaboration: p.Collaboration,
		CollabID:      p.CollabID,
		ContactEmail:  p.ContactEmail,
		Title:         p.Title,
		Abstract:      p.Abstract,
		ORCID:         p.ORCID,
		StartIndex:    p.StartIndex,
	}
	opts.SortedAffiliations = p.SortedAffiliations

	policy := p.Policy
	if cmd.Flags().Changed("policy") {
		policy = policyName
	}
	parsed, err := order.ParsePolicy(policy)
	if err != nil {
		return nil, err
	}
	opts.Policy = parsed

	if cmd.Flags().Changed("collab") {
		opts.Collaboration = collab
	}
	if cmd.Flags().Changed("collab-id") {
		opts.CollabID = collabID
	}
	if cmd.Flags().Changed("email") {
		opts.ContactEmail = contactEmail
	}
	if cmd.Flags().Changed("title") {
		opts.Title = title
	}
	if cmd.Flags().Changed("abstract") {
		opts.Abstract = abstract
	}
	if cmd.Flags().Changed("orcid") {
		opts.ORCID = orcid
	}
	if cmd.Flags().Changed("sorted-affiliations") {
		opts.SortedAffiliations = sortedAffil
	}
	if cmd.Flags().Changed("idx") {
		opts.StartIndex = startIndex
	}
	opts.PubRef = pubRef
	opts.NoCollab = noCollab
	opts.CollaborationFirst = collabFirst
	opts.SortBuilders = sortBuilder
	opts.SortNonBuilders = sortNonBuild
	opts.Contributions = contributions
	opts.Document = document

	if auxFile != "" {
		f, err := os.Open(auxFile)
		if err != nil {
			return nil, fmt.Errorf("opening aux file: %w", err)
		}
		defer f.Close()
		aux, err := pubdb.ParseAux(f)
		if err != nil {
			return nil, err
		}
		opts.Aux = aux
	}

	return opts, nil
}

// extraPath derives the secondary output path: author_list.tex becomes
// author_list.affiliations.tex.
func extraPath(path, name string) string {
	if i := strings.LastIndex(path, "."); i > 0 {
		return path[:i] + "." + name + path[i:]
	}
	return path + "." + name
}

func writeFile(path, text string) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("found %s; use --force to overwrite", path)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
