package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"curriculum-manager/core/config"
	"curriculum-manager/core/database"
	"curriculum-manager/core/logger"
	"curriculum-manager/core/storage"
	"curriculum-manager/feature/curriculum"
	"curriculum-manager/feature/curriculum/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOut     string
	exportPublish bool
	importObject  string
	importYes     bool
	domainColor   string
)

// curriculumCmd is the parent command for curriculum operations.
var curriculumCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "Export and import curriculum hierarchies",
}

var curriculumDomainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List domains",
	Args:  cobra.NoArgs,
	RunE:  runCurriculumDomains,
}

var curriculumCreateDomainCmd = &cobra.Command{
	Use:   "create-domain <name>",
	Short: "Create an empty domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runCurriculumCreateDomain,
}

var curriculumExportCmd = &cobra.Command{
	Use:   "export <domainID>",
	Short: "Export a domain to a JSON tree document",
	Long: `Export the live hierarchy of a domain.

Examples:
  # Print to stdout
  curriculum export 6f1c...

  # Write to a file
  curriculum export 6f1c... --out math.json

  # Upload to the storage bucket
  curriculum export 6f1c... --publish`,
	Args: cobra.ExactArgs(1),
	RunE: runCurriculumExport,
}

var curriculumImportCmd = &cobra.Command{
	Use:   "import <domainID> [file]",
	Short: "Merge a JSON tree document into a domain",
	Long: `Merge a tree document into the live hierarchy of a domain.

Nodes whose id matches an existing entity are updated, all others are created.
Nodes missing required fields are skipped. Nothing is deleted.

Examples:
  # Import a local file (asks for confirmation)
  curriculum import 6f1c... math.json

  # Import from stdin without confirmation
  cat math.json | curriculum import 6f1c... - --yes

  # Import an object from the storage bucket
  curriculum import 6f1c... --object incoming/math.json --yes`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCurriculumImport,
}

func init() {
	curriculumExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write the document to this file instead of stdout")
	curriculumExportCmd.Flags().BoolVar(&exportPublish, "publish", false, "Upload the document to the storage bucket")

	curriculumImportCmd.Flags().StringVar(&importObject, "object", "", "Read the document from this storage object key")
	curriculumImportCmd.Flags().BoolVar(&importYes, "yes", false, "Auto-confirm the import (non-interactive)")

	curriculumCreateDomainCmd.Flags().StringVar(&domainColor, "color", "", "Domain color code (e.g. #3366FF)")

	curriculumCmd.AddCommand(curriculumDomainsCmd, curriculumCreateDomainCmd, curriculumExportCmd, curriculumImportCmd)
	RootCmd.AddCommand(curriculumCmd)
}

// newCurriculumService wires a service from the environment configuration.
func newCurriculumService(ctx context.Context) (*curriculum.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc := curriculum.NewService(db, client, cfg.Storage.Bucket, cfg.Curriculum, l)
	if err := svc.Migrate(ctx); err != nil {
		return nil, nil, err
	}
	return svc, l, nil
}

func runCurriculumDomains(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, _, err := newCurriculumService(ctx)
	if err != nil {
		return err
	}

	domains, err := svc.ListDomains(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, d := range domains {
		fmt.Fprintf(out, "%s\t%s\n", d.ID, d.Name)
	}
	return nil
}

func runCurriculumCreateDomain(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, l, err := newCurriculumService(ctx)
	if err != nil {
		return err
	}

	var color *string
	if domainColor != "" {
		color = &domainColor
	}

	domain, err := svc.CreateDomain(ctx, args[0], color)
	if err != nil {
		return err
	}

	l.Info("Domain created", zap.String("domain_id", domain.ID), zap.String("name", domain.Name))
	fmt.Fprintln(cmd.OutOrStdout(), domain.ID)
	return nil
}

func runCurriculumExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, l, err := newCurriculumService(ctx)
	if err != nil {
		return err
	}

	domainID := args[0]
	if exportPublish {
		key, err := svc.PublishExport(ctx, domainID)
		if err != nil {
			return err
		}
		l.Info("Export published", zap.String("key", key))
		return nil
	}

	data, err := svc.ExportDomain(ctx, domainID)
	if err != nil {
		return err
	}

	if exportOut == "" {
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}
	l.Info("Export written", zap.String("file", exportOut), zap.Int("bytes", len(data)))
	return nil
}

func runCurriculumImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	domainID := args[0]

	if importObject == "" && len(args) < 2 {
		return fmt.Errorf("either a file argument or --object is required")
	}
	if importObject != "" && len(args) == 2 {
		return fmt.Errorf("a file argument and --object are mutually exclusive")
	}

	svc, l, err := newCurriculumService(ctx)
	if err != nil {
		return err
	}

	var raw []byte
	if importObject == "" {
		raw, err = readDocument(cmd.InOrStdin(), args[1])
		if err != nil {
			return err
		}
	}

	if !confirmImport(cmd.InOrStdin(), domainID) {
		l.Warn("Import cancelled by user. No changes were made.")
		return nil
	}

	var summary *reconcile.Summary
	if importObject != "" {
		summary, err = svc.ImportFromObject(ctx, domainID, importObject)
	} else {
		summary, err = svc.ImportDomain(ctx, domainID, raw)
	}
	if err != nil {
		return err
	}

	printImportSummary(cmd.OutOrStdout(), summary)
	return nil
}

// readDocument reads path, or stdin when path is "-".
func readDocument(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// confirmImport asks for an explicit "yes" unless --yes was passed.
func confirmImport(stdin io.Reader, domainID string) bool {
	if importYes {
		return true
	}

	fmt.Printf("\nImport will create and update entities in domain %s. Type 'yes' to confirm: ", domainID)
	reader := bufio.NewReader(stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

func printImportSummary(w io.Writer, s *reconcile.Summary) {
	fmt.Fprintln(w, "Import summary")
	fmt.Fprintf(w, "  domain updated:    %t\n", s.DomainUpdated)
	fmt.Fprintf(w, "  competencies:      %d created, %d updated\n", s.Competencies.Created, s.Competencies.Updated)
	fmt.Fprintf(w, "  sub-competencies:  %d created, %d updated\n", s.SubCompetencies.Created, s.SubCompetencies.Updated)
	fmt.Fprintf(w, "  resources:         %d created, %d updated\n", s.Resources.Created, s.Resources.Updated)
	fmt.Fprintf(w, "  evaluations:       %d created, %d updated\n", s.Evaluations.Created, s.Evaluations.Updated)
	fmt.Fprintf(w, "  total writes:      %d\n", s.Total())
}
