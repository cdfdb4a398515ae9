package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"learnpath/internal/adapter"
	"learnpath/internal/cache"
	"learnpath/internal/catalog"
	"learnpath/internal/config"
	"learnpath/internal/database"
	"learnpath/internal/domain"
	"learnpath/internal/logger"
	"learnpath/internal/repository"
	"learnpath/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultCatalogPath = "data/Elearnings.csv"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		file string
		yes  bool
	)

	root := &cobra.Command{
		Use:          "import_courses",
		Short:        "Replace the e-learning catalog with the rows of a CSV export",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := catalog.ParseFile(file)
			if err != nil {
				return err
			}
			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout()) {
				fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled.")
				return nil
			}
			return withService(cmd.Context(), func(svc service.ElearningService) error {
				if err := svc.ReplaceCatalog(cmd.Context(), items); err != nil {
					return err
				}
				logger.Get().Info("Catalog replaced", zap.String("file", file), zap.Int("items", len(items)))
				fmt.Fprintf(cmd.OutOrStdout(), "Existing courses deleted and %d courses imported from %s.\n", len(items), file)
				return nil
			})
		},
	}
	root.Flags().StringVarP(&file, "file", "f", defaultCatalogPath, "CSV file to import")
	root.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	root.AddCommand(newListCmd(), newAddCmd(), newSetStatusCmd())

	return root
}

func newListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the active catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), func(svc service.ElearningService) error {
				list := svc.ListActive
				if all {
					list = svc.ListCatalog
				}
				items, err := list(cmd.Context())
				if err != nil {
					return err
				}
				printCatalog(cmd.OutOrStdout(), items)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include inactive courses")
	return cmd
}

// courseFlags holds the add command's flags; Tijd is parsed like the CSV
// column so "1,5" is accepted.
type courseFlags struct {
	ID           string
	Titel        string
	Niveau       int
	Onderwerp    string
	Type         string
	Tijd         string
	Taal         string
	Organisatie  string
	Beschrijving string
	Link         string
	Status       string
}

func (f courseFlags) course() (*domain.Elearning, error) {
	hours, err := catalog.ParseHours(strings.TrimSpace(f.Tijd))
	if err != nil {
		return nil, fmt.Errorf("tijd: %w", err)
	}
	e := &domain.Elearning{
		ID:               strings.TrimSpace(f.ID),
		Titel:            strings.TrimSpace(f.Titel),
		Niveau:           f.Niveau,
		Onderwerp:        strings.TrimSpace(f.Onderwerp),
		Type:             strings.TrimSpace(f.Type),
		Tijdsinvestering: hours,
		Taal:             strings.TrimSpace(f.Taal),
		Organisatie:      strings.TrimSpace(f.Organisatie),
		Beschrijving:     strings.TrimSpace(f.Beschrijving),
		Link:             strings.TrimSpace(f.Link),
		Status:           strings.TrimSpace(f.Status),
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func newAddCmd() *cobra.Command {
	var f courseFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one course, or overwrite the course with --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			item, err := f.course()
			if err != nil {
				return err
			}
			return withService(cmd.Context(), func(svc service.ElearningService) error {
				if err := svc.SaveCourse(cmd.Context(), item); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Course saved with ID %s.\n", item.ID)
				return nil
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.ID, "id", "", "ID of the course to overwrite")
	fl.StringVar(&f.Titel, "titel", "", "course title")
	fl.IntVar(&f.Niveau, "niveau", 0, "course level")
	fl.StringVar(&f.Onderwerp, "onderwerp", "", "topic code")
	fl.StringVar(&f.Type, "type", "", "E-Learning, Workshop or Guide")
	fl.StringVar(&f.Tijd, "tijd", "", "time investment in hours")
	fl.StringVar(&f.Taal, "taal", "", "language")
	fl.StringVar(&f.Organisatie, "organisatie", "", "organisation")
	fl.StringVar(&f.Beschrijving, "beschrijving", "", "description")
	fl.StringVar(&f.Link, "link", "", "course URL")
	fl.StringVar(&f.Status, "status", domain.StatusActive, "active or inactive")
	_ = cmd.MarkFlagRequired("titel")
	return cmd
}

func newSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <active|inactive>",
		Short: "Show or hide one course in recommendations",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return err
			}
			if !domain.ValidStatus(args[1]) {
				return fmt.Errorf("invalid status %q: want %s or %s", args[1], domain.StatusActive, domain.StatusInactive)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc service.ElearningService) error {
				if err := svc.SetCourseStatus(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Course %s is now %s.\n", args[0], args[1])
				return nil
			})
		},
	}
}

func confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Are you sure? Going on will change the courses known in the database. (yes/no): ")
	answer, _ := bufio.NewReader(in).ReadString('\n')
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

func printCatalog(w io.Writer, items []*domain.Elearning) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No courses found in the database.")
		return
	}
	fmt.Fprintf(w, "Found %d course(s):\n", len(items))
	for _, e := range items {
		fmt.Fprintf(w, "ID: %s, Titel: %s, Niveau: %d, Onderwerp: %s, Type: %s, Tijdsinvestering: %g, Status: %s\n",
			e.ID, e.Titel, e.Niveau, e.Onderwerp, e.Type, e.Tijdsinvestering, e.Status)
	}
}

// withService wires the catalog service the way cmd/api does, so that a
// replace also clears cached results when Redis is enabled.
func withService(ctx context.Context, fn func(svc service.ElearningService) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := database.RunMigrations(ctx, cfg); err != nil {
		return err
	}
	db, err := database.NewSQLXDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var cacheAdapter domain.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Get().Warn("Redis unavailable, cached results will expire on their own", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		}
	}
	results := service.NewResultsCacheService(cacheAdapter, cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Results, 10*time.Minute))
	svc := service.NewElearningService(repository.NewElearningDatabaseAdapter(db), results, cfg.Recommendations)
	return fn(svc)
}
