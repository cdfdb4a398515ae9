// Command advisor runs the learning-path quiz in a terminal and then lets the
// user refine the recommended e-learnings.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"learnpath/internal/config"
	"learnpath/internal/logger"
	"learnpath/internal/quizflow"
	"learnpath/internal/resultsfilter"
	"learnpath/internal/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var baseURL string

	root := &cobra.Command{
		Use:          "advisor",
		Short:        "Take the quiz and browse recommended e-learnings",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := logger.Initialize(cfg.Logger); err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			defer logger.Sync()

			if baseURL == "" {
				baseURL = cfg.Client.BaseURL
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a := &advisor{
				baseURL:     baseURL,
				resultsPath: cfg.Server.ResultsPath,
				client:      &http.Client{Timeout: cfg.Client.Timeout},
				in:          bufio.NewScanner(cmd.InOrStdin()),
				out:         cmd.OutOrStdout(),
			}
			return a.run(ctx)
		},
	}
	root.Flags().StringVar(&baseURL, "base-url", "", "API base URL (defaults to client.base_url)")
	return root
}

type advisor struct {
	baseURL     string
	resultsPath string
	client      *http.Client
	in          *bufio.Scanner
	out         io.Writer
}

func (a *advisor) run(ctx context.Context) error {
	score, topic, err := a.quiz(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\nYour score: %g, topic: %s\n", score, topic)
	return a.results(ctx, score, topic)
}

// quiz runs the question loop and returns the score and topic carried by the
// navigation target.
func (a *advisor) quiz(ctx context.Context) (float64, string, error) {
	view := newTermView(a.out)
	flow := quizflow.New(quizflow.NewHTTPSource(a.baseURL, a.client), view, quizflow.WithResultsPath(a.resultsPath))
	if err := flow.Start(ctx); err != nil {
		return 0, "", err
	}
	logger.Get().Debug("Quiz started", zap.String("session", flow.Session().ID))

	for flow.State() == quizflow.Displaying {
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			return 0, "", fmt.Errorf("quiz aborted: %w", inputErr(a.in))
		}
		i, ok := view.choice(a.in.Text())
		if !ok {
			fmt.Fprintln(a.out, "Please type the letter of an answer.")
			continue
		}
		if err := flow.Choose(ctx, i); err != nil {
			return 0, "", err
		}
	}
	return parseTarget(view.target)
}

func (a *advisor) results(ctx context.Context, score float64, topic string) error {
	fetcher := resultsfilter.NewHTTPFetcher(a.baseURL, a.client)

	// The full listing supplies the topic checkboxes.
	all, err := fetcher.Fetch(ctx, resultsfilter.FilterState{})
	if err != nil {
		return err
	}
	var topics []string
	seen := map[string]bool{}
	for _, item := range all.Data {
		if item.Onderwerp != "" && !seen[item.Onderwerp] {
			seen[item.Onderwerp] = true
			topics = append(topics, item.Onderwerp)
		}
	}

	page := newTermPage(a.out, strconv.FormatFloat(score, 'f', -1, 64), topic, "0", topics...)
	page.checkOnly(util.SplitList(topic))
	filter := resultsfilter.New(page, fetcher)
	filter.Initialize(ctx)

	fmt.Fprintf(a.out, "\nTopics: %s\n", strings.Join(topics, ", "))
	fmt.Fprintln(a.out, "Commands: t <hours> | c <topic,topic> | type <type> | q")
	for {
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			return a.in.Err()
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(a.in.Text()), " ")
		arg = strings.TrimSpace(arg)

		var ev resultsfilter.Event
		switch strings.ToLower(cmd) {
		case "q", "quit":
			return nil
		case "t":
			ev = resultsfilter.Event{Kind: resultsfilter.SliderReleased, Value: arg}
		case "c":
			page.checkOnly(util.SplitList(arg))
			ev = resultsfilter.Event{Kind: resultsfilter.CheckboxChanged}
		case "type":
			ev = resultsfilter.Event{Kind: resultsfilter.TypeSelected, Value: arg}
		default:
			fmt.Fprintln(a.out, "Unknown command.")
			continue
		}
		if err := filter.OnFilterChange(ctx, ev); err != nil {
			fmt.Fprintln(a.out, err)
		}
	}
}

func parseTarget(target string) (float64, string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return 0, "", fmt.Errorf("parse results target %q: %w", target, err)
	}
	q := u.Query()
	score, err := strconv.ParseFloat(q.Get("score"), 64)
	if err != nil {
		return 0, "", fmt.Errorf("results target %q has no score", target)
	}
	return score, q.Get("topic"), nil
}

func inputErr(s *bufio.Scanner) error {
	if err := s.Err(); err != nil {
		return err
	}
	return io.EOF
}
