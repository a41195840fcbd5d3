package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"interviewcoach/internal/core/engine"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/logger"
	evalsvc "interviewcoach/internal/services/api/evaluations/service"
)

const app = "interviewcoach"

// cli holds what every subcommand shares; it is filled in by the root PersistentPreRunE
type cli struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	logLevel string
	overlay  string

	log logger.Logger
	res *lexicon.Resources
	eng *engine.Engine
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{in: in, out: out, errOut: errOut}
	cfg := config.New()

	root := &cobra.Command{
		Use:           app,
		Short:         app + " scores interview answers, speech transcripts and resumes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.init()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&c.logLevel, "log-level", cfg.MayString("LOG_LEVEL", "warn"), "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&c.overlay, "overlay", cfg.MayString("CORE_LEXICON_OVERLAY", ""), "YAML lexicon overlay with extra roles, fillers and stopwords")

	root.AddCommand(
		c.interviewCmd(),
		c.fluencyCmd(),
		c.resumeCmd(),
		c.batchCmd(),
		c.rolesCmd(),
		c.versionCmd(),
	)
	return root
}

func (c *cli) init() error {
	c.log = logger.New(logger.Options{
		Level:   c.logLevel,
		Format:  "console",
		Service: app,
		Writer:  c.errOut,
	})
	res, err := lexicon.LoadWithOverlay(c.overlay)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}
	c.res = res
	c.eng = engine.New(engine.WithLogger(c.log), engine.WithResources(res))
	return nil
}

// service runs evaluations without any backend
func (c *cli) service(workers int) *evalsvc.Svc {
	return evalsvc.New(c.eng, nil, nil, nil, nil, evalsvc.Config{Workers: workers})
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// text returns the contents of file when set ("-" reads stdin), else inline
func (c *cli) text(inline, file string) (string, error) {
	switch file {
	case "":
		return inline, nil
	case "-":
		b, err := io.ReadAll(c.in)
		return string(b), err
	default:
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func (c *cli) open(file string) (io.ReadCloser, error) {
	if strings.TrimSpace(file) == "-" {
		return io.NopCloser(c.in), nil
	}
	return os.Open(file)
}
