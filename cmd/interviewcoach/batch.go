package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"interviewcoach/internal/core/engine"
	"interviewcoach/internal/platform/net/http/bind"
	"interviewcoach/internal/services/api/evaluations/domain"
)

// batchChunk matches the request limit of the batch endpoint
const batchChunk = 50

func (c *cli) batchCmd() *cobra.Command {
	var (
		file, role, level string
		workers           int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score a session of answers read as JSON Lines of {question, answer}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := c.open(file)
			if err != nil {
				return err
			}
			defer rc.Close()

			items, err := readItems(bufio.NewScanner(rc))
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("batch: %s has no answers", file)
			}

			svc := c.service(workers)
			var all domain.BatchResult
			for start := 0; start < len(items); start += batchChunk {
				req := domain.BatchRequest{
					JobRole:    role,
					SkillLevel: level,
					Items:      items[start:min(start+batchChunk, len(items))],
				}
				if err := bind.Validate(req); err != nil {
					return fmt.Errorf("batch: answers %d-%d: %w", start+1, start+len(req.Items), err)
				}
				out, err := svc.InterviewBatch(cmd.Context(), req)
				if err != nil {
					return err
				}
				all.Results = append(all.Results, out.Results...)
			}

			results := make([]engine.InterviewResult, len(all.Results))
			for i, r := range all.Results {
				results[i] = r.Result
			}
			all.Summary = c.eng.Summarize(results)
			return c.print(all)
		},
	}
	f := cmd.Flags()
	f.StringVar(&file, "file", "-", "JSON Lines file (- for stdin)")
	f.StringVar(&role, "role", "", "job role for every answer")
	f.StringVar(&level, "level", "", "skill level for every answer")
	f.IntVar(&workers, "workers", runtime.NumCPU(), "concurrent evaluations")
	return cmd
}

func readItems(sc *bufio.Scanner) ([]domain.BatchItem, error) {
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var items []domain.BatchItem
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var it domain.BatchItem
		if err := json.Unmarshal([]byte(line), &it); err != nil {
			return nil, fmt.Errorf("batch: line %d: %w", n, err)
		}
		items = append(items, it)
	}
	return items, sc.Err()
}
