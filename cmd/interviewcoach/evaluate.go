package main

import (
	"github.com/spf13/cobra"

	"interviewcoach/internal/platform/net/http/bind"
	"interviewcoach/internal/services/api/evaluations/domain"
)

func (c *cli) interviewCmd() *cobra.Command {
	var (
		in         domain.InterviewRequest
		answerFile string
	)
	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Score one interview answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.Answer, err = c.text(in.Answer, answerFile); err != nil {
				return err
			}
			if err := bind.Validate(in); err != nil {
				return err
			}
			out, err := c.service(1).Interview(cmd.Context(), in)
			if err != nil {
				return err
			}
			return c.print(out.Result)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Question, "question", "", "interview question")
	f.StringVar(&in.Answer, "answer", "", "candidate answer")
	f.StringVar(&answerFile, "answer-file", "", "read the answer from a file (- for stdin)")
	f.StringVar(&in.JobRole, "role", "", "job role (default Software Engineer)")
	f.StringVar(&in.SkillLevel, "level", "", "skill level: Beginner, Intermediate or Advanced")
	_ = cmd.MarkFlagRequired("question")
	cmd.MarkFlagsMutuallyExclusive("answer", "answer-file")
	return cmd
}

func (c *cli) fluencyCmd() *cobra.Command {
	var (
		in                      domain.FluencyRequest
		file                    string
		duration, pronunciation float64
	)
	cmd := &cobra.Command{
		Use:   "fluency",
		Short: "Analyze the fluency of a speech transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.Transcript, err = c.text(in.Transcript, file); err != nil {
				return err
			}
			if cmd.Flags().Changed("duration") {
				in.AudioDuration = &duration
			}
			if cmd.Flags().Changed("pronunciation") {
				in.PronunciationScore = &pronunciation
			}
			if err := bind.Validate(in); err != nil {
				return err
			}
			out, err := c.service(1).Fluency(cmd.Context(), in)
			if err != nil {
				return err
			}
			return c.print(out.Result)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Transcript, "transcript", "", "transcript text")
	f.StringVar(&file, "file", "", "read the transcript from a file (- for stdin)")
	f.Float64Var(&duration, "duration", 0, "audio duration in seconds; omitted assumes a normal pace")
	f.Float64Var(&pronunciation, "pronunciation", 0, "pronunciation score 0-100 from an external scorer")
	cmd.MarkFlagsMutuallyExclusive("transcript", "file")
	return cmd
}

func (c *cli) resumeCmd() *cobra.Command {
	var (
		in   domain.ResumeRequest
		file string
	)
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Analyze resume text for a job role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.ResumeText, err = c.text("", file); err != nil {
				return err
			}
			if err := bind.Validate(in); err != nil {
				return err
			}
			out, err := c.service(1).Resume(cmd.Context(), in)
			if err != nil {
				return err
			}
			return c.print(out.Result)
		},
	}
	cmd.Flags().StringVar(&file, "file", "-", "resume text file (- for stdin)")
	cmd.Flags().StringVar(&in.JobRole, "role", "", "job role (default Software Engineer)")
	return cmd
}
