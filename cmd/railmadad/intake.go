// README: The intake command; runs one complete grievance session.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"railmadad/internal/ai"
	"railmadad/internal/config"
	"railmadad/internal/console"
	"railmadad/internal/infra"
	"railmadad/internal/logger"
	"railmadad/internal/modules/grievance"
)

func newIntakeCmd() *cobra.Command {
	var dbPath string
	var keepBlank bool

	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Run one interactive grievance intake session",
		Long:  "Asks for a grievance, classifies it via Gemini, collects follow-up details, and stores the record.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntake(cmd, dbPath, keepBlank)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the grievance database (overrides RAILMADAD_DB_PATH)")
	cmd.Flags().BoolVar(&keepBlank, "keep-blank-questions", true, "present blank generated follow-up questions instead of dropping them")
	return cmd
}

func runIntake(cmd *cobra.Command, dbPath string, keepBlank bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if cfg.AI.GeminiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	log := logger.New(cfg.Log.Path)
	defer log.Sync()

	ctx := cmd.Context()

	classifier, err := ai.NewGeminiClassifier(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		return fmt.Errorf("init classifier: %w", err)
	}
	defer classifier.Close()

	db, err := infra.NewDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DB.Path, err)
	}
	store := grievance.NewStore(db)
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	prompter := console.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	svc := grievance.NewService(classifier, prompter, store, log, grievance.Options{
		KeepBlankQuestions: keepBlank,
	})

	rec, err := svc.Run(ctx)
	if err != nil {
		if errors.Is(err, grievance.ErrPersistence) && rec != nil {
			// The collected data survives the failed write; keep it in the
			// log so the session can be recovered manually.
			log.Error("session completed but record was not stored",
				zap.String("grievance", rec.Grievance),
				zap.String("category", rec.Category.Label()),
				zap.String("follow_up_responses", rec.FollowUpResponses))
			fmt.Fprintln(cmd.ErrOrStderr(), "The grievance could not be stored; the collected data has been written to the log.")
		}
		return err
	}
	return nil
}
