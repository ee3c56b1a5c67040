// README: Intake state machine; one linear session with a single goods/standard branch.
package grievance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Classifier is the gateway to the language-model service. All four calls are
// synchronous and may fail; the state machine never retries them.
type Classifier interface {
	ClassifyCategory(ctx context.Context, text string) (string, error)
	IdentifyDomain(ctx context.Context, text string) (string, error)
	IsGoodsRelated(ctx context.Context, text string) (bool, error)
	GenerateFollowupQuestions(ctx context.Context, text, category string) ([]string, error)
}

// Prompter is the dialogue driver: one prompt out, one line of free text back.
// The state machine does no input validation beyond trimming where noted.
type Prompter interface {
	Ask(prompt string) (string, error)
	Say(format string, args ...any)
}

type RecordStore interface {
	Persist(ctx context.Context, r *Record) error
}

var (
	// ErrClassifier marks a classifier call that could not be completed.
	// Nothing is persisted once it occurs.
	ErrClassifier = errors.New("classifier failure")
	// ErrPersistence marks a failed store write. The assembled record is
	// still returned to the caller alongside it.
	ErrPersistence = errors.New("grievance not persisted")
)

type Options struct {
	// KeepBlankQuestions preserves blank lines in generated follow-up
	// output as blank questions, keeping question/answer pairing stable.
	// Disable to drop them before the Q/A loop.
	KeepBlankQuestions bool
}

type Service struct {
	classifier Classifier
	prompter   Prompter
	store      RecordStore
	log        *zap.Logger
	opts       Options
}

func NewService(classifier Classifier, prompter Prompter, store RecordStore, log *zap.Logger, opts Options) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{classifier: classifier, prompter: prompter, store: store, log: log, opts: opts}
}

const followUpSeparator = "; "

// Run drives one complete session: Start -> GoodsCheck -> {GoodsPath |
// StandardPath} -> Terminal. No state is revisited. On a persistence failure
// the assembled record is returned together with the error so the caller can
// report it without losing the collected data.
func (s *Service) Run(ctx context.Context) (*Record, error) {
	text, err := s.prompter.Ask("Please describe your grievance: ")
	if err != nil {
		return nil, err
	}

	rec := &Record{Grievance: text}

	goods, err := s.classifier.IsGoodsRelated(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("goods check: %w: %w", ErrClassifier, err)
	}
	s.log.Info("goods check complete", zap.Bool("goods_related", goods))

	if goods {
		if err := s.runGoodsPath(rec); err != nil {
			return nil, err
		}
	} else {
		if err := s.runStandardPath(ctx, rec); err != nil {
			return nil, err
		}
	}

	s.summarize(rec)

	if err := s.store.Persist(ctx, rec); err != nil {
		s.log.Error("persist failed", zap.Error(err), zap.String("category", rec.Category.Label()))
		return rec, fmt.Errorf("store grievance: %w: %w", ErrPersistence, err)
	}
	s.prompter.Say("Grievance data successfully stored in the database.")
	s.log.Info("grievance stored",
		zap.Int64("id", rec.ID),
		zap.String("category", rec.Category.Label()),
		zap.Bool("category_known", rec.Category.Known()))
	return rec, nil
}

// runGoodsPath collects only the free-text description; no domain, PNR, date,
// or time. The description is stored verbatim.
func (s *Service) runGoodsPath(rec *Record) error {
	desc, err := s.prompter.Ask("Please provide a detailed description of the issue with the goods: ")
	if err != nil {
		return err
	}
	rec.Category = ParseCategory(CategoryGoodsRelated)
	rec.FollowUpResponses = desc
	s.prompter.Say("\nThank you for providing the information about the goods-related grievance.")
	return nil
}

func (s *Service) runStandardPath(ctx context.Context, rec *Record) error {
	label, err := s.classifier.ClassifyCategory(ctx, rec.Grievance)
	if err != nil {
		return fmt.Errorf("classify category: %w: %w", ErrClassifier, err)
	}
	rec.Category = ParseCategory(label)
	s.prompter.Say("Grievance classified under: %s", rec.Category.Label())
	if !rec.Category.Known() {
		// Stored verbatim anyway; flagged for operators only.
		s.log.Warn("category outside known list", zap.String("category", rec.Category.Label()))
	}

	domainLabel, err := s.classifier.IdentifyDomain(ctx, rec.Grievance)
	if err != nil {
		return fmt.Errorf("identify domain: %w: %w", ErrClassifier, err)
	}
	rec.TrainOrStation = ParseDomain(domainLabel)
	s.prompter.Say("Grievance related to: %s", rec.TrainOrStation.Label())

	if rec.TrainOrStation.IsTrain() {
		pnr, err := s.prompter.Ask("Please provide your PNR number (if available): ")
		if err != nil {
			return err
		}
		rec.PNR = &pnr
	}

	date, err := s.prompter.Ask("Please provide the date of the incident (DD-MM-YYYY): ")
	if err != nil {
		return err
	}
	rec.Date = &date

	tm, err := s.prompter.Ask("Please provide the time of the incident (HH:MM): ")
	if err != nil {
		return err
	}
	rec.Time = &tm

	questions, err := s.classifier.GenerateFollowupQuestions(ctx, rec.Grievance, rec.Category.Label())
	if err != nil {
		return fmt.Errorf("generate follow-up questions: %w: %w", ErrClassifier, err)
	}
	if !s.opts.KeepBlankQuestions {
		questions = dropBlank(questions)
	}
	if len(questions) == 0 {
		return fmt.Errorf("generate follow-up questions: %w: no questions produced", ErrClassifier)
	}

	pairs := make([]string, 0, len(questions))
	for _, q := range questions {
		s.prompter.Say("%s", q)
		answer, err := s.prompter.Ask("Your response: ")
		if err != nil {
			return err
		}
		pairs = append(pairs, strings.TrimSpace(q)+": "+strings.TrimSpace(answer))
	}
	rec.FollowUpResponses = strings.Join(pairs, followUpSeparator)
	return nil
}

// summarize emits every collected field except follow_up_responses, then
// follow_up_responses on its own line.
func (s *Service) summarize(rec *Record) {
	s.prompter.Say("\nThank you! Here's the information collected:")
	s.prompter.Say("Grievance: %s", rec.Grievance)
	s.prompter.Say("Category: %s", rec.Category.Label())
	if rec.TrainOrStation.Label() != "" {
		s.prompter.Say("Train or station: %s", rec.TrainOrStation.Label())
	}
	if rec.PNR != nil {
		s.prompter.Say("PNR: %s", *rec.PNR)
	}
	if rec.Date != nil {
		s.prompter.Say("Date: %s", *rec.Date)
	}
	if rec.Time != nil {
		s.prompter.Say("Time: %s", *rec.Time)
	}
	s.prompter.Say("Follow-up responses: %s", rec.FollowUpResponses)
}

func dropBlank(questions []string) []string {
	kept := questions[:0:0]
	for _, q := range questions {
		if strings.TrimSpace(q) != "" {
			kept = append(kept, q)
		}
	}
	return kept
}
