package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studyaid-backend/internal/analysis"
	"studyaid-backend/internal/generator"
	"studyaid-backend/internal/models"
	"studyaid-backend/internal/repository"
	"studyaid-backend/internal/session"
)

// Publisher delivers session events to connected clients.
type Publisher interface {
	Publish(ctx context.Context, sessionID uuid.UUID, msg models.WSMessage) error
}

type StudyOptions struct {
	QuestionCount int
	MinMCQ        int
	FlashcardSeed int
}

// summaryKeywords is the size of the candidate-keyword panel shown with the summary.
const summaryKeywords = 8

// StudyService runs the analysis pipeline against stored sessions. Every
// mutation of one session is serialized; different sessions never contend.
type StudyService struct {
	store repository.SessionStore
	gen   *generator.Generator
	pub   Publisher
	log   *zap.Logger
	opts  StudyOptions
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

func NewStudyService(store repository.SessionStore, gen *generator.Generator, pub Publisher, log *zap.Logger, opts StudyOptions) *StudyService {
	return &StudyService{store: store, gen: gen, pub: pub, log: log, opts: opts}
}

func (s *StudyService) buildQuiz(doc analysis.Document) []generator.MCQItem {
	return s.gen.ExamMCQs(doc, s.opts.MinMCQ)
}

func (s *StudyService) lock(id uuid.UUID) func() {
	m, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// update loads the session, applies fn and saves the result when fn succeeds.
// A session the store no longer knows, usually one whose TTL ran out, also
// loses its mutex.
func (s *StudyService) update(ctx context.Context, id uuid.UUID, fn func(*session.State) error) (*session.State, error) {
	defer s.lock(id)()

	st, err := s.store.Get(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		s.locks.Delete(id)
	}
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StudyService) publish(ctx context.Context, id uuid.UUID, eventType string, payload interface{}) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, id, models.WSMessage{Type: eventType, Payload: payload}); err != nil {
		s.log.Warn("failed to publish session event",
			zap.String("session_id", id.String()), zap.String("type", eventType), zap.Error(err))
	}
}

// CreateSession starts an empty session.
func (s *StudyService) CreateSession(ctx context.Context) (*session.State, error) {
	st := session.New(uuid.New())
	if err := s.store.Save(ctx, st); err != nil {
		return nil, err
	}
	s.log.Info("session created", zap.String("session_id", st.ID.String()))
	return st, nil
}

// Session returns the current snapshot.
func (s *StudyService) Session(ctx context.Context, id uuid.UUID) (*session.State, error) {
	return s.store.Get(ctx, id)
}

// EndSession discards the session.
func (s *StudyService) EndSession(ctx context.Context, id uuid.UUID) error {
	defer s.locks.Delete(id)
	defer s.lock(id)()
	return s.store.Delete(ctx, id)
}

// SetContent loads new notes. The returned flag reports whether the
// normalized text changed and the session was reset.
func (s *StudyService) SetContent(ctx context.Context, id uuid.UUID, raw, source string) (*session.State, bool, error) {
	var reset bool
	st, err := s.update(ctx, id, func(st *session.State) error {
		reset = st.ApplyContent(raw, source, s.opts.FlashcardSeed, s.buildQuiz)
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if reset {
		s.log.Info("session content replaced",
			zap.String("session_id", id.String()),
			zap.String("source", source),
			zap.Int("chars", len(st.Content)),
			zap.Int("mcqs", len(st.MCQs)))
		s.publish(ctx, id, models.EventContentUpdated, models.ContentUpdatedEvent{
			SessionID: id, Source: source, Reset: true, Questions: len(st.MCQs),
		})
	}
	return st, reset, nil
}

// Summary returns the summary paragraph, insight and top candidate keywords.
func (s *StudyService) Summary(ctx context.Context, id uuid.UUID) (generator.Summary, []string, error) {
	st, err := s.store.Get(ctx, id)
	if err != nil {
		return generator.Summary{}, nil, err
	}
	doc := st.Document()
	return generator.Summarize(doc), analysis.CandidateTerms(doc.Text, summaryKeywords), nil
}

// Questions returns the open exam questions for the current content.
func (s *StudyService) Questions(ctx context.Context, id uuid.UUID) (generator.QuestionSet, error) {
	st, err := s.store.Get(ctx, id)
	if err != nil {
		return generator.QuestionSet{}, err
	}
	return generator.Questions(st.Document(), s.opts.QuestionCount), nil
}

// Quiz returns the session with its cached quiz, building it first if the
// content has none yet. A built quiz is never reshuffled.
func (s *StudyService) Quiz(ctx context.Context, id uuid.UUID) (*session.State, error) {
	return s.update(ctx, id, func(st *session.State) error {
		st.EnsureQuiz(s.buildQuiz)
		return nil
	})
}

func (s *StudyService) SelectAnswer(ctx context.Context, id uuid.UUID, index int, option string) (*session.State, error) {
	return s.update(ctx, id, func(st *session.State) error {
		return st.Select(index, option)
	})
}

func (s *StudyService) ClearAnswer(ctx context.Context, id uuid.UUID, index int) (*session.State, error) {
	return s.update(ctx, id, func(st *session.State) error {
		return st.ClearSelection(index)
	})
}

// SubmitQuiz grades the current selections.
func (s *StudyService) SubmitQuiz(ctx context.Context, id uuid.UUID) (session.Result, error) {
	var res session.Result
	_, err := s.update(ctx, id, func(st *session.State) error {
		var err error
		res, err = st.Submit()
		return err
	})
	if err != nil {
		return session.Result{}, err
	}

	s.log.Info("quiz submitted",
		zap.String("session_id", id.String()), zap.Int("score", res.Score), zap.Int("total", res.Total))
	s.publish(ctx, id, models.EventQuizSubmitted, models.QuizSubmittedEvent{
		SessionID: id, Score: res.Score, Total: res.Total,
	})
	return res, nil
}

// ResetQuiz clears selections and the submitted flag, keeping the questions.
func (s *StudyService) ResetQuiz(ctx context.Context, id uuid.UUID) (*session.State, error) {
	st, err := s.update(ctx, id, func(st *session.State) error {
		st.ResetQuiz()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, id, models.EventQuizUpdated, models.QuizUpdatedEvent{SessionID: id, Questions: len(st.MCQs)})
	return st, nil
}

// Flashcards lists the deck. An emptied deck is reseeded while content is loaded.
func (s *StudyService) Flashcards(ctx context.Context, id uuid.UUID) ([]session.Flashcard, error) {
	st, err := s.update(ctx, id, func(st *session.State) error {
		if st.HasContent() && st.Flashcards.Len() == 0 {
			st.Flashcards.Reset(s.opts.FlashcardSeed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st.Flashcards.List(), nil
}

// editCards applies fn to the deck and announces the change.
func (s *StudyService) editCards(ctx context.Context, id uuid.UUID, fn func(*session.FlashcardStore) error) ([]session.Flashcard, error) {
	st, err := s.update(ctx, id, func(st *session.State) error {
		return fn(&st.Flashcards)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, id, models.EventFlashcardsChanged, models.FlashcardsChangedEvent{
		SessionID: id, Count: st.Flashcards.Len(),
	})
	return st.Flashcards.List(), nil
}

func (s *StudyService) AddFlashcard(ctx context.Context, id uuid.UUID) ([]session.Flashcard, error) {
	return s.editCards(ctx, id, func(fs *session.FlashcardStore) error {
		fs.Add()
		return nil
	})
}

func (s *StudyService) UpdateFlashcard(ctx context.Context, id uuid.UUID, index int, term, definition, note string) ([]session.Flashcard, error) {
	return s.editCards(ctx, id, func(fs *session.FlashcardStore) error {
		_, err := fs.Update(index, term, definition, note)
		return err
	})
}

func (s *StudyService) DeleteFlashcard(ctx context.Context, id uuid.UUID, index int) ([]session.Flashcard, error) {
	return s.editCards(ctx, id, func(fs *session.FlashcardStore) error {
		return fs.Delete(index)
	})
}

func (s *StudyService) MarkReviewed(ctx context.Context, id uuid.UUID, index int) ([]session.Flashcard, error) {
	return s.editCards(ctx, id, func(fs *session.FlashcardStore) error {
		_, err := fs.MarkReviewed(index)
		return err
	})
}

func (s *StudyService) ResetFlashcards(ctx context.Context, id uuid.UUID) ([]session.Flashcard, error) {
	return s.editCards(ctx, id, func(fs *session.FlashcardStore) error {
		fs.Reset(s.opts.FlashcardSeed)
		return nil
	})
}
