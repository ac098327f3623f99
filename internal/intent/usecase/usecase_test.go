package usecase

import (
	"context"
	"errors"
	"testing"

	"ai-chatbot/internal/intent"
	repo "ai-chatbot/internal/intent/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// Mock repository with overridable functions
type mockRepo struct {
	createIntentFunc func(opt repo.CreateIntentOptions) (intent.Intent, error)
	getOneIntentFunc func(opt repo.GetOneIntentOptions) (intent.Intent, error)
	listIntentsFunc  func() ([]intent.Intent, error)
	updateIntentFunc func(opt repo.UpdateIntentOptions) (intent.Intent, error)
	deleteIntentFunc func(id string) error
	createPhraseFunc func(opt repo.CreatePhraseOptions) (intent.TrainingPhrase, error)
	listPhrasesFunc  func(opt repo.ListPhrasesOptions) ([]intent.TrainingPhrase, error)
	deletePhraseFunc func(id string) error
}

func (m *mockRepo) CreateIntent(ctx context.Context, opt repo.CreateIntentOptions) (intent.Intent, error) {
	if m.createIntentFunc != nil {
		return m.createIntentFunc(opt)
	}
	return intent.Intent{ID: "intent-1", Name: opt.Name, Responses: opt.Responses}, nil
}

func (m *mockRepo) GetOneIntent(ctx context.Context, opt repo.GetOneIntentOptions) (intent.Intent, error) {
	if m.getOneIntentFunc != nil {
		return m.getOneIntentFunc(opt)
	}
	return intent.Intent{}, nil
}

func (m *mockRepo) ListIntents(ctx context.Context) ([]intent.Intent, error) {
	if m.listIntentsFunc != nil {
		return m.listIntentsFunc()
	}
	return nil, nil
}

func (m *mockRepo) UpdateIntent(ctx context.Context, opt repo.UpdateIntentOptions) (intent.Intent, error) {
	if m.updateIntentFunc != nil {
		return m.updateIntentFunc(opt)
	}
	return intent.Intent{ID: opt.ID, Name: opt.Name, Responses: opt.Responses}, nil
}

func (m *mockRepo) DeleteIntent(ctx context.Context, id string) error {
	if m.deleteIntentFunc != nil {
		return m.deleteIntentFunc(id)
	}
	return nil
}

func (m *mockRepo) CreatePhrase(ctx context.Context, opt repo.CreatePhraseOptions) (intent.TrainingPhrase, error) {
	if m.createPhraseFunc != nil {
		return m.createPhraseFunc(opt)
	}
	return intent.TrainingPhrase{ID: "phrase-1", IntentID: opt.IntentID, Phrase: opt.Phrase}, nil
}

func (m *mockRepo) ListPhrases(ctx context.Context, opt repo.ListPhrasesOptions) ([]intent.TrainingPhrase, error) {
	if m.listPhrasesFunc != nil {
		return m.listPhrasesFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) DeletePhrase(ctx context.Context, id string) error {
	if m.deletePhraseFunc != nil {
		return m.deletePhraseFunc(id)
	}
	return nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success With Phrases", func(t *testing.T) {
		var phrases []string
		r := &mockRepo{
			createPhraseFunc: func(opt repo.CreatePhraseOptions) (intent.TrainingPhrase, error) {
				phrases = append(phrases, opt.Phrase)
				return intent.TrainingPhrase{ID: "p", IntentID: opt.IntentID, Phrase: opt.Phrase}, nil
			},
		}
		uc := New(r, &mockLogger{})

		out, err := uc.Create(ctx, intent.CreateIntentInput{
			Name:      "greet",
			Responses: []string{"Hello!"},
			Phrases:   []string{"hi", "hello", "  "},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent.Name != "greet" {
			t.Errorf("unexpected intent: %+v", out.Intent)
		}
		if len(phrases) != 2 {
			t.Errorf("expected 2 phrases persisted (blank skipped), got %d", len(phrases))
		}
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		r := &mockRepo{
			getOneIntentFunc: func(opt repo.GetOneIntentOptions) (intent.Intent, error) {
				return intent.Intent{ID: "existing", Name: opt.Name}, nil
			},
		}
		uc := New(r, &mockLogger{})

		_, err := uc.Create(ctx, intent.CreateIntentInput{Name: "greet", Responses: []string{"Hello!"}})
		if !errors.Is(err, intent.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("Missing Responses", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.Create(ctx, intent.CreateIntentInput{Name: "greet"})
		if !errors.Is(err, intent.ErrInvalidPayload) {
			t.Errorf("expected ErrInvalidPayload, got %v", err)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		_, err := uc.Detail(ctx, "nope")
		if !errors.Is(err, intent.ErrIntentNotFound) {
			t.Errorf("expected ErrIntentNotFound, got %v", err)
		}
	})

	t.Run("Found With Phrases", func(t *testing.T) {
		r := &mockRepo{
			getOneIntentFunc: func(opt repo.GetOneIntentOptions) (intent.Intent, error) {
				return intent.Intent{ID: opt.ID, Name: "greet", Responses: []string{"Hello!"}}, nil
			},
			listPhrasesFunc: func(opt repo.ListPhrasesOptions) ([]intent.TrainingPhrase, error) {
				return []intent.TrainingPhrase{{ID: "p1", IntentID: opt.IntentID, Phrase: "hi"}}, nil
			},
		}
		uc := New(r, &mockLogger{})

		out, err := uc.Detail(ctx, "intent-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Phrases) != 1 || out.Phrases[0].Phrase != "hi" {
			t.Errorf("unexpected phrases: %+v", out.Phrases)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Rename To Existing Name", func(t *testing.T) {
		r := &mockRepo{
			getOneIntentFunc: func(opt repo.GetOneIntentOptions) (intent.Intent, error) {
				if opt.ID != "" {
					return intent.Intent{ID: opt.ID, Name: "greet"}, nil
				}
				return intent.Intent{ID: "other", Name: opt.Name}, nil
			},
		}
		uc := New(r, &mockLogger{})

		_, err := uc.Update(ctx, intent.UpdateIntentInput{ID: "intent-1", Name: "bye"})
		if !errors.Is(err, intent.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("Partial Update Keeps Existing Fields", func(t *testing.T) {
		r := &mockRepo{
			getOneIntentFunc: func(opt repo.GetOneIntentOptions) (intent.Intent, error) {
				if opt.ID != "" {
					return intent.Intent{ID: opt.ID, Name: "greet", Responses: []string{"Hello!"}}, nil
				}
				return intent.Intent{}, nil
			},
		}
		uc := New(r, &mockLogger{})

		out, err := uc.Update(ctx, intent.UpdateIntentInput{ID: "intent-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent.Name != "greet" || len(out.Intent.Responses) != 1 {
			t.Errorf("existing fields lost: %+v", out.Intent)
		}
	})
}

func TestDeletePhrase(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		r := &mockRepo{
			deletePhraseFunc: func(id string) error { return repo.ErrNotFound },
		}
		uc := New(r, &mockLogger{})

		err := uc.DeletePhrase(ctx, "missing")
		if !errors.Is(err, intent.ErrPhraseNotFound) {
			t.Errorf("expected ErrPhraseNotFound, got %v", err)
		}
	})

	t.Run("Success", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockLogger{})
		if err := uc.DeletePhrase(ctx, "phrase-1"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestLoadCorpus(t *testing.T) {
	ctx := context.Background()

	t.Run("Store Failure Surfaces ErrStoreUnavailable", func(t *testing.T) {
		r := &mockRepo{
			listPhrasesFunc: func(opt repo.ListPhrasesOptions) ([]intent.TrainingPhrase, error) {
				return nil, errors.New("connection refused")
			},
		}
		uc := New(r, &mockLogger{})

		_, err := uc.LoadCorpus(ctx)
		if !errors.Is(err, intent.ErrStoreUnavailable) {
			t.Errorf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("Maps Phrases To Examples", func(t *testing.T) {
		r := &mockRepo{
			listPhrasesFunc: func(opt repo.ListPhrasesOptions) ([]intent.TrainingPhrase, error) {
				return []intent.TrainingPhrase{
					{IntentName: "bye", Phrase: "goodbye"},
					{IntentName: "greet", Phrase: "hi"},
				}, nil
			},
		}
		uc := New(r, &mockLogger{})

		corpus, err := uc.LoadCorpus(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(corpus) != 2 || corpus[0].Intent != "bye" || corpus[1].Phrase != "hi" {
			t.Errorf("unexpected corpus: %+v", corpus)
		}
	})
}

func TestResponseTable(t *testing.T) {
	ctx := context.Background()

	r := &mockRepo{
		listIntentsFunc: func() ([]intent.Intent, error) {
			return []intent.Intent{
				{ID: "1", Name: "greet", Responses: []string{"Hello!", "Hi there!"}},
				{ID: "2", Name: "bye", Responses: []string{"Goodbye!"}},
			}, nil
		},
	}
	uc := New(r, &mockLogger{})

	table, err := uc.ResponseTable(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 2 || len(table["greet"]) != 2 || table["bye"][0] != "Goodbye!" {
		t.Errorf("unexpected table: %+v", table)
	}
}
