package classifier

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
)

// scenarioCorpus is the two-intent greeting/farewell corpus used across tests.
func scenarioCorpus() []TrainingExample {
	return []TrainingExample{
		{Intent: "greet", Phrase: "hi"},
		{Intent: "greet", Phrase: "hello"},
		{Intent: "greet", Phrase: "hey"},
		{Intent: "bye", Phrase: "bye"},
		{Intent: "bye", Phrase: "goodbye"},
		{Intent: "bye", Phrase: "see you"},
	}
}

func TestFitInsufficientData(t *testing.T) {
	t.Run("Empty Corpus", func(t *testing.T) {
		_, err := Fit(nil)
		if !errors.Is(err, ErrInsufficientTrainingData) {
			t.Errorf("expected ErrInsufficientTrainingData, got %v", err)
		}
	})

	t.Run("Single Intent", func(t *testing.T) {
		_, err := Fit([]TrainingExample{
			{Intent: "greet", Phrase: "hi"},
			{Intent: "greet", Phrase: "hello"},
		})
		if !errors.Is(err, ErrInsufficientTrainingData) {
			t.Errorf("expected ErrInsufficientTrainingData, got %v", err)
		}
	})
}

func TestPredictBeforeTrain(t *testing.T) {
	e := NewEngine(&mockLogger{})
	_, err := e.Predict("hello")
	if !errors.Is(err, ErrModelNotTrained) {
		t.Errorf("expected ErrModelNotTrained, got %v", err)
	}
	if e.Trained() {
		t.Error("engine must report untrained before first Train")
	}
}

func TestTrainingPhrasesReproduced(t *testing.T) {
	m, err := Fit(scenarioCorpus())
	if err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	for _, ex := range scenarioCorpus() {
		pred := m.Predict(ex.Phrase)
		if pred.Intent != ex.Intent {
			t.Errorf("phrase %q: expected intent %q, got %q (confidence %.3f)",
				ex.Phrase, ex.Intent, pred.Intent, pred.Confidence)
		}

		// the training label's posterior must be maximal
		dist := m.Posterior(ex.Phrase)
		for label, p := range dist {
			if p > dist[ex.Intent] {
				t.Errorf("phrase %q: label %q posterior %.4f exceeds own intent %.4f",
					ex.Phrase, label, p, dist[ex.Intent])
			}
		}
	}
}

func TestPosteriorIsDistribution(t *testing.T) {
	m, err := Fit(scenarioCorpus())
	if err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	for _, utterance := range []string{"hello", "see you later", "asdkj qweoiu", "", "hello goodbye"} {
		var sum float64
		for _, p := range m.Posterior(utterance) {
			if p < 0 || p > 1 {
				t.Errorf("utterance %q: posterior %v out of [0,1]", utterance, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("utterance %q: posterior sums to %v, want 1", utterance, sum)
		}

		pred := m.Predict(utterance)
		if pred.Confidence < 0 || pred.Confidence > 1 {
			t.Errorf("utterance %q: confidence %v out of [0,1]", utterance, pred.Confidence)
		}
	}
}

func TestNormalizationConsistency(t *testing.T) {
	m, err := Fit(scenarioCorpus())
	if err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	a := m.Predict("Hello")
	b := m.Predict("  HELLO  ")
	if a.Intent != b.Intent || a.Confidence != b.Confidence {
		t.Errorf("casing/whitespace changed prediction: %+v vs %+v", a, b)
	}
}

func TestDeterministicFit(t *testing.T) {
	m1, err := Fit(scenarioCorpus())
	if err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}
	m2, err := Fit(scenarioCorpus())
	if err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	for _, utterance := range []string{"hello there", "bye bye", "asdkj qweoiu", "hey hey hey"} {
		p1, p2 := m1.Predict(utterance), m2.Predict(utterance)
		if p1 != p2 {
			t.Errorf("utterance %q: fits disagree: %+v vs %+v", utterance, p1, p2)
		}
	}
}

func TestScenarioGreetBye(t *testing.T) {
	m, err := Fit(scenarioCorpus())
	if err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	t.Run("Known Vocabulary", func(t *testing.T) {
		pred := m.Predict("hello there")
		if pred.Intent != "greet" {
			t.Errorf("expected intent greet, got %q", pred.Intent)
		}
		if pred.Confidence <= 0.5 {
			t.Errorf("expected confidence > 0.5, got %.4f", pred.Confidence)
		}
	})

	t.Run("No Vocabulary Overlap Falls Back", func(t *testing.T) {
		pred := m.Predict("asdkj qweoiu")
		// prior-only posterior over two balanced classes: exactly 0.5
		if pred.Confidence > 0.5 {
			t.Errorf("expected low confidence, got %.4f", pred.Confidence)
		}

		r := NewResponder(0.5, "I'm not sure how to help with that.", 1)
		r.SetResponses(map[string][]string{
			"greet": {"Hello! How can I help you today?"},
			"bye":   {"Goodbye! Have a great day!"},
		})
		reply, err := r.Respond(pred.Intent, pred.Confidence)
		if err != nil {
			t.Fatalf("unexpected respond error: %v", err)
		}
		if reply != r.Fallback() {
			t.Errorf("expected fallback text, got %q", reply)
		}
	})
}

func TestTieBreakLexicographic(t *testing.T) {
	m, err := Fit(scenarioCorpus())
	if err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	// zero-overlap input: both intents share the maximal (prior) posterior,
	// so the lexicographically-first label must win deterministically
	for i := 0; i < 10; i++ {
		pred := m.Predict("asdkj qweoiu")
		if pred.Intent != "bye" {
			t.Fatalf("tie-break not deterministic: got %q, want bye", pred.Intent)
		}
	}
}

func TestEngineRetrainSwapsModel(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(&mockLogger{})

	if err := e.Train(ctx, scenarioCorpus()); err != nil {
		t.Fatalf("unexpected train error: %v", err)
	}
	pred, err := e.Predict("hello")
	if err != nil || pred.Intent != "greet" {
		t.Fatalf("expected greet, got %+v err %v", pred, err)
	}

	// retrain with a disjoint corpus: old labels are gone wholesale
	if err := e.Train(ctx, []TrainingExample{
		{Intent: "weather", Phrase: "weather forecast"},
		{Intent: "crypto", Phrase: "bitcoin price"},
	}); err != nil {
		t.Fatalf("unexpected retrain error: %v", err)
	}
	pred, err = e.Predict("weather forecast")
	if err != nil || pred.Intent != "weather" {
		t.Fatalf("expected weather after retrain, got %+v err %v", pred, err)
	}
}

func TestTrainFailureKeepsServingModel(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(&mockLogger{})

	if err := e.Train(ctx, scenarioCorpus()); err != nil {
		t.Fatalf("unexpected train error: %v", err)
	}

	// a bad retrain must not corrupt or clear the serving model
	if err := e.Train(ctx, []TrainingExample{{Intent: "only", Phrase: "one"}}); err == nil {
		t.Fatal("expected retrain to fail on single-intent corpus")
	}

	pred, err := e.Predict("hello")
	if err != nil {
		t.Fatalf("prior model lost after failed retrain: %v", err)
	}
	if pred.Intent != "greet" {
		t.Errorf("prior model corrupted: got %q", pred.Intent)
	}
}

func TestConcurrentPredictDuringTrain(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(&mockLogger{})
	if err := e.Train(ctx, scenarioCorpus()); err != nil {
		t.Fatalf("unexpected train error: %v", err)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				pred, err := e.Predict("hello")
				if err != nil {
					t.Errorf("predict failed during retrain: %v", err)
					return
				}
				if pred.Confidence < 0 || pred.Confidence > 1 {
					t.Errorf("torn model read: confidence %v", pred.Confidence)
					return
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		if err := e.Train(ctx, scenarioCorpus()); err != nil {
			t.Errorf("retrain failed: %v", err)
		}
	}
	close(stop)
	wg.Wait()
}
