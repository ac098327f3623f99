package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ai-chatbot/config"
	"ai-chatbot/config/postgre"
)

// Schema for the chatbot store. Training phrases cascade with their
// intent; the conversation log is append-only and never referenced.
const schema = `
CREATE TABLE IF NOT EXISTS intents (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	responses  TEXT[] NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS training_phrases (
	id         UUID PRIMARY KEY,
	intent_id  UUID NOT NULL REFERENCES intents(id) ON DELETE CASCADE,
	phrase     TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_training_phrases_intent_id ON training_phrases(intent_id);

CREATE TABLE IF NOT EXISTS conversations (
	id               UUID PRIMARY KEY,
	user_input       TEXT NOT NULL,
	predicted_intent TEXT NOT NULL DEFAULT '',
	confidence       DOUBLE PRECISION NOT NULL DEFAULT 0,
	response_text    TEXT NOT NULL DEFAULT '',
	channel          TEXT NOT NULL DEFAULT 'http',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_conversations_created_at ON conversations(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_conversations_predicted_intent ON conversations(predicted_intent);
`

// seedIntent is one intent with its canned responses and starter phrases.
type seedIntent struct {
	name      string
	responses []string
	phrases   []string
}

var seedCorpus = []seedIntent{
	{
		name: "greet",
		responses: []string{
			"Hello! How can I help you today?",
			"Hi there! What can I do for you?",
		},
		phrases: []string{"hello", "hi there", "hey", "good morning", "good afternoon"},
	},
	{
		name: "bye",
		responses: []string{
			"Goodbye! Have a great day!",
			"See you later! Take care!",
		},
		phrases: []string{"bye", "goodbye", "see you later", "talk to you soon", "have a good day"},
	},
	{
		name: "weather",
		responses: []string{
			"I can help with weather info!",
			"Weather updates coming right up!",
		},
		phrases: []string{"what's the weather", "how's the weather today", "is it raining", "will it be sunny", "weather forecast"},
	},
	{
		name: "personal",
		responses: []string{
			"I'm a small chatbot that learns intents from training phrases stored in Postgres.",
			"I'm a trainable bot: add phrases and intents and retrain me any time.",
		},
		phrases: []string{"tell me about you", "who are you", "what's your background", "introduce yourself", "what can you do"},
	},
	{
		name: "news",
		responses: []string{
			"Here's what's happening right now.",
			"Let me check the latest headlines.",
		},
		phrases: []string{"what's in the news", "latest headlines", "any news today", "tell me the news", "news update"},
	},
	{
		name: "crypto",
		responses: []string{
			"Checking the markets.",
			"Let me look up the current price.",
		},
		phrases: []string{"bitcoin price", "how much is bitcoin", "crypto price", "what's bitcoin worth", "crypto update"},
	},
}

func main() {
	reset := flag.Bool("reset", false, "delete existing intents and phrases before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	ctx := context.Background()
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		fmt.Println("Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, db)

	fmt.Println("Applying schema...")
	if _, err := db.ExecContext(ctx, schema); err != nil {
		fmt.Println("Failed to apply schema: ", err)
		return
	}

	if *reset {
		fmt.Println("Clearing existing training data...")
		if _, err := db.ExecContext(ctx, `DELETE FROM intents`); err != nil {
			fmt.Println("Failed to clear intents: ", err)
			return
		}
	}

	fmt.Println("Seeding corpus...")
	seeded := 0
	for _, it := range seedCorpus {
		n, err := seedOne(ctx, db, it)
		if err != nil {
			fmt.Printf("Failed to seed intent %q: %v\n", it.name, err)
			return
		}
		seeded += n
	}

	var intents, phrases int
	_ = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM intents`).Scan(&intents)
	_ = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM training_phrases`).Scan(&phrases)
	fmt.Printf("Done: %d new phrases. Store now has %d intents, %d phrases.\n", seeded, intents, phrases)
}

// seedOne inserts one intent and its phrases, skipping anything already
// present so the script is safe to re-run.
func seedOne(ctx context.Context, db *sql.DB, it seedIntent) (int, error) {
	var intentID string
	err := db.QueryRowContext(ctx, `
		INSERT INTO intents (id, name, responses)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		uuid.NewString(), it.name, pq.Array(it.responses),
	).Scan(&intentID)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, phrase := range it.phrases {
		res, err := db.ExecContext(ctx, `
			INSERT INTO training_phrases (id, intent_id, phrase)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (
				SELECT 1 FROM training_phrases WHERE intent_id = $2 AND phrase = $3
			)`,
			uuid.NewString(), intentID, phrase,
		)
		if err != nil {
			return inserted, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	return inserted, nil
}
