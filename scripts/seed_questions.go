package main

import (
	"context"
	"log"

	"github.com/interview-coach-team/interview-coach/internal/adapter/repository"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
	"github.com/interview-coach-team/interview-coach/internal/infrastructure/database"
	"github.com/interview-coach-team/interview-coach/pkg/config"
)

type seedQuestion struct {
	Prompt        string
	ReferenceText string
	Keywords      []string
	Category      string
	Difficulty    string
}

func seedQuestions() []seedQuestion {
	return []seedQuestion{
		{
			Prompt: "Tell me about a time you had to debug a production incident under pressure.",
			ReferenceText: "In my previous role our checkout service started timing out during a sales campaign. " +
				"I was on call, so I pulled up the dashboards, narrowed the latency spike to a single database query, " +
				"and found that a recent deploy had dropped an index. I rolled the deploy back to stop the bleeding, " +
				"then restored the index and added a query plan check to the release pipeline. " +
				"As a result the incident was resolved in under forty minutes and the postmortem led to a monitoring alert on query latency.",
			Keywords:   []string{"root cause", "monitoring", "rollback", "postmortem"},
			Category:   entities.QuestionCategoryBehavioral,
			Difficulty: entities.QuestionDifficultyMedium,
		},
		{
			Prompt: "Describe a situation where you disagreed with a teammate about a technical decision.",
			ReferenceText: "A teammate wanted to rewrite our ingestion pipeline in a new framework while I thought we should " +
				"fix the existing one incrementally. Instead of arguing in the abstract, I suggested we each prototype our " +
				"approach for two days and compare throughput and operational cost with real data. " +
				"The benchmark showed the rewrite was faster but needed new infrastructure we could not support, " +
				"so we agreed on the incremental path and borrowed two ideas from the prototype. " +
				"The result was a forty percent throughput gain without any new operational burden, and we kept a good working relationship.",
			Keywords:   []string{"trade-off", "prototype", "data", "alignment"},
			Category:   entities.QuestionCategoryBehavioral,
			Difficulty: entities.QuestionDifficultyMedium,
		},
		{
			Prompt: "Tell me about a project you led from start to finish.",
			ReferenceText: "I led the migration of our reporting stack from nightly batch jobs to a streaming pipeline. " +
				"The task was to cut report latency from a day to minutes without disrupting existing consumers. " +
				"I scoped the milestones, aligned three stakeholder teams on the rollout order, and ran the old and new " +
				"pipelines in parallel with automated reconciliation until the numbers matched for two weeks. " +
				"We delivered on schedule, report latency dropped to under five minutes, and the reconciliation harness " +
				"became the template for later migrations.",
			Keywords:   []string{"scope", "milestones", "stakeholders", "delivery"},
			Category:   entities.QuestionCategoryBehavioral,
			Difficulty: entities.QuestionDifficultyHard,
		},
		{
			Prompt: "Describe a time you had to learn a new technology quickly.",
			ReferenceText: "When our team inherited a service written in a language I had never used, " +
				"I had two weeks before the first planned change was due. I started with the official tutorial, " +
				"then read the service's test suite to learn the team's idioms, and paired with the previous owner " +
				"on one small bug fix. By the deadline I shipped the planned change with tests, " +
				"and a month later I was reviewing other people's changes to the same service.",
			Keywords:   []string{"documentation", "tests", "pairing", "deadline"},
			Category:   entities.QuestionCategoryBehavioral,
			Difficulty: entities.QuestionDifficultyEasy,
		},
		{
			Prompt: "Tell me about a time you improved the performance of a system.",
			ReferenceText: "Our search endpoint was taking over two seconds at the ninety fifth percentile. " +
				"I profiled the request path and found that most of the time went to serializing a large response " +
				"we mostly threw away. I added field selection to the API, introduced a small cache for the hot queries, " +
				"and set up a benchmark that runs in CI so regressions are caught before deploy. " +
				"Latency dropped to two hundred milliseconds and the benchmark has caught two regressions since.",
			Keywords:   []string{"profiling", "bottleneck", "latency", "benchmark"},
			Category:   entities.QuestionCategoryTechnical,
			Difficulty: entities.QuestionDifficultyMedium,
		},
		{
			Prompt: "Why do you want to work in this role?",
			ReferenceText: "I enjoy building systems that people rely on every day, and this role sits exactly at that " +
				"intersection of product impact and engineering depth. In my current position I have grown most when " +
				"working close to users, and your team's focus on measurable outcomes matches how I like to work. " +
				"I am looking for a place where I can keep growing technically while owning features end to end, " +
				"and this role offers both.",
			Keywords:   []string{"motivation", "impact", "growth"},
			Category:   entities.QuestionCategoryGeneral,
			Difficulty: entities.QuestionDifficultyEasy,
		},
	}
}

func main() {
	log.Println("🚀 Seeding the question bank...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	questionRepo := repository.NewQuestionRepository(db)
	ctx := context.Background()

	seeded := 0
	for _, sq := range seedQuestions() {
		q, err := entities.NewQuestion(sq.Prompt, sq.ReferenceText, sq.Keywords)
		if err != nil {
			log.Printf("❌ Failed to build question %q: %v", sq.Prompt, err)
			continue
		}
		q.Category = sq.Category
		q.Difficulty = sq.Difficulty

		if err := questionRepo.Upsert(ctx, q); err != nil {
			log.Printf("❌ Failed to upsert question %q: %v", sq.Prompt, err)
			continue
		}
		seeded++
	}

	log.Printf("✅ Seeded %d question(s)!", seeded)
	log.Println("💡 Reseeding is safe: existing prompts are updated in place")
}
