// Command seed populates the database with a small set of demo users,
// debate topics, arguments, comments and votes. It goes through the real
// service layer so every counter and score is produced by the same code
// paths the API uses.
//
// Usage:
//
//	seed
//
// Requires DATABASE_DSN environment variable to be set. Existing users are
// reused on re-run; topics and their content are created fresh each time.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/dukedan/consensus-backend/internal/adapter/postgres"
	argumentrepo "github.com/dukedan/consensus-backend/internal/adapter/postgres/argument"
	commentrepo "github.com/dukedan/consensus-backend/internal/adapter/postgres/comment"
	topicrepo "github.com/dukedan/consensus-backend/internal/adapter/postgres/topic"
	userrepo "github.com/dukedan/consensus-backend/internal/adapter/postgres/user"
	voterepo "github.com/dukedan/consensus-backend/internal/adapter/postgres/vote"
	"github.com/dukedan/consensus-backend/internal/domain"
	"github.com/dukedan/consensus-backend/internal/notify"
	"github.com/dukedan/consensus-backend/internal/service/debate"
	"github.com/dukedan/consensus-backend/pkg/ctxutil"
)

const demoPassword = "password123"

type seedUser struct {
	key   string
	name  string
	email string
}

type seedArgument struct {
	side       domain.ArgumentSide
	body       string
	author     string
	upvoters   []string
	downvoters []string
}

type seedComment struct {
	argIndex int
	body     string
	author   string
}

type seedTopic struct {
	title       string
	description string
	tags        []string
	author      string
	upvoters    []string
	downvoters  []string
	arguments   []seedArgument
	comments    []seedComment
}

var users = []seedUser{
	{"alice", "Alice Johnson", "alice@example.com"},
	{"bob", "Bob Smith", "bob@example.com"},
	{"charlie", "Charlie Patel", "charlie@example.com"},
	{"diana", "Diana Evans", "diana@example.com"},
	{"evan", "Evan Li", "evan@example.com"},
	{"farah", "Farah Khan", "farah@example.com"},
}

var topics = []seedTopic{
	{
		title:       "Should the UK hold a second referendum on Brexit?",
		description: "Evaluate whether public opinion and economic outcomes justify revisiting the 2016 decision.",
		tags:        []string{"UK", "Brexit", "Referendum", "Politics"},
		author:      "alice",
		upvoters:    []string{"bob", "charlie", "diana"},
		downvoters:  []string{"evan", "farah"},
		arguments: []seedArgument{
			{
				side:       domain.SidePro,
				body:       "Public opinion and economic data have shifted since 2016. A second vote would provide democratic legitimacy given new information and post-Brexit realities.",
				author:     "diana",
				upvoters:   []string{"alice", "charlie", "evan"},
				downvoters: []string{"bob"},
			},
			{
				side:       domain.SideCon,
				body:       "Re-running a national vote undermines democratic finality and risks deepening polarisation. Focus should be on making existing arrangements work better.",
				author:     "bob",
				upvoters:   []string{"evan", "farah"},
				downvoters: []string{"diana"},
			},
		},
		comments: []seedComment{
			{0, "Agree that circumstances changed, supply chains and trade frictions are clearer now.", "charlie"},
			{1, "Democratic trust matters; moving on could help restore stability.", "farah"},
		},
	},
	{
		title:       "Should governments require licenses to train large AI models?",
		description: "Consider innovation, safety, and competition implications of licensing regimes.",
		tags:        []string{"AI", "Regulation", "Technology Policy"},
		author:      "charlie",
		upvoters:    []string{"alice", "bob", "diana", "farah"},
		downvoters:  []string{"evan"},
		arguments: []seedArgument{
			{
				side:       domain.SidePro,
				body:       "Licensing large-scale training can set safety baselines, ensure compute disclosures, and mitigate catastrophic misuse while preserving research carve-outs.",
				author:     "farah",
				upvoters:   []string{"alice", "bob", "diana"},
				downvoters: []string{"charlie"},
			},
			{
				side:       domain.SideCon,
				body:       "Licensing risks regulatory capture, burdens startups, and pushes development offshore. Better to enforce targeted, outcome-based rules.",
				author:     "charlie",
				upvoters:   []string{"evan", "bob"},
				downvoters: []string{"farah"},
			},
		},
		comments: []seedComment{
			{0, "Could small labs be exempted below a compute threshold?", "evan"},
		},
	},
	{
		title:       "Would a Universal Basic Income be beneficial overall?",
		description: "Assess macroeconomic effects, incentives, poverty reduction, and fiscal trade-offs.",
		tags:        []string{"Economics", "Welfare", "Policy"},
		author:      "diana",
		upvoters:    []string{"alice", "evan"},
		downvoters:  []string{"bob"},
		arguments: []seedArgument{
			{
				side:       domain.SidePro,
				body:       "A UBI reduces poverty, simplifies welfare, and strengthens bargaining power for low-income workers without bureaucracy-heavy means testing.",
				author:     "alice",
				upvoters:   []string{"diana", "farah"},
				downvoters: nil,
			},
			{
				side:       domain.SideCon,
				body:       "It is fiscally heavy and may dampen labour participation. Targeted transfers and earned income supports are more cost-effective.",
				author:     "evan",
				upvoters:   []string{"bob"},
				downvoters: []string{"alice"},
			},
		},
		comments: []seedComment{
			{1, "Curious what tax changes would fund it sustainably.", "bob"},
		},
	},
	{
		title:       "Should nuclear power be expanded to meet climate goals?",
		description: "Balance reliability and emissions reductions against cost, timeline, and waste risks.",
		tags:        []string{"Energy", "Climate", "Nuclear"},
		author:      "farah",
		upvoters:    []string{"bob", "charlie"},
		downvoters:  []string{"diana"},
		arguments: []seedArgument{
			{
				side:       domain.SidePro,
				body:       "Nuclear provides firm, low-carbon power at scale, complementing renewables and enhancing grid reliability during the transition.",
				author:     "bob",
				upvoters:   []string{"alice", "charlie", "farah"},
				downvoters: nil,
			},
			{
				side:       domain.SideCon,
				body:       "High capital costs, long build times, and waste risks argue for faster-to-deploy options like wind, solar, storage, and efficiency.",
				author:     "diana",
				upvoters:   []string{"evan"},
				downvoters: []string{"bob"},
			},
		},
	},
}

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	if err := seed(ctx, pool, logger); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func seed(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	usersRepo := userrepo.New(pool)
	svc := debate.NewService(
		logger,
		topicrepo.New(pool),
		argumentrepo.New(pool),
		commentrepo.New(pool),
		usersRepo,
		voterepo.New(pool),
		postgres.NewTxManager(pool),
		notify.NewLogSink(logger),
	)

	userIDs, err := seedUsers(ctx, usersRepo)
	if err != nil {
		return err
	}

	asUser := func(key string) context.Context {
		return ctxutil.WithUserID(ctx, userIDs[key])
	}

	for _, t := range topics {
		desc := t.description
		topic, err := svc.CreateTopic(asUser(t.author), debate.CreateTopicInput{
			Title:       t.title,
			Description: &desc,
			Tags:        t.tags,
		})
		if err != nil {
			return fmt.Errorf("create topic %q: %w", t.title, err)
		}

		if err := applyVotes(svc, asUser, domain.VoteTargetTopic, topic.ID, t.upvoters, t.downvoters); err != nil {
			return err
		}

		argIDs := make([]uuid.UUID, 0, len(t.arguments))
		for _, a := range t.arguments {
			arg, err := svc.CreateArgument(asUser(a.author), debate.CreateArgumentInput{
				TopicID: topic.ID,
				Side:    a.side,
				Body:    a.body,
			})
			if err != nil {
				return fmt.Errorf("create argument on %q: %w", t.title, err)
			}
			argIDs = append(argIDs, arg.ID)

			if err := applyVotes(svc, asUser, domain.VoteTargetArgument, arg.ID, a.upvoters, a.downvoters); err != nil {
				return err
			}
		}

		for _, c := range t.comments {
			if _, err := svc.CreateComment(asUser(c.author), debate.CreateCommentInput{
				ArgumentID: argIDs[c.argIndex],
				Body:       c.body,
			}); err != nil {
				return fmt.Errorf("create comment on %q: %w", t.title, err)
			}
		}

		fmt.Printf("seeded topic %q (%s)\n", topic.Title, topic.ID)
	}

	return nil
}

// seedUsers inserts the demo users, reusing any that already exist so the
// command can be re-run against a populated database.
func seedUsers(ctx context.Context, repo *userrepo.Repo) (map[string]uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	ids := make(map[string]uuid.UUID, len(users))
	for _, u := range users {
		created, err := repo.Create(ctx, &domain.User{
			Email:        u.email,
			Name:         u.name,
			PasswordHash: string(hash),
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			existing, err := repo.GetByEmail(ctx, u.email)
			if err != nil {
				return nil, fmt.Errorf("load existing user %s: %w", u.email, err)
			}
			ids[u.key] = existing.ID
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create user %s: %w", u.email, err)
		}
		ids[u.key] = created.ID
	}
	return ids, nil
}

func applyVotes(
	svc *debate.Service,
	asUser func(string) context.Context,
	target domain.VoteTarget,
	targetID uuid.UUID,
	upvoters, downvoters []string,
) error {
	for _, key := range upvoters {
		if _, err := svc.ApplyVote(asUser(key), debate.ApplyVoteInput{
			TargetType: target,
			TargetID:   targetID,
			Value:      domain.VoteUp,
		}); err != nil {
			return fmt.Errorf("upvote %s %s by %s: %w", target, targetID, key, err)
		}
	}
	for _, key := range downvoters {
		if _, err := svc.ApplyVote(asUser(key), debate.ApplyVoteInput{
			TargetType: target,
			TargetID:   targetID,
			Value:      domain.VoteDown,
		}); err != nil {
			return fmt.Errorf("downvote %s %s by %s: %w", target, targetID, key, err)
		}
	}
	return nil
}
