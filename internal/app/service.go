package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"leaderboard/internal/config"
	"leaderboard/internal/domain"
	"leaderboard/internal/github"
)

// Service runs the submit flow: fetch the remote leaderboard, merge the new
// entry, and write the result back conditioned on the version that was read.
type Service struct {
	client *github.Client
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new submission service
func NewService(client *github.Client, cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// SubmitScore commits one validated submission into the remote leaderboard
// and returns the created entry plus the current top standings.
//
// There is no retry: when two submissions race between fetch and write, the
// second write is rejected by the SHA precondition and that submission is
// lost. The returned entry is always the one constructed from the
// submission, even when it was truncated out of the capped table.
func (s *Service) SubmitScore(ctx context.Context, sub *domain.Submission) (*domain.ScoreEntry, []domain.ScoreEntry, error) {
	id := uuid.New().String()

	gh := s.cfg.GitHub
	if gh.Token == "" {
		s.logger.Error("GITHUB_TOKEN is not set", "submission", id)
		return nil, nil, domain.ErrConfiguration
	}

	file, err := s.client.GetFile(ctx, gh.Owner, gh.Repo, gh.FilePath)
	if err != nil {
		s.logger.Error("leaderboard fetch failed", "submission", id, "error", err)
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFetch, err)
	}

	var board domain.Leaderboard
	if err := json.Unmarshal(file.Content, &board); err != nil {
		s.logger.Error("leaderboard file is malformed", "submission", id, "error", err)
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFetch, err)
	}

	now := s.now()
	entry := domain.NewScoreEntry(sub, now)
	board.Add(entry, now)

	content, err := json.MarshalIndent(&board, "", "  ")
	if err != nil {
		return nil, nil, err
	}

	update := github.UpdateRequest{
		Message: fmt.Sprintf("New score: %s - %d points (Level %d)", entry.Name, entry.Score, entry.Level),
		Content: content,
		SHA:     file.SHA,
		Committer: github.Committer{
			Name:  gh.CommitterName,
			Email: gh.CommitterEmail,
		},
	}
	if err := s.client.PutFile(ctx, gh.Owner, gh.Repo, gh.FilePath, update); err != nil {
		s.logger.Error("leaderboard update failed", "submission", id, "error", err)
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrUpstreamWrite, err)
	}

	s.logger.Info("score saved",
		"submission", id,
		"name", entry.Name,
		"score", entry.Score,
		"level", entry.Level,
	)

	return &entry, board.Top(domain.TopCount), nil
}
