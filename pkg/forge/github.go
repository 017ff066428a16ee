package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/dup-closer/pkg/issue"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// requestTimeout bounds each GitHub API call.
	requestTimeout = 10 * time.Second
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub() *GitHub {
	var client *github.Client

	// Add authentication if available
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{
		client: client,
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// GetIssue fetches a snapshot of the referenced issue from the GitHub API.
func (g *GitHub) GetIssue(ctx context.Context, ref issue.Ref) (*issue.Info, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	ghIssue, resp, err := g.client.Issues.Get(ctx, ref.Owner, ref.Repository, ref.Number)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, ref)
	}

	// A response without a node ID carries no usable issue
	if ghIssue == nil || ghIssue.GetNodeID() == "" {
		return nil, fmt.Errorf("%w: %s", ErrIssueNotFound, ref)
	}

	return &issue.Info{
		ID:     ghIssue.GetNodeID(),
		Number: ghIssue.GetNumber(),
		Title:  ghIssue.GetTitle(),
		State:  ghIssue.GetState(),
		URL:    ghIssue.GetHTMLURL(),
	}, nil
}

// CreateComment posts a comment on the referenced issue.
func (g *GitHub) CreateComment(ctx context.Context, ref issue.Ref, body string) (*issue.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	comment, resp, err := g.client.Issues.CreateComment(ctx, ref.Owner, ref.Repository, ref.Number,
		&github.IssueComment{
			Body: github.String(body),
		})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, ref)
	}

	return &issue.Comment{
		ID:  comment.GetID(),
		URL: comment.GetHTMLURL(),
	}, nil
}

// CloseIssue transitions the referenced issue to the closed state with the given state reason.
func (g *GitHub) CloseIssue(ctx context.Context, ref issue.Ref, reason string) (*issue.CloseResult, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	ghIssue, resp, err := g.client.Issues.Edit(ctx, ref.Owner, ref.Repository, ref.Number,
		&github.IssueRequest{
			State:       github.String(issue.StateClosed),
			StateReason: github.String(reason),
		})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, ref)
	}

	return &issue.CloseResult{
		Number:      ghIssue.GetNumber(),
		State:       ghIssue.GetState(),
		StateReason: ghIssue.GetStateReason(),
		URL:         ghIssue.GetHTMLURL(),
	}, nil
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, ref issue.Ref) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrIssueNotFound, ref)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			// Check if it's rate limiting
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("github API call failed for %s: %w", ref, err)
}
