package dupcloser

import (
	"context"
	"fmt"

	"github.com/lerenn/dup-closer/pkg/config"
	"github.com/lerenn/dup-closer/pkg/forge"
	"github.com/lerenn/dup-closer/pkg/issue"
)

// CloseDuplicateParams contains parameters for closing an issue as a duplicate.
type CloseDuplicateParams struct {
	// Target is the issue to close.
	Target issue.Ref
	// DuplicateOf is the canonical issue the target duplicates, if any.
	DuplicateOf *issue.Ref
}

// CloseDuplicate closes the target issue as a duplicate.
//
// The sequence is strictly linear: verify the duplicate issue (when given),
// look up the target, confirm if the target is already closed, post the
// explanatory comment and finally close the target with the duplicate state
// reason. The comment is posted before the close mutation so it stays visible
// even if closing fails; no rollback is attempted in that case.
func (d *realDupCloser) CloseDuplicate(
	ctx context.Context, params CloseDuplicateParams) (*issue.CloseResult, error) {
	cfg, err := d.deps.Config.GetConfigWithFallback()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	f, err := d.deps.Forges.GetForge(cfg.Forge)
	if err != nil {
		return nil, err
	}

	// Verify the duplicate issue exists before touching the target
	if params.DuplicateOf != nil {
		dup, err := f.GetIssue(ctx, *params.DuplicateOf)
		if err != nil {
			return nil, err
		}
		d.logf("Duplicate issue #%d (%s): %s", dup.Number, dup.State, dup.Title)
	}

	target, err := f.GetIssue(ctx, params.Target)
	if err != nil {
		return nil, err
	}
	d.logf("Issue to close #%d (%s): %s", target.Number, target.State, target.Title)

	if target.State == issue.StateClosed {
		confirmed, err := d.deps.Prompt.PromptForConfirmation(
			fmt.Sprintf("Issue %s is already closed. Close again as duplicate?", params.Target), false)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			return nil, fmt.Errorf("%w: issue %s is already closed", ErrUserAborted, params.Target)
		}
	}

	comment, err := f.CreateComment(ctx, params.Target, d.commentBody(cfg, params.DuplicateOf))
	if err != nil {
		return nil, fmt.Errorf("failed to create comment on %s: %w", params.Target, err)
	}
	d.logf("Posted comment: %s", comment.URL)

	result, err := f.CloseIssue(ctx, params.Target, forge.CloseReasonDuplicate)
	if err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", params.Target, err)
	}

	return result, nil
}

// commentBody composes the explanatory comment posted on the target issue.
func (d *realDupCloser) commentBody(cfg config.Config, duplicateOf *issue.Ref) string {
	if duplicateOf != nil {
		return fmt.Sprintf("Duplicate of %s", duplicateOf)
	}
	timestamp := d.deps.Clock().UTC().Format("2006-01-02 15:04:05")
	return fmt.Sprintf("Closed as duplicate by %s on %s UTC", cfg.Actor, timestamp)
}
