//go:build unit

package dupcloser

import (
	"context"
	"testing"
	"time"

	"github.com/lerenn/dup-closer/pkg/config"
	configMocks "github.com/lerenn/dup-closer/pkg/config/mocks"
	"github.com/lerenn/dup-closer/pkg/dependencies"
	"github.com/lerenn/dup-closer/pkg/forge"
	forgeMocks "github.com/lerenn/dup-closer/pkg/forge/mocks"
	"github.com/lerenn/dup-closer/pkg/issue"
	"github.com/lerenn/dup-closer/pkg/logger"
	promptMocks "github.com/lerenn/dup-closer/pkg/prompt/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	targetRef    = issue.Ref{Owner: "octocat", Repository: "Hello-World", Number: 42}
	duplicateRef = issue.Ref{Owner: "octocat", Repository: "Hello-World", Number: 15}
)

type testMocks struct {
	config *configMocks.MockManager
	forges *forgeMocks.MockManagerInterface
	forge  *forgeMocks.MockForge
	prompt *promptMocks.MockPrompter
}

func newTestDupCloser(t *testing.T) (DupCloser, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := testMocks{
		config: configMocks.NewMockManager(ctrl),
		forges: forgeMocks.NewMockManagerInterface(ctrl),
		forge:  forgeMocks.NewMockForge(ctrl),
		prompt: promptMocks.NewMockPrompter(ctrl),
	}

	m.config.EXPECT().GetConfigWithFallback().
		Return(config.Config{Forge: "github", Actor: "test-actor"}, nil).AnyTimes()
	m.forges.EXPECT().GetForge("github").Return(m.forge, nil).AnyTimes()

	closer, err := NewDupCloser(NewDupCloserParams{
		Dependencies: dependencies.New().
			WithConfig(m.config).
			WithForges(m.forges).
			WithLogger(logger.NewNoopLogger()).
			WithPrompt(m.prompt).
			WithClock(func() time.Time {
				return time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)
			}),
	})
	require.NoError(t, err)

	return closer, m
}

func TestCloseDuplicate_WithDuplicateReference(t *testing.T) {
	closer, m := newTestDupCloser(t)

	m.forge.EXPECT().GetIssue(gomock.Any(), duplicateRef).
		Return(&issue.Info{ID: "I_15", Number: 15, Title: "Original", State: issue.StateOpen}, nil)
	m.forge.EXPECT().GetIssue(gomock.Any(), targetRef).
		Return(&issue.Info{ID: "I_42", Number: 42, Title: "Restated", State: issue.StateOpen}, nil)
	m.forge.EXPECT().CreateComment(gomock.Any(), targetRef, "Duplicate of octocat/Hello-World#15").
		Return(&issue.Comment{ID: 1}, nil)
	m.forge.EXPECT().CloseIssue(gomock.Any(), targetRef, forge.CloseReasonDuplicate).
		Return(&issue.CloseResult{
			Number:      42,
			State:       issue.StateClosed,
			StateReason: "duplicate",
			URL:         "https://github.com/octocat/Hello-World/issues/42",
		}, nil)

	result, err := closer.CloseDuplicate(context.Background(), CloseDuplicateParams{
		Target:      targetRef,
		DuplicateOf: &duplicateRef,
	})
	require.NoError(t, err)
	assert.Equal(t, "duplicate", result.StateReason)
	assert.Equal(t, "https://github.com/octocat/Hello-World/issues/42", result.URL)
}

func TestCloseDuplicate_WithoutDuplicateReference(t *testing.T) {
	closer, m := newTestDupCloser(t)

	// Only the target is looked up; the comment carries actor and timestamp
	m.forge.EXPECT().GetIssue(gomock.Any(), targetRef).
		Return(&issue.Info{ID: "I_42", Number: 42, Title: "Restated", State: issue.StateOpen}, nil)
	m.forge.EXPECT().CreateComment(gomock.Any(), targetRef,
		"Closed as duplicate by test-actor on 2024-06-01 12:30:45 UTC").
		Return(&issue.Comment{ID: 1}, nil)
	m.forge.EXPECT().CloseIssue(gomock.Any(), targetRef, forge.CloseReasonDuplicate).
		Return(&issue.CloseResult{Number: 42, State: issue.StateClosed, StateReason: "duplicate"}, nil)

	result, err := closer.CloseDuplicate(context.Background(), CloseDuplicateParams{
		Target: targetRef,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result.Number)
}

func TestCloseDuplicate_DuplicateNotFound(t *testing.T) {
	closer, m := newTestDupCloser(t)

	// No target lookup, comment or close after the duplicate lookup fails
	m.forge.EXPECT().GetIssue(gomock.Any(), duplicateRef).
		Return(nil, forge.ErrIssueNotFound)

	_, err := closer.CloseDuplicate(context.Background(), CloseDuplicateParams{
		Target:      targetRef,
		DuplicateOf: &duplicateRef,
	})
	assert.ErrorIs(t, err, forge.ErrIssueNotFound)
}

func TestCloseDuplicate_TargetNotFound(t *testing.T) {
	closer, m := newTestDupCloser(t)

	m.forge.EXPECT().GetIssue(gomock.Any(), targetRef).
		Return(nil, forge.ErrIssueNotFound)

	_, err := closer.CloseDuplicate(context.Background(), CloseDuplicateParams{
		Target: targetRef,
	})
	assert.ErrorIs(t, err, forge.ErrIssueNotFound)
}

func TestCloseDuplicate_AlreadyClosed_Declined(t *testing.T) {
	closer, m := newTestDupCloser(t)

	m.forge.EXPECT().GetIssue(gomock.Any(), targetRef).
		Return(&issue.Info{ID: "I_42", Number: 42, Title: "Restated", State: issue.StateClosed}, nil)
	m.prompt.EXPECT().PromptForConfirmation(gomock.Any(), false).Return(false, nil)

	_, err := closer.CloseDuplicate(context.Background(), CloseDuplicateParams{
		Target: targetRef,
	})
	assert.ErrorIs(t, err, ErrUserAborted)
}

func TestCloseDuplicate_AlreadyClosed_Confirmed(t *testing.T) {
	closer, m := newTestDupCloser(t)

	m.forge.EXPECT().GetIssue(gomock.Any(), targetRef).
		Return(&issue.Info{ID: "I_42", Number: 42, Title: "Restated", State: issue.StateClosed}, nil)
	m.prompt.EXPECT().PromptForConfirmation(gomock.Any(), false).Return(true, nil)
	m.forge.EXPECT().CreateComment(gomock.Any(), targetRef, gomock.Any()).
		Return(&issue.Comment{ID: 1}, nil)
	m.forge.EXPECT().CloseIssue(gomock.Any(), targetRef, forge.CloseReasonDuplicate).
		Return(&issue.CloseResult{Number: 42, State: issue.StateClosed, StateReason: "duplicate"}, nil)

	_, err := closer.CloseDuplicate(context.Background(), CloseDuplicateParams{
		Target: targetRef,
	})
	assert.NoError(t, err)
}

func TestCloseDuplicate_OpenIssueSkipsPrompt(t *testing.T) {
	closer, m := newTestDupCloser(t)

	// No prompt expectation: an open target must not trigger confirmation
	m.forge.EXPECT().GetIssue(gomock.Any(), targetRef).
		Return(&issue.Info{ID: "I_42", Number: 42, Title: "Restated", State: issue.StateOpen}, nil)
	m.forge.EXPECT().CreateComment(gomock.Any(), targetRef, gomock.Any()).
		Return(&issue.Comment{ID: 1}, nil)
	m.forge.EXPECT().CloseIssue(gomock.Any(), targetRef, forge.CloseReasonDuplicate).
		Return(&issue.CloseResult{Number: 42, State: issue.StateClosed, StateReason: "duplicate"}, nil)

	_, err := closer.CloseDuplicate(context.Background(), CloseDuplicateParams{
		Target: targetRef,
	})
	assert.NoError(t, err)
}

func TestCloseDuplicate_CloseFailsAfterComment(t *testing.T) {
	closer, m := newTestDupCloser(t)

	m.forge.EXPECT().GetIssue(gomock.Any(), targetRef).
		Return(&issue.Info{ID: "I_42", Number: 42, Title: "Restated", State: issue.StateOpen}, nil)
	m.forge.EXPECT().CreateComment(gomock.Any(), targetRef, gomock.Any()).
		Return(&issue.Comment{ID: 1}, nil)
	m.forge.EXPECT().CloseIssue(gomock.Any(), targetRef, forge.CloseReasonDuplicate).
		Return(nil, forge.ErrUnauthorized)

	// The comment stays; the close failure is surfaced without rollback
	_, err := closer.CloseDuplicate(context.Background(), CloseDuplicateParams{
		Target: targetRef,
	})
	assert.ErrorIs(t, err, forge.ErrUnauthorized)
}

func TestCloseDuplicate_UnsupportedForge(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockConfig := configMocks.NewMockManager(ctrl)
	mockConfig.EXPECT().GetConfigWithFallback().
		Return(config.Config{Forge: "gitlab", Actor: "test-actor"}, nil)

	closer, err := NewDupCloser(NewDupCloserParams{
		Dependencies: dependencies.New().
			WithConfig(mockConfig).
			WithPrompt(promptMocks.NewMockPrompter(ctrl)),
	})
	require.NoError(t, err)

	_, err = closer.CloseDuplicate(context.Background(), CloseDuplicateParams{
		Target: targetRef,
	})
	assert.ErrorIs(t, err, forge.ErrUnsupportedForge)
}

func TestNewDupCloser_MissingConfig(t *testing.T) {
	_, err := NewDupCloser(NewDupCloserParams{
		Dependencies: dependencies.New(),
	})
	assert.ErrorIs(t, err, dependencies.ErrConfigMissing)
}
