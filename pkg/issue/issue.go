// Package issue provides data structures and error types for handling forge issues.
package issue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Issue state string constants.
const (
	// StateOpen is the state of an issue that is still open.
	StateOpen = "open"
	// StateClosed is the state of an issue that has been closed.
	StateClosed = "closed"
)

// refRegexp matches the owner/repo#number reference format. Owner and
// repository must not contain '/' or '#'; the number must be a positive
// integer without leading zeros so that parse and format round-trip.
var refRegexp = regexp.MustCompile(`^[^/#]+/[^/#]+#[1-9][0-9]*$`)

// Ref identifies an issue by repository owner, repository name and issue number.
type Ref struct {
	Owner      string
	Repository string
	Number     int
}

// ParseRef parses an issue reference in the owner/repo#number format.
func ParseRef(ref string) (Ref, error) {
	if !refRegexp.MatchString(ref) {
		return Ref{}, fmt.Errorf("%w: %s", ErrInvalidReference, ref)
	}

	// Split on the last '#' to get the issue number, then on the first '/'
	// to get owner and repository.
	hashIdx := strings.LastIndex(ref, "#")
	number, err := strconv.Atoi(ref[hashIdx+1:])
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %s", ErrInvalidReference, ref)
	}

	ownerRepo := ref[:hashIdx]
	slashIdx := strings.Index(ownerRepo, "/")

	return Ref{
		Owner:      ownerRepo[:slashIdx],
		Repository: ownerRepo[slashIdx+1:],
		Number:     number,
	}, nil
}

// String reconstructs the owner/repo#number reference.
func (r Ref) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repository, r.Number)
}

// Info represents a read-only snapshot of a forge issue.
type Info struct {
	ID     string `yaml:"id"`
	Number int    `yaml:"number"`
	Title  string `yaml:"title"`
	State  string `yaml:"state,omitempty"`
	URL    string `yaml:"url,omitempty"`
}

// Comment represents a comment created on a forge issue.
type Comment struct {
	ID  int64  `yaml:"id"`
	URL string `yaml:"url,omitempty"`
}

// CloseResult represents the outcome of a close mutation on a forge issue.
type CloseResult struct {
	Number      int    `yaml:"number"`
	State       string `yaml:"state"`
	StateReason string `yaml:"state_reason"`
	URL         string `yaml:"url,omitempty"`
}
