package types

import "strings"

// WorkflowStatus represents the workflow status of a risk record. The stored
// vocabulary is not canonically spelled ("Completed" vs "Complete" vs
// "Closed", "Review/Challenge" vs "Review Challenge"), so all comparisons go
// through Normalize and bucket classification through Bucket.
type WorkflowStatus string

const (
	StatusSentForAssessment WorkflowStatus = "Sent for Assessment"
	StatusInProgress        WorkflowStatus = "In Progress"
	StatusPendingApproval   WorkflowStatus = "Pending Approval"
	StatusReviewChallenge   WorkflowStatus = "Review/Challenge"
	StatusCompleted         WorkflowStatus = "Completed"
	StatusComplete          WorkflowStatus = "Complete"
	StatusClosed            WorkflowStatus = "Closed"
	StatusOverdue           WorkflowStatus = "Overdue"
)

// StatusBucket is the canonical classification of a workflow status. Any
// spelling outside the four canonical groups falls into BucketOther rather
// than being dropped.
type StatusBucket string

const (
	BucketCompleted       StatusBucket = "completed"
	BucketOverdue         StatusBucket = "overdue"
	BucketInProgress      StatusBucket = "inProgress"
	BucketPendingApproval StatusBucket = "pendingApproval"
	BucketOther           StatusBucket = "other"
)

// AllStatusBuckets returns all canonical status buckets
func AllStatusBuckets() []StatusBucket {
	return []StatusBucket{
		BucketCompleted,
		BucketOverdue,
		BucketInProgress,
		BucketPendingApproval,
		BucketOther,
	}
}

// NormalizeStatus lowercases the input and collapses every run of
// non-alphanumeric characters (whitespace, slashes, punctuation) into a
// single dash. It is idempotent and must be applied symmetrically to stored
// values and filter values.
func NormalizeStatus(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		} else {
			dash = true
		}
	}
	return b.String()
}

// Normalize returns the normalized form of the status
func (s WorkflowStatus) Normalize() string {
	return NormalizeStatus(string(s))
}

// Equals reports whether two spellings denote the same status
func (s WorkflowStatus) Equals(other WorkflowStatus) bool {
	return s.Normalize() == other.Normalize()
}

// Bucket classifies the status into its canonical bucket. "Completed",
// "Complete" and "Closed" are distinct spellings of the same terminal state
// and share BucketCompleted.
func (s WorkflowStatus) Bucket() StatusBucket {
	switch s.Normalize() {
	case "completed", "complete", "closed":
		return BucketCompleted
	case "overdue":
		return BucketOverdue
	case "in-progress":
		return BucketInProgress
	case "pending-approval":
		return BucketPendingApproval
	default:
		return BucketOther
	}
}

// IsCompleted reports whether the status denotes a terminal completed state
func (s WorkflowStatus) IsCompleted() bool {
	return s.Bucket() == BucketCompleted
}

// String returns the raw string representation of the status
func (s WorkflowStatus) String() string {
	return string(s)
}
