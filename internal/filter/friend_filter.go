package filter

import (
	"gorm.io/gorm/clause"

	"social-network/internal/specification"
)

// FriendFilter searches within one user's friend list under the same
// criteria as a general user search.
type FriendFilter struct {
	UserFilter
	UserID uint
}

// ToSpecification restricts the embedded filter's predicate to users who
// appear in UserID's friend set, in either edge direction.
func (f *FriendFilter) ToSpecification() clause.Expression {
	return specification.And(
		specification.IsFriendOf(f.UserID),
		f.UserFilter.ToSpecification(),
	)
}

// CandidateFilter is the sibling of FriendFilter: same criteria, restricted
// to users one could still befriend (everybody except the user and their
// current friends).
type CandidateFilter struct {
	UserFilter
	UserID uint
}

func (f *CandidateFilter) ToSpecification() clause.Expression {
	return specification.And(
		specification.NotFriendOf(f.UserID),
		f.UserFilter.ToSpecification(),
	)
}
