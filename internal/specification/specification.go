// Package specification builds composable query predicates over GORM clause
// expressions. A nil expression is the neutral element ("no constraint"):
// every constructor returns nil when its inputs are empty, and And/Or drop
// neutral operands, so composing with an absent criterion is a no-op.
package specification

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm/clause"
)

// Contains matches rows whose column contains value, case-insensitively.
func Contains(column, value string) clause.Expression {
	if column == "" || value == "" {
		return nil
	}
	return clause.Expr{
		SQL:  fmt.Sprintf("LOWER(%s) LIKE ?", column),
		Vars: []interface{}{"%" + strings.ToLower(value) + "%"},
	}
}

// EqualFold matches rows whose column equals value, case-insensitively.
func EqualFold(column, value string) clause.Expression {
	if column == "" || value == "" {
		return nil
	}
	return clause.Expr{
		SQL:  fmt.Sprintf("LOWER(%s) = ?", column),
		Vars: []interface{}{strings.ToLower(value)},
	}
}

// ContainsJoined matches on a column reached through a to-one relation.
// The caller is responsible for adding the LEFT JOIN to the query (see the
// filters' Joins method); an outer join keeps rows without the relation in
// the query, they drop out only when the predicate itself evaluates false.
func ContainsJoined(relation, column, value string) clause.Expression {
	if relation == "" || column == "" || value == "" {
		return nil
	}
	return Contains(relation+"."+column, value)
}

// EqualEnum matches an enumerated column against its string code exactly.
func EqualEnum(column, value string) clause.Expression {
	if column == "" || value == "" {
		return nil
	}
	return clause.Expr{
		SQL:  fmt.Sprintf("%s = ?", column),
		Vars: []interface{}{value},
	}
}

// AgeAtLeast keeps rows at least minYears old: birth date on or before
// today minus minYears. The boundary is inclusive, someone born exactly
// minYears ago today matches.
func AgeAtLeast(column string, minYears *int) clause.Expression {
	if column == "" || minYears == nil {
		return nil
	}
	return clause.Expr{
		SQL:  fmt.Sprintf("%s <= ?", column),
		Vars: []interface{}{BirthDateCutoff(*minYears)},
	}
}

// AgeAtMost keeps rows at most maxYears old: birth date on or after today
// minus maxYears.
func AgeAtMost(column string, maxYears *int) clause.Expression {
	if column == "" || maxYears == nil {
		return nil
	}
	return clause.Expr{
		SQL:  fmt.Sprintf("%s >= ?", column),
		Vars: []interface{}{BirthDateCutoff(*maxYears)},
	}
}

// BirthDateCutoff translates an age in full years into the birth date of
// someone turning exactly that age today.
func BirthDateCutoff(years int) time.Time {
	now := time.Now()
	return time.Date(now.Year()-years, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// IsFriendOf keeps users connected to userID by a friendship edge in either
// direction.
func IsFriendOf(userID uint) clause.Expression {
	return clause.Expr{
		SQL: "EXISTS (SELECT 1 FROM friendship " +
			"WHERE (friendship.user_id = ? AND friendship.friend_id = user.id) " +
			"OR (friendship.friend_id = ? AND friendship.user_id = user.id))",
		Vars: []interface{}{userID, userID},
	}
}

// NotFriendOf keeps users who are neither userID itself nor connected to it
// by a friendship edge. Used for befriend-candidate search.
func NotFriendOf(userID uint) clause.Expression {
	return clause.Expr{
		SQL: "user.id <> ? AND NOT EXISTS (SELECT 1 FROM friendship " +
			"WHERE (friendship.user_id = ? AND friendship.friend_id = user.id) " +
			"OR (friendship.friend_id = ? AND friendship.user_id = user.id))",
		Vars: []interface{}{userID, userID, userID},
	}
}

// And conjoins the given predicates, dropping neutral ones. With no live
// operands the result is neutral; a single live operand is returned as-is.
func And(exprs ...clause.Expression) clause.Expression {
	live := compact(exprs)
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	default:
		return clause.And(live...)
	}
}

// Or disjoins the given predicates under the same neutrality rules as And.
func Or(exprs ...clause.Expression) clause.Expression {
	live := compact(exprs)
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	default:
		return clause.Or(live...)
	}
}

func compact(exprs []clause.Expression) []clause.Expression {
	live := make([]clause.Expression, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			live = append(live, e)
		}
	}
	return live
}
