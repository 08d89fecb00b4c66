// Package filter turns request-scoped search criteria into query predicates.
package filter

import (
	"strings"

	"gorm.io/gorm/clause"

	"social-network/internal/model"
	"social-network/internal/specification"
	"social-network/pkg/keyboard"
)

// UserFilter carries the optional search criteria of a user search. Absent
// or malformed fields impose no constraint; compilation never fails.
type UserFilter struct {
	Fio    string
	City   string
	MinAge *int
	MaxAge *int
	Gender string
}

// ToSpecification compiles the filter into a single predicate: the AND of
// the full-name token predicate, the joined city-name predicate, both age
// bounds and the gender match.
func (f *UserFilter) ToSpecification() clause.Expression {
	return specification.And(
		f.fioSpecification(),
		specification.ContainsJoined("city", "name", f.City),
		specification.AgeAtLeast("user.birth_date", f.MinAge),
		specification.AgeAtMost("user.birth_date", f.MaxAge),
		specification.EqualEnum("user.gender", string(model.ParseGender(f.Gender))),
	)
}

// fioSpecification compiles the full-name criterion. The search string is
// first run through the keyboard layout normalizer, then split on spaces;
// every token must match the name or the surname as a substring. Tokens are
// folded left to right; empty tokens from repeated spaces compile to the
// neutral predicate and fall away.
func (f *UserFilter) fioSpecification() clause.Expression {
	if f.Fio == "" {
		return nil
	}
	tokens := strings.Split(keyboard.Convert(f.Fio), " ")
	exprs := make([]clause.Expression, 0, len(tokens))
	for _, token := range tokens {
		exprs = append(exprs, specification.Or(
			specification.Contains("user.name", token),
			specification.Contains("user.surname", token),
		))
	}
	return specification.And(exprs...)
}

// Joins lists the relation joins the compiled predicate relies on. The city
// join is outer so users without a city stay in the query.
func (f *UserFilter) Joins() []string {
	if f.City == "" {
		return nil
	}
	return []string{"LEFT JOIN city ON city.id = user.city_id"}
}
