// Package curriculum holds the static study material the whole system is
// grounded on: the topic catalog, the per-topic curriculum rules used in
// prompts, the pre-authored question bank, and the static theory pages.
// Everything here is pure data plus lookup functions with no side effects.
package curriculum

import "sql-arena/internal/domain"

// Topics is the fixed catalog, in display order.
var Topics = []domain.Topic{
	{
		ID:          "window_functions",
		Title:       "Window Functions",
		Description: "Master OVER(), partitioning, frames, and ranking functions like NTH_VALUE and CUME_DIST.",
		KeyConcepts: []string{"PARTITION BY", "ROWS/RANGE FRAME", "LAG/LEAD", "NTH_VALUE", "CUME_DIST", "PERCENT_RANK"},
		Icon:        domain.IconLayers,
	},
	{
		ID:          "subqueries",
		Title:       "Subqueries",
		Description: "Deep dive into nested queries, correlated subqueries, and existence testing.",
		KeyConcepts: []string{"Correlated Subqueries", "EXISTS vs IN", "ANY / ALL Operators", "Scalar vs Table Subqueries", "Outer References"},
		Icon:        domain.IconGitMerge,
	},
	{
		ID:          "normalization",
		Title:       "Normalization",
		Description: "Eliminate redundancy and anomalies. Master dependencies and Normal Forms (1NF to 4NF).",
		KeyConcepts: []string{"Functional Dependencies", "Transitive Dependency", "1NF, 2NF, 3NF, BCNF", "Multivalued Dependency (4NF)", "Primary/Foreign Keys"},
		Icon:        domain.IconDatabase,
	},
	{
		ID:          "data_modeling",
		Title:       "Advanced Modeling",
		Description: "Extended Entity Relationship (EER) models, supertypes, subtypes, and inheritance.",
		KeyConcepts: []string{"Supertypes & Subtypes", "Disjoint vs Overlapping", "Completeness Constraints", "Entity Clustering", "Surrogate Keys"},
		Icon:        domain.IconListTree,
	},
}

// TopicByID returns the topic with the given identifier, or nil when the
// identifier is unknown.
func TopicByID(id string) *domain.Topic {
	for i := range Topics {
		if Topics[i].ID == id {
			return &Topics[i]
		}
	}
	return nil
}
