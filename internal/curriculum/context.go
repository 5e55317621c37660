package curriculum

import "strings"

// Curriculum rule blocks used to ground every prompt sent to the provider.
// The texts follow the course slide decks the question bank was authored from.
const (
	windowFunctionsContext = `
    Focus on the specific curriculum regarding Window Functions:
    1. Syntax: function_name(expression) OVER ([partition_definition] [order_definition] [frame_definition]).
    2. Frames: Understand ROWS vs RANGE. Frame start: UNBOUNDED PRECEDING, N PRECEDING, CURRENT ROW. Frame end: UNBOUNDED FOLLOWING, N FOLLOWING.
    3. Specific Functions to cover:
       - FIRST_VALUE() / LAST_VALUE()
       - NTH_VALUE(expr, N) FROM FIRST/LAST
       - LAG(expr, offset, default) / LEAD(expr, offset, default)
       - ROW_NUMBER() vs RANK() vs DENSE_RANK()
       - NTILE(n) (divides rows into buckets)
       - PERCENT_RANK() (rank-1 / total_rows-1)
       - CUME_DIST() (number of rows with values <= current / total rows)
    4. Key concept: Window functions do NOT reduce the number of rows returned (unlike Group By).
  `

	subqueriesContext = `
    Focus on the specific curriculum regarding Subqueries:
    1. Types: Scalar (single value), Row (single row), Table (multiple rows/cols).
    2. Locations: SELECT, FROM (derived table), WHERE, HAVING.
    3. Correlated Subqueries: Uses "Outer References". Executes once for EACH row of the outer query.
    4. Comparison Tests:
       - Simple Comparison (=, <, >)
       - IN / NOT IN (Set membership)
       - EXISTS (Existence test - checks if subquery returns ANY rows, ignores values)
       - ANY / SOME (True if comparison holds for at least one value)
       - ALL (True if comparison holds for EVERY value)
    5. Trap: ANY/ALL with NULL values.
  `

	normalizationContext = `
    Focus on the specific curriculum regarding Normalization:
    1. Goal: Minimize redundancy, avoid Update/Insertion/Deletion anomalies.
    2. Dependencies:
       - Functional Dependency (A -> B)
       - Partial Dependency (Part of composite PK -> Non-prime attribute)
       - Transitive Dependency (Non-prime -> Non-prime)
       - Multivalued Dependency (One key determines multiple independent values)
    3. Normal Forms:
       - 1NF: Table format, PK identified, No repeating groups.
       - 2NF: 1NF + No Partial Dependencies.
       - 3NF: 2NF + No Transitive Dependencies.
       - BCNF: Every determinant is a candidate key.
       - 4NF: 3NF + No Multivalued Dependencies.
    4. Denormalization: Occasional need for performance.
  `

	dataModelingContext = `
    Focus on the specific curriculum regarding Advanced Data Modeling (EER):
    1. Supertypes & Subtypes: Inheritance of attributes and relationships (1:1 implementation).
    2. Specialization Hierarchy: "Is-a" relationships.
    3. Discriminators: Attribute determining the subtype (e.g., EMP_TYPE).
    4. Constraints:
       - Disjoint (d): Instance belongs to ONLY one subtype.
       - Overlapping (o): Instance can belong to multiple subtypes.
       - Partial Completeness (Single line): Supertype DOES NOT have to be a subtype.
       - Total Completeness (Double line): Supertype MUST be a subtype.
    5. Entity Clustering: Grouping entities to simplify diagrams.
    6. Keys: Natural vs Surrogate keys (security, immutability).
  `

	// GenericContext is the fallback for titles matching no anchor.
	GenericContext = "Focus on standard SQL best practices."
)

// contextAnchors pairs each keyword anchor with its rule block. Order is the
// resolution priority; the first matching anchor wins.
var contextAnchors = []struct {
	anchor  string
	context string
}{
	{"window", windowFunctionsContext},
	{"subquer", subqueriesContext},
	{"normalization", normalizationContext},
	{"modeling", dataModelingContext},
}

// ContextForTopic resolves the curriculum rule block for a topic title by
// case-insensitive substring match. Every input has a defined output; unknown
// titles get GenericContext.
func ContextForTopic(topicTitle string) string {
	lower := strings.ToLower(topicTitle)
	for _, a := range contextAnchors {
		if strings.Contains(lower, a.anchor) {
			return a.context
		}
	}
	return GenericContext
}
