package curriculum

import "sql-arena/internal/domain"

// questionBank maps topic identifier to its pre-authored questions. Topics
// present here never cost a provider call; absence routes a draw to the
// generation path.
var questionBank = map[string][]domain.QuizQuestion{
	"window_functions": {
		{
			ID:            "wf_1",
			Topic:         "Window Functions",
			Difficulty:    domain.DifficultyIntermediate,
			Kind:          domain.KindQueryWriting,
			QuestionText:  "Write a query to rank employees by salary within each department. Use `DENSE_RANK()` so that if two employees have the same salary, they share the same rank, and the next rank is sequential.",
			SchemaContext: "Table: EMPLOYEES\n- EMP_ID (INT)\n- NAME (VARCHAR)\n- DEPT_ID (INT)\n- SALARY (INT)",
			Hints:         []string{"Use PARTITION BY to group by department", "Use ORDER BY to sort by salary descending"},
		},
		{
			ID:            "wf_2",
			Topic:         "Window Functions",
			Difficulty:    domain.DifficultyAdvanced,
			Kind:          domain.KindQueryWriting,
			QuestionText:  "Calculate the 'Running Total' of sales for each sales representative, ordered by the date of sale.",
			SchemaContext: "Table: SALES\n- SALE_ID (INT)\n- REP_ID (INT)\n- SALE_DATE (DATE)\n- AMOUNT (DECIMAL)",
			Hints:         []string{"Use SUM() as a window function", "The frame should be UNBOUNDED PRECEDING to CURRENT ROW"},
		},
	},
	"subqueries": {
		{
			ID:            "sq_1",
			Topic:         "Subqueries",
			Difficulty:    domain.DifficultyIntermediate,
			Kind:          domain.KindQueryWriting,
			QuestionText:  "Find the names of all products that have a price higher than the average price of ALL products.",
			SchemaContext: "Table: PRODUCTS\n- PROD_ID (INT)\n- PROD_NAME (VARCHAR)\n- PRICE (DECIMAL)",
			Hints:         []string{"Calculate the average price in a subquery", "Use > operator with the scalar result"},
		},
		{
			ID:            "sq_2",
			Topic:         "Subqueries",
			Difficulty:    domain.DifficultyAdvanced,
			Kind:          domain.KindQueryWriting,
			QuestionText:  "List employees who earn more than the average salary of their respective department (Correlated Subquery).",
			SchemaContext: "Table: EMPLOYEES\n- EMP_ID (INT)\n- NAME (VARCHAR)\n- DEPT_ID (INT)\n- SALARY (INT)",
			Hints:         []string{"The inner query needs to reference the outer query's department ID", "This creates an 'Outer Reference'"},
		},
	},
	"normalization": {
		{
			ID:            "norm_1",
			Topic:         "Normalization",
			Difficulty:    domain.DifficultyIntermediate,
			Kind:          domain.KindQueryWriting,
			QuestionText:  "Given a table `STUDENT_CLASSES (Student_ID, Student_Name, Class_ID, Class_Name)`, identify the partial dependency and write the SQL to split it into 2NF.",
			SchemaContext: "Current PK: (Student_ID, Class_ID)\nDependencies:\n- Student_ID -> Student_Name\n- Class_ID -> Class_Name",
			Hints:         []string{"Student_Name depends only on part of the key", "Create separate tables for Students and Classes"},
		},
	},
}

// BankQuestions returns the pre-authored questions for a topic identifier.
// The returned slice must not be mutated by callers.
func BankQuestions(topicID string) []domain.QuizQuestion {
	return questionBank[topicID]
}
