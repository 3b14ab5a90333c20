package sqlgen

import "fmt"

// Separator delimits the generated SQL from its explanation in the model reply.
const Separator = "SEPARADORSQL"

// Dialect is the SQL flavour the model is asked to produce.
const Dialect = "BigQuery"

func BuildPrompt(databaseContext string, question string) string {
	return fmt.Sprintf(`
Database context:
%s

Question:
%s

Instructions:
1. Generate the SQL code for %s that answers the question.
2. Then explain the generated SQL code in natural language, step by step.
3. Separate the SQL code from the explanation with the reserved word %s
`, databaseContext, question, Dialect, Separator)
}
