package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s literally anywhere in the column
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
