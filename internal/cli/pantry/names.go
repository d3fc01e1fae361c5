package pantry

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormaliseFoodName приводит имя продукта к канонической форме:
// обрезает края, схлопывает пробелы, капитализирует каждое слово.
// "  green   BEANS " → "Green Beans".
func NormaliseFoodName(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	// cases.Caser несёт внутреннее состояние, поэтому создаётся на вызов
	return cases.Title(language.English).String(strings.ToLower(collapsed))
}
