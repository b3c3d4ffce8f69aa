// Package matcher checks input lines for containing the query as a plain substring, optionally case-insensitive or inverted
package matcher

import (
	"bufio"
	"strings"
)

// Search returns the lines of contents selected by the query, in their original order and case.
func Search(query, contents string, invertMatch, ignoreCase bool) []string {
	result := []string{}

	if ignoreCase { //--ignore_case
		query = strings.ToLower(query)
	}

	for _, line := range Lines(contents) {
		if selected(query, line, invertMatch, ignoreCase) {
			result = append(result, line)
		}
	}

	return result
}

// Match reports whether a single line is selected by the query.
func Match(query, line string, invertMatch, ignoreCase bool) bool {
	if ignoreCase {
		query = strings.ToLower(query)
	}
	return selected(query, line, invertMatch, ignoreCase)
}

// query уже приведен к нижнему регистру, если ignoreCase
func selected(query, line string, invertMatch, ignoreCase bool) bool {
	if ignoreCase {
		line = strings.ToLower(line)
	}
	// совпадение XOR инверсия - один предикат на все четыре режима
	return strings.Contains(line, query) != invertMatch
}

// Lines splits contents on line feeds. A trailing "\r" is dropped from every line
// and a final line separator does not produce an empty last line.
func Lines(contents string) []string {
	result := make([]string, 0)
	if contents == "" {
		return result
	}

	scanner := bufio.NewScanner(strings.NewReader(contents))
	// одна строка может занимать весь вход - иначе Scanner упрется в 64KB
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(contents)+1)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	return result
}
