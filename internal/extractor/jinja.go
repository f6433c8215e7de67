package extractor

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// JinjaExtractor extracts the set of variables a template references but
// never assigns, without executing the template. Each variable appears at
// most once regardless of how often it is used.
type JinjaExtractor struct{}

func (e *JinjaExtractor) Format() Format { return FormatJinja }

func (e *JinjaExtractor) Extract(path string) ([]Relation, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	variables, err := UndeclaredVariables(string(source))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	relations := make([]Relation, 0, len(variables))
	for _, v := range variables {
		relations = append(relations, Relation{Key: v})
	}
	return relations, nil
}

// jinjaKeywords are expression and statement words that never name a
// template variable.
var jinjaKeywords = map[string]bool{
	"and": true, "or": true, "not": true, "in": true, "is": true,
	"if": true, "else": true, "true": true, "false": true, "none": true,
	"True": true, "False": true, "None": true, "loop": true,
	"for": true, "set": true, "with": true, "macro": true, "elif": true,
	"block": true, "filter": true, "call": true, "include": true,
	"extends": true, "import": true, "from": true, "raw": true,
	"endraw": true, "endfor": true, "endif": true, "endblock": true,
	"endmacro": true, "endset": true, "endwith": true, "endfilter": true,
	"endcall": true,
}

// UndeclaredVariables scans template source for {{ }}, {% %} and {# #}
// blocks and returns the sorted set of variables referenced but not
// assigned by set/for/macro/with statements.
func UndeclaredVariables(source string) ([]string, error) {
	referenced := make(map[string]bool)
	declared := make(map[string]bool)

	for i := 0; i < len(source); {
		open := strings.IndexByte(source[i:], '{')
		if open < 0 || i+open+1 >= len(source) {
			break
		}
		i += open
		var closer string
		switch source[i+1] {
		case '{':
			closer = "}}"
		case '%':
			closer = "%}"
		case '#':
			closer = "#}"
		default:
			i++
			continue
		}

		end := strings.Index(source[i+2:], closer)
		if end < 0 {
			return nil, fmt.Errorf("unterminated %q block at offset %d", source[i:i+2], i)
		}
		body := trimControlMarkers(source[i+2 : i+2+end])
		next := i + 2 + end + 2

		switch closer {
		case "}}":
			if err := collectExpression(body, referenced); err != nil {
				return nil, err
			}
		case "%}":
			if firstWord(body) == "raw" {
				// Everything up to the matching endraw is literal text.
				skip, err := skipRaw(source[next:])
				if err != nil {
					return nil, fmt.Errorf("raw block at offset %d: %w", i, err)
				}
				next += skip
			} else if err := analyzeStatement(body, declared, referenced); err != nil {
				return nil, err
			}
		}
		i = next
	}

	var variables []string
	for name := range referenced {
		if !declared[name] {
			variables = append(variables, name)
		}
	}
	sort.Strings(variables)
	return variables, nil
}

// trimControlMarkers drops the whitespace-control markers that may sit just
// inside block delimiters, as in {%- for x in xs -%} or {{- name -}}.
func trimControlMarkers(body string) string {
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		body = body[1:]
	}
	if len(body) > 0 && (body[len(body)-1] == '-' || body[len(body)-1] == '+') {
		body = body[:len(body)-1]
	}
	return body
}

// firstWord returns the leading identifier of a statement body, or "" when
// the body does not start with one.
func firstWord(body string) string {
	i := 0
	for i < len(body) && (body[i] == ' ' || body[i] == '\t' || body[i] == '\n' || body[i] == '\r') {
		i++
	}
	j := i
	for j < len(body) {
		c := body[j]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || j > i && c >= '0' && c <= '9' {
			j++
			continue
		}
		break
	}
	return body[i:j]
}

// skipRaw scans past the {% endraw %} statement closing a raw block and
// returns the offset just after it.
func skipRaw(source string) (int, error) {
	for i := 0; i < len(source); {
		open := strings.Index(source[i:], "{%")
		if open < 0 {
			break
		}
		i += open
		end := strings.Index(source[i+2:], "%}")
		if end < 0 {
			break
		}
		if firstWord(trimControlMarkers(source[i+2:i+2+end])) == "endraw" {
			return i + 2 + end + 2, nil
		}
		i += 2 + end + 2
	}
	return 0, fmt.Errorf("missing endraw")
}

// analyzeStatement records assignment targets and collects variable
// references from the statement expression.
func analyzeStatement(stmt string, declared, referenced map[string]bool) error {
	tokens, err := tokenizeExpression(stmt)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	switch keyword := tokens[0].text; keyword {
	case "set", "with":
		// Targets appear before '='; the right-hand side is an expression.
		i := 1
		for ; i < len(tokens) && tokens[i].text != "="; i++ {
			if tokens[i].ident {
				declared[tokens[i].text] = true
			}
		}
		if i < len(tokens) {
			collectTokens(tokens[i+1:], referenced)
		}
	case "for":
		// Loop targets appear before 'in'; the iterable is an expression.
		i := 1
		for ; i < len(tokens) && tokens[i].text != "in"; i++ {
			if tokens[i].ident {
				declared[tokens[i].text] = true
			}
		}
		if i < len(tokens) {
			collectTokens(tokens[i+1:], referenced)
		}
	case "macro":
		// The macro name and its parameters are local definitions.
		for _, t := range tokens[1:] {
			if t.ident {
				declared[t.text] = true
			}
		}
	case "if", "elif":
		collectTokens(tokens[1:], referenced)
	case "block", "filter", "call", "include", "extends", "import", "from",
		"raw", "endraw", "else", "endif", "endfor", "endblock", "endmacro",
		"endset", "endwith", "endfilter", "endcall":
		// Structural statements; their arguments are names or literals,
		// not variable references.
	default:
		collectTokens(tokens[1:], referenced)
	}
	return nil
}

// collectExpression tokenizes an expression body and records its variables.
func collectExpression(expr string, referenced map[string]bool) error {
	tokens, err := tokenizeExpression(expr)
	if err != nil {
		return err
	}
	collectTokens(tokens, referenced)
	return nil
}

// collectTokens records identifiers that act as variables. Attribute names
// (after '.'), filter names (after '|') and test names (after 'is') are
// not variables.
func collectTokens(tokens []exprToken, referenced map[string]bool) {
	prev := exprToken{}
	for _, t := range tokens {
		if t.ident && !jinjaKeywords[t.text] &&
			prev.text != "." && prev.text != "|" && prev.text != "is" {
			referenced[t.text] = true
		}
		prev = t
	}
}

type exprToken struct {
	text  string
	ident bool
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// tokenizeExpression splits an expression body into identifiers and
// punctuation. String literals are swallowed whole; an unterminated
// literal is a parse error.
func tokenizeExpression(expr string) ([]exprToken, error) {
	var tokens []exprToken
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '\'' || c == '"':
			j := i + 1
			for j < len(expr) && expr[j] != c {
				if expr[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(expr) {
				return nil, fmt.Errorf("unterminated string literal in %q", expr)
			}
			tokens = append(tokens, exprToken{text: expr[i : j+1]})
			i = j + 1
		case isIdentStart(c):
			j := i + 1
			for j < len(expr) && isIdentPart(expr[j]) {
				j++
			}
			tokens = append(tokens, exprToken{text: expr[i:j], ident: true})
			i = j
		case c >= '0' && c <= '9':
			j := i + 1
			for j < len(expr) && (isIdentPart(expr[j]) || expr[j] == '.') {
				j++
			}
			tokens = append(tokens, exprToken{text: expr[i:j]})
			i = j
		default:
			tokens = append(tokens, exprToken{text: string(c)})
			i++
		}
	}
	return tokens, nil
}
