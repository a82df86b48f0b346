// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// MatcherMatch is the catch-all matcher; it takes a target but no value.
const MatcherMatch = "MATCH"

// ErrMalformedRule is returned by [ParseRule] for strings that are not of the
// form MATCHER,value,target[,options...].
var ErrMalformedRule = errors.New("malformed rule")

// Rule is a parsed routing rule. Rules are matched first to last and the
// first match wins, so the position of a rule in a document is part of its
// meaning.
type Rule struct {
	Matcher string
	Value   string
	Target  string
	Options []string
}

// ParseRule splits a rule string into its parts. Logical matchers (AND, OR,
// NOT) carry a parenthesised value containing commas; it is kept whole.
func ParseRule(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	matcher, rest, ok := strings.Cut(s, ",")
	matcher = strings.TrimSpace(matcher)
	if !ok || matcher == "" {
		return Rule{}, ErrMalformedRule
	}

	var r Rule
	r.Matcher = matcher

	if matcher != MatcherMatch {
		value, tail, err := splitValue(rest)
		if err != nil {
			return Rule{}, err
		}
		r.Value = value
		rest = tail
	}

	parts := strings.Split(rest, ",")
	r.Target = strings.TrimSpace(parts[0])
	if r.Target == "" {
		return Rule{}, ErrMalformedRule
	}
	for _, opt := range parts[1:] {
		if opt = strings.TrimSpace(opt); opt != "" {
			r.Options = append(r.Options, opt)
		}
	}

	return r, nil
}

func splitValue(rest string) (value, tail string, err error) {
	if strings.HasPrefix(rest, "(") {
		depth := 0
		for i, ch := range rest {
			switch ch {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					value = rest[:i+1]
					tail, ok := strings.CutPrefix(rest[i+1:], ",")
					if !ok {
						return "", "", ErrMalformedRule
					}
					return value, tail, nil
				}
			}
		}
		return "", "", ErrMalformedRule
	}

	value, tail, ok := strings.Cut(rest, ",")
	if !ok || strings.TrimSpace(value) == "" {
		return "", "", ErrMalformedRule
	}
	return strings.TrimSpace(value), tail, nil
}

// String renders r back to its document form.
func (r Rule) String() string {
	parts := []string{r.Matcher}
	if r.Matcher != MatcherMatch {
		parts = append(parts, r.Value)
	}
	parts = append(parts, r.Target)
	parts = append(parts, r.Options...)
	return strings.Join(parts, ",")
}
