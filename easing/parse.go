package easing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidExpression is wrapped by every error returned from Parse.
var ErrInvalidExpression = errors.New("invalid easing expression")

// Parse builds a curve from its textual form. Recognised forms are
//
//	linear
//	powi(N)
//	powf(X)
//	back | back(A)
//	out(E)
//	inout(E)
//
// where E is itself any recognised form, so decorators nest freely.
// Names are case-insensitive and surrounding whitespace is ignored.
func Parse(expr string) (Easing, error) {
	e, err := parse(strings.TrimSpace(expr))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidExpression, expr, err)
	}
	return e, nil
}

func parse(expr string) (Easing, error) {
	name, arg, hasArg, err := split(expr)
	if err != nil {
		return nil, err
	}

	switch name {
	case "linear":
		if hasArg {
			return nil, errors.New("linear takes no argument")
		}
		return Linear{}, nil

	case "powi":
		if !hasArg {
			return nil, errors.New("powi requires an integer exponent")
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("powi exponent: %w", err)
		}
		return Powi(n), nil

	case "powf":
		if !hasArg {
			return nil, errors.New("powf requires an exponent")
		}
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("powf exponent: %w", err)
		}
		return Powf(f), nil

	case "back":
		if !hasArg {
			return DefaultBack(), nil
		}
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("back amount: %w", err)
		}
		return Back(f), nil

	case "out", "inout":
		if !hasArg {
			return nil, fmt.Errorf("%s requires an inner curve", name)
		}
		inner, err := parse(arg)
		if err != nil {
			return nil, err
		}
		if name == "out" {
			return EaseOut(inner), nil
		}
		return EaseInOut(inner), nil
	}

	return nil, fmt.Errorf("unknown curve %q", name)
}

// split separates "name(arg)" into its parts. The argument keeps any nested
// parentheses intact.
func split(expr string) (name, arg string, hasArg bool, err error) {
	if expr == "" {
		return "", "", false, errors.New("empty expression")
	}

	open := strings.IndexByte(expr, '(')
	if open < 0 {
		if strings.ContainsRune(expr, ')') {
			return "", "", false, errors.New("unbalanced parentheses")
		}
		return strings.ToLower(expr), "", false, nil
	}

	if !strings.HasSuffix(expr, ")") {
		return "", "", false, errors.New("unbalanced parentheses")
	}

	name = strings.ToLower(strings.TrimSpace(expr[:open]))
	arg = strings.TrimSpace(expr[open+1 : len(expr)-1])

	depth := 0
	for _, r := range arg {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth < 0 {
			return "", "", false, errors.New("unbalanced parentheses")
		}
	}
	if depth != 0 {
		return "", "", false, errors.New("unbalanced parentheses")
	}
	if arg == "" {
		return "", "", false, fmt.Errorf("%s: empty argument", name)
	}

	return name, arg, true, nil
}
