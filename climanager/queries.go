// Package climanager provides the interactive terminal prompts used by the commands in cmd/.
//
// Every query reads one line at a time from a *bufio.Scanner and writes its prompts to an
// io.Writer, so that both can be replaced in tests. Entering "quit" or "q" at any prompt quits.
package climanager

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInputClosed is the cause of the error returned by a query when its input runs out
var ErrInputClosed = errors.New("input closed")

func scan(sc *bufio.Scanner) (string, bool, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", false, errors.Wrapf(err, "Scanner.Scan() failed")
		}
		return "", false, errors.Wrapf(ErrInputClosed, "Scanner.Scan() failed")
	}

	text := strings.TrimSpace(sc.Text())
	return text, text == "quit" || text == "q", nil
}

// QueryTF returns user input of true/false, and whether or not the user quit.
// Returns an error if the scanner runs out.
//
// In case of other return states (error or quit), the answer defaults to 'false'
func QueryTF(sc *bufio.Scanner, w io.Writer) (bool, bool, error) {
	for {
		text, quit, err := scan(sc)
		if err != nil || quit {
			return false, quit, err
		}

		switch strings.ToLower(text) {
		case "y", "yes":
			return true, false, nil
		case "n", "no":
			return false, false, nil
		default:
			fmt.Fprint(w, "Please enter 'y' or 'n': ")
		}
	}
}

// QueryInt gets an integer from user input. The integer returned will be in the range specified
// by 'isValid'.
//
// 'isValid' returns an error string if the given integer is out of bounds. If it returns an empty
// string, that integer will be returned by QueryInt. The error message from 'isValid' will be
// printed as-is to w. 'isValid' may be nil.
//
// returns 'true' only if the user quits (enters 'quit' or 'q')
// returns an error only if input runs out
func QueryInt(sc *bufio.Scanner, w io.Writer, isValid func(int) string) (int, bool, error) {
	for {
		text, quit, err := scan(sc)
		if err != nil || quit {
			return 0, quit, err
		}

		if v, err := strconv.Atoi(text); err != nil {
			fmt.Fprint(w, "Please enter an integer: ")
		} else if msg := check(isValid, v); msg != "" {
			fmt.Fprint(w, msg)
		} else {
			return v, false, nil
		}
	}
}

// QueryFloat is functionally identical to QueryInt, but for float64
func QueryFloat(sc *bufio.Scanner, w io.Writer, isValid func(float64) string) (float64, bool, error) {
	for {
		text, quit, err := scan(sc)
		if err != nil || quit {
			return 0, quit, err
		}

		if v, err := strconv.ParseFloat(text, 64); err != nil {
			fmt.Fprint(w, "Please enter a floating point number: ")
		} else if msg := check(isValid, v); msg != "" {
			fmt.Fprint(w, msg)
		} else {
			return v, false, nil
		}
	}
}

// QueryChoice gets one of the given options from user input, case-insensitively. The returned
// string is the option as given in 'options'.
func QueryChoice(sc *bufio.Scanner, w io.Writer, options ...string) (string, bool, error) {
	for {
		text, quit, err := scan(sc)
		if err != nil || quit {
			return "", quit, err
		}

		for _, o := range options {
			if strings.EqualFold(text, o) {
				return o, false, nil
			}
		}

		fmt.Fprintf(w, "Please enter one of: %s: ", strings.Join(options, ", "))
	}
}

func check[T any](isValid func(T) string, v T) string {
	if isValid == nil {
		return ""
	}
	return isValid(v)
}

// Between returns a validity check for QueryInt or QueryFloat that accepts values in [min, max]
func Between[T int | float64](min, max T) func(T) string {
	return func(v T) string {
		if v < min || v > max {
			return fmt.Sprintf("Please enter a value between %v and %v: ", min, max)
		}
		return ""
	}
}
