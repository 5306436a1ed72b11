package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Checker runs rendered CSS through a real tokenizer to catch output that
// would not survive a browser parse.
type Checker struct {
	log *zap.Logger
}

// NewChecker creates a new CSS checker.
func NewChecker(log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{log: log.Named("css-check")}
}

// Check tokenizes data and returns an error if the parser reports anything
// other than a clean end of input. The source parameter identifies what is
// being checked.
func (c *Checker) Check(data []byte, source string) error {
	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var rules, decls int
	for {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			err := parser.Err()
			if err == nil || errors.Is(err, io.EOF) {
				c.log.Debug("Stylesheet verified",
					zap.String("source", source),
					zap.Int("rules", rules),
					zap.Int("declarations", decls))
				return nil
			}
			return fmt.Errorf("invalid css in %s: %w", source, err)
		case css.BeginRulesetGrammar, css.BeginAtRuleGrammar:
			rules++
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			decls++
		}
	}
}

// CheckSheet verifies every top-level item of a stylesheet separately, so a
// failure names the offending item instead of the whole sheet. All failures
// are reported, not just the first one.
func (c *Checker) CheckSheet(s *Stylesheet, source string) error {
	var result error
	for i := range s.Items {
		one := &Stylesheet{Items: s.Items[i : i+1]}
		if err := c.Check([]byte(one.String()), fmt.Sprintf("%s item %d", source, i)); err != nil {
			multierr.AppendInto(&result, err)
		}
	}
	return result
}
