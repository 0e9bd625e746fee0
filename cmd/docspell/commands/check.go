package commands

import (
	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	SpellFlags
	FailOnErrors bool `name:"fail-on-errors" help:"Exit with status 3 when unknown words were reported"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, dictFS, err := loadConfig(g, root, c.SpellFlags)
	if err != nil {
		return err
	}

	result, err := newRunner(cfg, dictFS, g.logger()).check()
	if err != nil {
		return err
	}
	if c.FailOnErrors && result.HasErrors() {
		return errors.SpellingError(result.Errors, len(result.UnknownWords)).Build()
	}
	return nil
}
