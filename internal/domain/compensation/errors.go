package compensation

import "errors"

var (
	ErrRuleNotFound   = errors.New("compensation rule not found")
	ErrRuleCodeExists = errors.New("compensation rule code already exists")
	ErrRuleInactive   = errors.New("compensation rule is inactive")
)
