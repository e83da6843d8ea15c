package models

import "fmt"

// Condition is the fixed item condition set.
type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
)

// Conditions lists all valid conditions in display order.
func Conditions() []Condition {
	return []Condition{ConditionExcellent, ConditionGood, ConditionFair}
}

// NewCondition validates membership in the fixed condition set.
func NewCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionExcellent, ConditionGood, ConditionFair:
		return Condition(s), nil
	}
	return "", fmt.Errorf("condition %q is not one of the allowed values", s)
}

// String returns the underlying string value.
func (c Condition) String() string {
	return string(c)
}
