package models

import (
	"fmt"
	"strings"
	"time"
)

type CustomerType uint8

const (
	CustomerUnknown CustomerType = iota
	CustomerAdult
	CustomerChild
)

func (t CustomerType) String() string {
	switch t {
	case CustomerAdult:
		return "adults"
	case CustomerChild:
		return "children"
	default:
		return "unknown"
	}
}

// ParseCustomerType accepts the plural names used by booking front-ends as
// well as the singular forms.
func ParseCustomerType(value string) (CustomerType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "adults", "adult":
		return CustomerAdult, nil
	case "children", "child":
		return CustomerChild, nil
	default:
		return CustomerUnknown, fmt.Errorf("unknown customer type %q", value)
	}
}

func (t CustomerType) MarshalText() ([]byte, error) {
	if t == CustomerUnknown {
		return nil, fmt.Errorf("unknown customer type")
	}
	return []byte(t.String()), nil
}

func (t *CustomerType) UnmarshalText(text []byte) error {
	parsed, err := ParseCustomerType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Distribution is the requested occupancy of one room.
type Distribution struct {
	Adults    int   `json:"adults"`
	Children  int   `json:"children"`
	ChildAges []int `json:"child_ages,omitempty"`
}

type Customer struct {
	ID        string       `json:"id"`
	Type      CustomerType `json:"customer_type"`
	Birthdate time.Time    `json:"birthdate"`
}
