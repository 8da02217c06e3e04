package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Status is the order lifecycle state. The zero value is invalid.
type Status uint8

const (
	StatusPending Status = iota + 1
	StatusShipped
	StatusDelivered
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusPending:   "Pending",
	StatusShipped:   "Shipped",
	StatusDelivered: "Delivered",
	StatusCancelled: "Cancelled",
}

// transitions lists the allowed next states; absent states are terminal.
var transitions = map[Status][]Status{
	StatusPending: {StatusShipped, StatusCancelled},
	StatusShipped: {StatusDelivered},
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseStatus converts a status name (case-insensitive) into a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown order status %q", s)
}

func (s Status) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid order status %d", uint8(s))
	}
	return s.String(), nil
}

func (s *Status) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into order status", src)
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
