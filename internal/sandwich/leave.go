package sandwich

import (
	"fmt"
	"strings"
)

// LeaveType is the closed set of leave categories the sandwich rule covers.
type LeaveType string

const (
	EarnedLeave     LeaveType = "EL"
	MarriageLeave   LeaveType = "Marriage Leave"
	CompOff         LeaveType = "Comp-Off"
	LeaveWithoutPay LeaveType = "LWP"
)

// LeaveTypes lists every known leave type in display order.
var LeaveTypes = []LeaveType{EarnedLeave, MarriageLeave, CompOff, LeaveWithoutPay}

// Valid reports whether t is one of the known leave types.
func (t LeaveType) Valid() bool {
	for _, known := range LeaveTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseLeaveType accepts the canonical names and their short forms (EL, ML, CO, LWP).
func ParseLeaveType(s string) (LeaveType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "EL":
		return EarnedLeave, nil
	case "ML", "MARRIAGE LEAVE", "MARRIAGE":
		return MarriageLeave, nil
	case "CO", "COMP-OFF", "COMPOFF":
		return CompOff, nil
	case "LWP":
		return LeaveWithoutPay, nil
	}
	return "", fmt.Errorf("unknown leave type: %s (use EL, ML, CO or LWP)", s)
}
