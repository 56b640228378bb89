package menu

import (
	"context"
	"fmt"
)

// MainAction is a choice of the main menu
type MainAction int

const (
	MainCheckStatus MainAction = iota
	MainGetLink
	MainAddLink
	MainSearchLink
	MainDeleteLink
	MainOther
	MainExit
)

var mainActions = []MainAction{
	MainCheckStatus,
	MainGetLink,
	MainAddLink,
	MainSearchLink,
	MainDeleteLink,
	MainOther,
	MainExit,
}

func (a MainAction) String() string {
	switch a {
	case MainCheckStatus:
		return "Check Status"
	case MainGetLink:
		return "Get Link"
	case MainAddLink:
		return "Add Link"
	case MainSearchLink:
		return "Search Link"
	case MainDeleteLink:
		return "Delete Link"
	case MainOther:
		return "Other"
	case MainExit:
		return "Exit"
	default:
		return fmt.Sprintf("MainAction(%d)", int(a))
	}
}

// LinkAction is a choice offered for a single resolved link
type LinkAction int

const (
	LinkMarkComplete LinkAction = iota
	LinkSkip
	LinkDelete
	LinkMainMenu
	LinkExit
)

// reviewActions follow Get Link and Search Link
var reviewActions = []LinkAction{
	LinkMarkComplete,
	LinkSkip,
	LinkDelete,
	LinkMainMenu,
	LinkExit,
}

// removeActions follow Delete Link
var removeActions = []LinkAction{
	LinkDelete,
	LinkMainMenu,
	LinkExit,
}

func (a LinkAction) String() string {
	switch a {
	case LinkMarkComplete:
		return "Mark As Complete?"
	case LinkSkip:
		return "Skip And Go To Main Menu?"
	case LinkDelete:
		return "Delete Link?"
	case LinkMainMenu:
		return "Main Menu"
	case LinkExit:
		return "Exit"
	default:
		return fmt.Sprintf("LinkAction(%d)", int(a))
	}
}

// OtherAction is a choice of the listing and bulk reset menu
type OtherAction int

const (
	OtherShowAll OtherAction = iota
	OtherShowCompleted
	OtherShowSkipped
	OtherSkippedToIncomplete
	OtherCompletedToIncomplete
	OtherMainMenu
	OtherExit
)

var otherActions = []OtherAction{
	OtherShowAll,
	OtherShowCompleted,
	OtherShowSkipped,
	OtherSkippedToIncomplete,
	OtherCompletedToIncomplete,
	OtherMainMenu,
	OtherExit,
}

func (a OtherAction) String() string {
	switch a {
	case OtherShowAll:
		return "Show All Links?"
	case OtherShowCompleted:
		return "Show Completed Links?"
	case OtherShowSkipped:
		return "Show Skipped Links?"
	case OtherSkippedToIncomplete:
		return "Change All Skipped Links to Incomplete?"
	case OtherCompletedToIncomplete:
		return "Change All Completed Links to Incomplete?"
	case OtherMainMenu:
		return "Main Menu"
	case OtherExit:
		return "Exit"
	default:
		return fmt.Sprintf("OtherAction(%d)", int(a))
	}
}

// labelsOf returns the display labels of options, in order
func labelsOf[T fmt.Stringer](options []T) []string {
	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = option.String()
	}
	return labels
}

// choose asks p to pick one of options and returns the picked action.
// The prompter answers with an index, so labels are never parsed back.
func choose[T fmt.Stringer](ctx context.Context, p Prompter, label string, options []T) (T, error) {
	var zero T

	i, err := p.Choose(label, labelsOf(options))
	if err != nil {
		return zero, err
	}
	// A signal may arrive while the prompt is open
	if err := guard(ctx); err != nil {
		return zero, err
	}
	if i < 0 || i >= len(options) {
		return zero, fmt.Errorf("option %d out of range", i)
	}
	return options[i], nil
}
