package tax

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Profile describes the taxpayer asking for upcoming deadlines.
type Profile struct {
	Types []string `json:"types"`
}

// DefaultDaysAhead is the lookup window when the caller gives none.
const DefaultDaysAhead = 60

// Upcoming projects each fixed MM-DD rule onto now's year (rolling to
// next year when the date has already passed), keeps events whose
// resolved date falls within [0, daysAhead] days of now and whose
// targets match the profile, and returns them sorted by resolved date
// ascending with DueDate rewritten to ISO YYYY-MM-DD.
//
// Target matching treats 프리랜서 as 개인사업자, and both as 일반과세자.
func Upcoming(profile Profile, daysAhead int, now time.Time) []Event {
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}

	var upcoming []Event
	for _, event := range fixedEvents {
		month, day, err := parseMonthDay(event.DueDate)
		if err != nil {
			continue
		}
		due := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
		if due.Before(todayOf(now)) {
			due = time.Date(now.Year()+1, time.Month(month), day, 0, 0, 0, 0, now.Location())
		}

		daysUntil := int(due.Sub(todayOf(now)).Hours() / 24)
		if daysUntil < 0 || daysUntil > daysAhead {
			continue
		}
		if !matchesProfile(event.Targets, profile.Types) {
			continue
		}

		resolved := event
		resolved.DueDate = due.Format("2006-01-02")
		upcoming = append(upcoming, resolved)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate < upcoming[j].DueDate
	})
	return upcoming
}

func matchesProfile(targets, types []string) bool {
	for _, target := range targets {
		for _, typ := range types {
			if target == typ {
				return true
			}
			if target == TypeSoleProprietor && typ == TypeFreelancer {
				return true
			}
			if target == TypeGeneralTaxpayer && (typ == TypeSoleProprietor || typ == TypeFreelancer) {
				return true
			}
		}
	}
	return false
}

func parseMonthDay(s string) (month, day int, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid due date %q", s)
	}
	month, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	day, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return month, day, nil
}

func todayOf(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
