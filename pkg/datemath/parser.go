package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "end of day", "tonight":
		return p.endOfDay(baseTime), nil
	case "tomorrow":
		return p.endOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "next week":
		return p.endOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "end of week", "this week":
		return p.endOfWeek(baseTime), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") || strings.HasPrefix(relative, "by ") ||
		strings.HasPrefix(relative, "on ") || strings.HasPrefix(relative, "this ") {
		return p.parseWeekday(relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognized relative date: %q", relative)
}

// FindMentions scans free text for relative date phrases and resolves
// each against baseTime. Used to surface deadline mentions in context entries.
func (p *Parser) FindMentions(text string, baseTime time.Time) []Mention {
	var mentions []Mention
	lower := strings.ToLower(text)

	for _, match := range mentionRe.FindAllString(lower, -1) {
		resolved, err := p.Parse(match, baseTime)
		if err != nil {
			continue
		}
		mentions = append(mentions, Mention{Phrase: match, AbsoluteTime: resolved})
	}

	return mentions
}

var (
	inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months|hour|hours)`)
	mentionRe    = regexp.MustCompile(
		`\b(today|tonight|tomorrow|next week|end of (?:day|week)|in \d+ (?:days?|weeks?|months?|hours?)|(?:next|by|on|this) (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`)
)

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "hour"):
		return baseTime.Add(time.Duration(amount) * time.Hour), nil
	case strings.HasPrefix(unit, "day"):
		return p.endOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.endOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.endOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseWeekday handles patterns like "next monday", "by friday", "on tuesday".
func (p *Parser) parseWeekday(relative string, baseTime time.Time) (time.Time, error) {
	fields := strings.Fields(relative)
	if len(fields) != 2 {
		return baseTime, fmt.Errorf("invalid weekday format: %q", relative)
	}

	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	target, ok := weekdays[fields[1]]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", fields[1])
	}

	base := baseTime.In(p.location)
	days := int(target-base.Weekday()+7) % 7
	// "next monday" on a Monday means a week out; "by monday" means today.
	if days == 0 && fields[0] == "next" {
		days = 7
	}

	return p.endOfDay(base.AddDate(0, 0, days)), nil
}

// endOfDay returns 17:00 local on t's day, a working-day deadline default.
func (p *Parser) endOfDay(t time.Time) time.Time {
	local := t.In(p.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 17, 0, 0, 0, p.location)
}

// endOfWeek returns end of day on the coming Friday.
func (p *Parser) endOfWeek(t time.Time) time.Time {
	local := t.In(p.location)
	days := int(time.Friday-local.Weekday()+7) % 7
	return p.endOfDay(local.AddDate(0, 0, days))
}
