package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pwalkowski/richmark"
)

// isoDateTime is the canonical output layout for normalized date values.
const isoDateTime = "2006-01-02T15:04:05-07:00"

// NormalizeDate parses a marked-up date value using the configured layout
// and returns it in canonical ISO 8601 form (YYYY-MM-DDTHH:mm:ss±HH:mm).
func NormalizeDate(value, layout string) (string, error) {
	t, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return "", richmark.Errorf(richmark.EINVALID, "date %q does not match layout %q", value, layout)
	}
	return t.Format(isoDateTime), nil
}

var durationGroupRe = regexp.MustCompile(`(\d+)\s*([A-Za-z]+)`)

// Duration converts free-form duration text ("45 Minutes", "2 Weeks",
// "1 hour 30 mins") into an ISO 8601 duration. Unit markers come from the
// configured scheme; days and weeks are folded into hours.
func Duration(text string, scheme richmark.DurationScheme) (string, error) {
	groups := durationGroupRe.FindAllStringSubmatch(text, -1)
	if len(groups) == 0 {
		return "", richmark.Errorf(richmark.EINVALID, "duration %q contains no numeric value", text)
	}

	total := 0 // minutes
	for _, g := range groups {
		n, err := strconv.Atoi(g[1])
		if err != nil {
			return "", richmark.Errorf(richmark.EINVALID, "duration %q: %q is not a number", text, g[1])
		}
		switch unit := strings.ToLower(g[2]); {
		case containsFold(scheme.Minutes, unit):
			total += n
		case containsFold(scheme.Hours, unit):
			total += n * 60
		case containsFold(scheme.Days, unit):
			total += n * 24 * 60
		case containsFold(scheme.Weeks, unit):
			total += n * 7 * 24 * 60
		default:
			return "", richmark.Errorf(richmark.EINVALID, "duration %q: unknown unit %q", text, g[2])
		}
	}
	return renderDuration(total), nil
}

// AddDurations sums two ISO 8601 durations of the PT{h}H{m}M family.
// Either argument may be empty.
func AddDurations(a, b string) (string, error) {
	ma, err := parseISODuration(a)
	if err != nil {
		return "", err
	}
	mb, err := parseISODuration(b)
	if err != nil {
		return "", err
	}
	if a == "" && b == "" {
		return "", nil
	}
	return renderDuration(ma + mb), nil
}

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

func parseISODuration(d string) (int, error) {
	if d == "" {
		return 0, nil
	}
	m := isoDurationRe.FindStringSubmatch(d)
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, richmark.Errorf(richmark.EINVALID, "invalid ISO 8601 duration %q", d)
	}
	minutes := 0
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		minutes += h * 60
	}
	if m[2] != "" {
		mm, _ := strconv.Atoi(m[2])
		minutes += mm
	}
	return minutes, nil
}

func renderDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("PT%dM", m)
	case m == 0:
		return fmt.Sprintf("PT%dH", h)
	default:
		return fmt.Sprintf("PT%dH%dM", h, m)
	}
}

func containsFold(markers []string, s string) bool {
	for _, m := range markers {
		if strings.EqualFold(m, s) {
			return true
		}
	}
	return false
}

var (
	timeRange12Re = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)\s*[-–]\s*(\d{1,2}):(\d{2})\s*(AM|PM)`)
	timeRange24Re = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[-–]\s*(\d{1,2}):(\d{2})`)
)

// TimeRange extracts an (opens, closes) pair from text such as
// "(09:00AM - 05:00PM)". The two supported formats are mutually
// exclusive: 12-hour with AM/PM markers, or 24-hour. 12-hour values are
// normalized to 24-hour (12AM becomes 00, 12PM stays 12).
func TimeRange(text string, twelveHour bool) (opens, closes string, err error) {
	if twelveHour {
		m := timeRange12Re.FindStringSubmatch(text)
		if m == nil {
			return "", "", richmark.Errorf(richmark.EINVALID, "no 12-hour time range in %q", text)
		}
		opens, err = to24Hour(m[1], m[2], m[3])
		if err != nil {
			return "", "", err
		}
		closes, err = to24Hour(m[4], m[5], m[6])
		if err != nil {
			return "", "", err
		}
		return opens, closes, nil
	}

	m := timeRange24Re.FindStringSubmatch(text)
	if m == nil {
		return "", "", richmark.Errorf(richmark.EINVALID, "no 24-hour time range in %q", text)
	}
	oh, _ := strconv.Atoi(m[1])
	ch, _ := strconv.Atoi(m[3])
	if oh > 23 || ch > 23 {
		return "", "", richmark.Errorf(richmark.EINVALID, "invalid 24-hour value in %q", text)
	}
	return fmt.Sprintf("%02d:%s", oh, m[2]), fmt.Sprintf("%02d:%s", ch, m[4]), nil
}

func to24Hour(hh, mm, meridiem string) (string, error) {
	h, err := strconv.Atoi(hh)
	if err != nil || h < 1 || h > 12 {
		return "", richmark.Errorf(richmark.EINVALID, "invalid 12-hour value %q", hh)
	}
	if strings.EqualFold(meridiem, "PM") {
		if h != 12 {
			h += 12
		}
	} else if h == 12 {
		h = 0
	}
	return fmt.Sprintf("%02d:%s", h, mm), nil
}

// ExpandDayRange expands a weekday range into the days it covers. When the
// end day precedes the start chronologically the range wraps across the
// week boundary via circular rotation: Fri-Mon yields
// [Friday, Saturday, Sunday, Monday].
func ExpandDayRange(start, end richmark.Weekday) []richmark.Weekday {
	week := richmark.Week()
	si, ei := dayIndex(start), dayIndex(end)
	if si < 0 || ei < 0 {
		return nil
	}
	var days []richmark.Weekday
	for i := si; ; i = (i + 1) % len(week) {
		days = append(days, week[i])
		if i == ei {
			return days
		}
	}
}

func dayIndex(d richmark.Weekday) int {
	for i, w := range richmark.Week() {
		if w == d {
			return i
		}
	}
	return -1
}

// ParseWeekdaySpec parses a day specification such as "Fri-Mon",
// "Mon,Wed,Fri" or "Saturday". Day names match on their first three
// letters, case-insensitively.
func ParseWeekdaySpec(text string) ([]richmark.Weekday, error) {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, "-–"); i >= 0 && !strings.Contains(text, ",") {
		start, err := parseWeekday(text[:i])
		if err != nil {
			return nil, err
		}
		// The separator may be a multi-byte dash; skip its full width.
		_, width := utf8.DecodeRuneInString(text[i:])
		end, err := parseWeekday(text[i+width:])
		if err != nil {
			return nil, err
		}
		return ExpandDayRange(start, end), nil
	}

	var days []richmark.Weekday
	for _, part := range strings.Split(text, ",") {
		d, err := parseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func parseWeekday(s string) (richmark.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return "", richmark.Errorf(richmark.EINVALID, "unknown weekday %q", s)
	}
	for _, w := range richmark.Week() {
		if strings.HasPrefix(strings.ToLower(string(w)), s[:3]) {
			return w, nil
		}
	}
	return "", richmark.Errorf(richmark.EINVALID, "unknown weekday %q", s)
}

// ParseAddress splits comma-separated address text into a PostalAddress.
// Segments are assigned positionally: street, locality, region, postal
// code, country. Missing trailing segments stay empty.
func ParseAddress(text string) (*richmark.PostalAddress, error) {
	var parts []string
	for _, p := range strings.Split(text, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil, richmark.Errorf(richmark.EINVALID, "empty postal address")
	}

	addr := &richmark.PostalAddress{Street: parts[0]}
	if len(parts) > 1 {
		addr.Locality = parts[1]
	}
	if len(parts) > 2 {
		addr.Region = parts[2]
	}
	if len(parts) > 3 {
		addr.PostalCode = parts[3]
	}
	if len(parts) > 4 {
		addr.Country = parts[4]
	}
	return addr, nil
}

// Geo extracts geocoordinates from a map embed URL. Embed URLs carry the
// longitude after the "!2d" marker and the latitude after "!3d",
// terminated by the next "!" (often "!2m"). Callers must supply URLs in
// the embed format; this is positional extraction, not general URL
// parameter decoding.
func Geo(embedURL string) (*richmark.GeoCoordinates, error) {
	lng, err := embedCoordinate(embedURL, "!2d")
	if err != nil {
		return nil, err
	}
	lat, err := embedCoordinate(embedURL, "!3d")
	if err != nil {
		return nil, err
	}
	return &richmark.GeoCoordinates{Latitude: lat, Longitude: lng}, nil
}

func embedCoordinate(embedURL, marker string) (float64, error) {
	i := strings.Index(embedURL, marker)
	if i < 0 {
		return 0, richmark.Errorf(richmark.EINVALID, "map embed URL missing %q marker", marker)
	}
	rest := embedURL[i+len(marker):]
	if j := strings.Index(rest, "!"); j >= 0 {
		rest = rest[:j]
	}
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, richmark.Errorf(richmark.EINVALID, "map embed URL: %q is not a coordinate", rest)
	}
	return v, nil
}

// maxDescription caps stripped long-text fields.
const maxDescription = 5000

// StripText collapses whitespace in free-form text and truncates it to
// maxDescription runes on a word boundary.
func StripText(text string) string {
	fields := strings.FieldsFunc(text, unicode.IsSpace)
	out := strings.Join(fields, " ")
	if len(out) <= maxDescription {
		return out
	}

	runes := 0
	end := len(out)
	for i := range out {
		if runes == maxDescription {
			end = i
			break
		}
		runes++
	}
	if end == len(out) {
		return out
	}
	cut := out[:end]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut
}

// MatchCategory returns the first canonical category partially matching
// the value: either string contains the other, case-insensitively. When
// nothing matches, the trimmed value is returned as-is.
func MatchCategory(value string, canonical []string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, c := range canonical {
		cl := strings.ToLower(c)
		if strings.Contains(v, cl) || strings.Contains(cl, v) {
			return c
		}
	}
	return strings.TrimSpace(value)
}
