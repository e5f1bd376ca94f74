package extract

import (
	"strconv"
	"strings"

	"github.com/pwalkowski/richmark"
)

// fieldRef names the offending markup in error messages so the document
// author can locate it: base identifier, instance ID, field type.
type fieldRef struct {
	base  string
	id    string
	field string
}

func (r fieldRef) String() string {
	if r.id == "" {
		return r.base + "-" + r.field
	}
	return r.base + "-" + r.id + "-" + r.field
}

func (e *Engine) ref(kind richmark.Kind, id, field string) fieldRef {
	return fieldRef{base: e.cfg.BaseID(kind), id: id, field: field}
}

// wrapRef prefixes an error message with the offending field reference.
func wrapRef(ref fieldRef, err error) error {
	if err == nil {
		return nil
	}
	return richmark.Errorf(richmark.ErrorCode(err), "%s: %s", ref, richmark.ErrorMessage(err))
}

// parseFloat parses a numeric field value. Failures are structural: the
// whole invocation fails rather than emitting a partial record.
func parseFloat(ref fieldRef, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, richmark.Errorf(richmark.EINVALID, "%s: %q is not a number", ref, raw)
	}
	return v, nil
}

func parseInt(ref fieldRef, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, richmark.Errorf(richmark.EINVALID, "%s: %q is not an integer", ref, raw)
	}
	return v, nil
}

// imageField reads an image element's src attribute. A marked image
// without src is a structural error.
func imageField(ref fieldRef, el richmark.Element) (string, error) {
	src, ok := el.Attr("src")
	if !ok || src == "" {
		return "", richmark.Errorf(richmark.EINVALID, "%s: image element has no src", ref)
	}
	return src, nil
}

// linkField reads a link element's href attribute.
func linkField(ref fieldRef, el richmark.Element) (string, error) {
	href, ok := el.Attr("href")
	if !ok || href == "" {
		return "", richmark.Errorf(richmark.EINVALID, "%s: link element has no href", ref)
	}
	return href, nil
}

// dataField reads a data-* attribute, falling back to the element text.
func dataField(el richmark.Element, name string) string {
	if v, ok := el.Data(name); ok && v != "" {
		return v
	}
	return el.Text()
}

// enumField maps a data-value attribute (or the element text) through a
// closed enumeration. Unknown values are structural errors, not stray
// classes.
func enumField(ref fieldRef, el richmark.Element, values map[string]string) (string, error) {
	raw := strings.ToLower(strings.TrimSpace(dataField(el, "value")))
	if v, ok := values[raw]; ok {
		return v, nil
	}
	return "", richmark.Errorf(richmark.EINVALID, "%s: unknown value %q", ref, raw)
}

// availabilityValues maps authored availability flags to schema.org URLs.
var availabilityValues = map[string]string{
	"instock":    "https://schema.org/InStock",
	"outofstock": "https://schema.org/OutOfStock",
	"preorder":   "https://schema.org/PreOrder",
	"soldout":    "https://schema.org/SoldOut",
}

// conditionValues maps authored condition flags to schema.org URLs.
var conditionValues = map[string]string{
	"new":         "https://schema.org/NewCondition",
	"used":        "https://schema.org/UsedCondition",
	"refurbished": "https://schema.org/RefurbishedCondition",
}

// attendanceValues maps authored attendance flags to schema.org enums.
var attendanceValues = map[string]string{
	"offline": richmark.AttendanceOffline,
	"online":  richmark.AttendanceOnline,
	"mixed":   richmark.AttendanceMixed,
}

// eventStatusValues maps authored status flags to schema.org enums.
var eventStatusValues = map[string]string{
	"scheduled":   richmark.EventScheduled,
	"cancelled":   richmark.EventCancelled,
	"movedonline": richmark.EventMovedOnline,
	"postponed":   richmark.EventPostponed,
	"rescheduled": richmark.EventRescheduled,
}

// ratingField extracts an aggregate rating from a marked element:
// data-value, data-best (default 5) and data-count (default 1).
func ratingField(ref fieldRef, el richmark.Element) (*richmark.AggregateRating, error) {
	value, err := parseFloat(ref, dataField(el, "value"))
	if err != nil {
		return nil, err
	}
	rating := &richmark.AggregateRating{Value: value, Best: 5, Count: 1}
	if raw, ok := el.Data("best"); ok {
		if rating.Best, err = parseFloat(ref, raw); err != nil {
			return nil, err
		}
	}
	if raw, ok := el.Data("count"); ok {
		if rating.Count, err = parseInt(ref, raw); err != nil {
			return nil, err
		}
	}
	return rating, nil
}

// reviewField extracts a review from a marked element: data-author,
// data-author-type, data-publisher, data-rating, data-best; the element
// text is the review body.
func reviewField(ref fieldRef, el richmark.Element) (richmark.Review, error) {
	review := richmark.Review{AuthorType: "Person", Best: 5}
	if v, ok := el.Data("author"); ok {
		review.Author = v
	}
	if v, ok := el.Data("authortype"); ok {
		review.AuthorType = v
	}
	if v, ok := el.Data("publisher"); ok {
		review.Publisher = v
	}
	raw, ok := el.Data("rating")
	if !ok {
		return richmark.Review{}, richmark.Errorf(richmark.EINVALID, "%s: review has no data-rating", ref)
	}
	rating, err := parseFloat(ref, raw)
	if err != nil {
		return richmark.Review{}, err
	}
	review.Rating = rating
	if v, ok := el.Data("best"); ok {
		if review.Best, err = parseFloat(ref, v); err != nil {
			return richmark.Review{}, err
		}
	}
	review.Body = StripText(el.Text())
	return review, nil
}

// hoursField extracts one opening-hours specification from text such as
// "Fri-Mon (09:00AM - 05:00PM)". The range is 12-hour when the text
// carries an AM/PM marker, 24-hour otherwise.
func hoursField(ref fieldRef, el richmark.Element) (richmark.OpeningHours, error) {
	text := el.Text()
	dayPart := text
	if i := strings.IndexByte(text, '('); i >= 0 {
		dayPart = text[:i]
	}
	days, err := ParseWeekdaySpec(dayPart)
	if err != nil {
		return richmark.OpeningHours{}, richmark.Errorf(richmark.EINVALID, "%s: %s", ref, richmark.ErrorMessage(err))
	}
	twelveHour := strings.Contains(strings.ToUpper(text), "AM") || strings.Contains(strings.ToUpper(text), "PM")
	opens, closes, err := TimeRange(text, twelveHour)
	if err != nil {
		return richmark.OpeningHours{}, richmark.Errorf(richmark.EINVALID, "%s: %s", ref, richmark.ErrorMessage(err))
	}
	return richmark.OpeningHours{Days: days, Opens: opens, Closes: closes}, nil
}

// businessField dispatches the field types shared by place-like kinds
// into the BusinessMeta sub-record. Reports whether the field was
// handled.
func businessField(ref fieldRef, meta *richmark.BusinessMeta, field string, el richmark.Element) (bool, error) {
	switch field {
	case "telephone":
		meta.Telephone = strings.TrimSpace(el.Text())
	case "pricerange":
		meta.PriceRange = strings.TrimSpace(el.Text())
	case "address":
		addr, err := ParseAddress(el.Text())
		if err != nil {
			return false, richmark.Errorf(richmark.EINVALID, "%s: %s", ref, richmark.ErrorMessage(err))
		}
		meta.Address = addr
	case "hours":
		spec, err := hoursField(ref, el)
		if err != nil {
			return false, err
		}
		meta.OpeningHours = append(meta.OpeningHours, spec)
	case "map":
		src, err := imageField(ref, el)
		if err != nil {
			return false, richmark.Errorf(richmark.EINVALID, "%s: map element has no src", ref)
		}
		geo, err := Geo(src)
		if err != nil {
			return false, richmark.Errorf(richmark.EINVALID, "%s: %s", ref, richmark.ErrorMessage(err))
		}
		meta.Geo = geo
	default:
		return false, nil
	}
	return true, nil
}
