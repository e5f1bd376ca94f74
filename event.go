package richmark

// Event attendance modes (schema.org EventAttendanceModeEnumeration).
const (
	AttendanceOffline = "OfflineEventAttendanceMode"
	AttendanceOnline  = "OnlineEventAttendanceMode"
	AttendanceMixed   = "MixedEventAttendanceMode"
)

// Event statuses (schema.org EventStatusType).
const (
	EventScheduled   = "EventScheduled"
	EventCancelled   = "EventCancelled"
	EventMovedOnline = "EventMovedOnline"
	EventPostponed   = "EventPostponed"
	EventRescheduled = "EventRescheduled"
)

// EventLocation is a physical or virtual event venue. A non-empty
// VirtualURL marks a virtual location; Name/Address describe a physical
// one.
type EventLocation struct {
	Name       string         `json:"name,omitempty"`
	Address    *PostalAddress `json:"address,omitempty"`
	VirtualURL string         `json:"virtualUrl,omitempty"`
}

// Event represents one event occurrence on a page.
type Event struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Images         []string       `json:"images,omitempty"`
	Description    string         `json:"description,omitempty"`
	StartDate      string         `json:"startDate"`
	EndDate        string         `json:"endDate,omitempty"`
	AttendanceMode string         `json:"attendanceMode,omitempty"`
	Status         string         `json:"status,omitempty"`
	Location       *EventLocation `json:"location,omitempty"`
	Organizer      string         `json:"organizer,omitempty"`
	OrganizerURL   string         `json:"organizerUrl,omitempty"`
	Performer      string         `json:"performer,omitempty"`
	Offer          *Offer         `json:"offer,omitempty"`
	URL            string         `json:"url"`
}
