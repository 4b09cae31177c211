package models

// ClinicSlots is the fixed ordered list of bookable consultation slots:
// a morning block, a midday gap, and an evening block.
var ClinicSlots = []string{
	"09:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"12:00 PM",
	"12:30 PM",
	"05:00 PM",
	"05:30 PM",
	"06:00 PM",
	"06:30 PM",
	"07:00 PM",
	"07:30 PM",
	"08:00 PM",
	"08:30 PM",
}

// DayAvailability is the response of the slot availability endpoint for one
// calendar date.
type DayAvailability struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	AllBlocked     bool     `json:"allBlocked"`
	BlockReason    string   `json:"blockReason,omitempty"`
}
