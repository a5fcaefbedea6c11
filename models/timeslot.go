package models

// TimeSlot represents a trainer's recurring weekly booking window.
type TimeSlot struct {
	Day          string `bson:"day" json:"day" binding:"required"`                   // weekday name, e.g. "Monday"
	StartingTime string `bson:"startingTime" json:"startingTime" binding:"required"` // wall-clock "15:04"
	EndingTime   string `bson:"endingTime" json:"endingTime" binding:"required"`
}

// Equal reports whether two slots describe the same weekly window.
func (s TimeSlot) Equal(o TimeSlot) bool {
	return s.Day == o.Day && s.StartingTime == o.StartingTime && s.EndingTime == o.EndingTime
}
