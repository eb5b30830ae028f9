// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pvdata

// Identifiers of the cross-cutting convention fragments.
const (
	TimeStampID = "time_t"
	AlarmID     = "alarm_t"
	DisplayID   = "display_t"
	ControlID   = "control_t"
)

// StandardField builds the convention fragments shared by normative types:
// timestamp, alarm, display and control sub-structures. It is stateless;
// the zero value is ready to use.
type StandardField struct {
	create FieldCreate
}

// TimeStamp returns the time_t fragment: secondsPastEpoch, nanoseconds,
// userTag.
func (sf StandardField) TimeStamp() *Structure {
	return sf.create.NewFieldBuilder().
		SetID(TimeStampID).
		Add("secondsPastEpoch", Long).
		Add("nanoseconds", Int).
		Add("userTag", Int).
		CreateStructure()
}

// Alarm returns the alarm_t fragment: severity, status, message.
func (sf StandardField) Alarm() *Structure {
	return sf.create.NewFieldBuilder().
		SetID(AlarmID).
		Add("severity", Int).
		Add("status", Int).
		Add("message", String).
		CreateStructure()
}

// Display returns the display_t fragment: limitLow, limitHigh,
// description, format, units.
func (sf StandardField) Display() *Structure {
	return sf.create.NewFieldBuilder().
		SetID(DisplayID).
		Add("limitLow", Double).
		Add("limitHigh", Double).
		Add("description", String).
		Add("format", String).
		Add("units", String).
		CreateStructure()
}

// Control returns the control_t fragment: limitLow, limitHigh, minStep.
func (sf StandardField) Control() *Structure {
	return sf.create.NewFieldBuilder().
		SetID(ControlID).
		Add("limitLow", Double).
		Add("limitHigh", Double).
		Add("minStep", Double).
		CreateStructure()
}

// IsTimeStamp reports whether f is a time_t fragment.
func IsTimeStamp(f Field) bool { return isFragment(f, TimeStampID) }

// IsAlarm reports whether f is an alarm_t fragment.
func IsAlarm(f Field) bool { return isFragment(f, AlarmID) }

// IsDisplay reports whether f is a display_t fragment.
func IsDisplay(f Field) bool { return isFragment(f, DisplayID) }

// IsControl reports whether f is a control_t fragment.
func IsControl(f Field) bool { return isFragment(f, ControlID) }

// Fragment recognition is by id, not by shape: producers that claim a
// fragment id are trusted to carry its fields.
func isFragment(f Field, id string) bool {
	s, ok := f.(*Structure)
	return ok && s.id == id
}
