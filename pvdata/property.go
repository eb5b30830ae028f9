// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pvdata

import "time"

// PVTimeStamp is a live-value cursor over a time_t sub-record. Attach binds
// it to an existing record; Get/Set then read and write the record's leaves
// in place.
type PVTimeStamp struct {
	seconds *PVScalar
	nanos   *PVScalar
	userTag *PVScalar
}

// Attach binds the cursor to a time_t structure. Returns false and leaves
// the cursor unchanged when p is not a time_t fragment.
func (t *PVTimeStamp) Attach(p *PVStructure) bool {
	if p == nil || !IsTimeStamp(p.structure) {
		return false
	}
	seconds, ok := SubFieldOf[*PVScalar](p, "secondsPastEpoch")
	if !ok {
		return false
	}
	nanos, ok := SubFieldOf[*PVScalar](p, "nanoseconds")
	if !ok {
		return false
	}
	userTag, ok := SubFieldOf[*PVScalar](p, "userTag")
	if !ok {
		return false
	}
	t.seconds, t.nanos, t.userTag = seconds, nanos, userTag
	return true
}

// IsAttached reports whether the cursor is bound to a record.
func (t *PVTimeStamp) IsAttached() bool { return t.seconds != nil }

// Get returns the stored instant. A never-attached cursor reports the zero
// time.
func (t *PVTimeStamp) Get() time.Time {
	if !t.IsAttached() {
		return time.Time{}
	}
	s, _ := ScalarOf[int64](t.seconds)
	n, _ := ScalarOf[int32](t.nanos)
	return time.Unix(s, int64(n))
}

// Set stores an instant. A never-attached cursor ignores the write.
func (t *PVTimeStamp) Set(ts time.Time) {
	if !t.IsAttached() {
		return
	}
	_ = t.seconds.Put(ts.Unix())
	_ = t.nanos.Put(int32(ts.Nanosecond()))
}

// UserTag returns the user tag value.
func (t *PVTimeStamp) UserTag() int32 {
	v, _ := ScalarOf[int32](t.userTag)
	return v
}

// SetUserTag stores the user tag value.
func (t *PVTimeStamp) SetUserTag(tag int32) {
	if !t.IsAttached() {
		return
	}
	_ = t.userTag.Put(tag)
}

// PVAlarm is a live-value cursor over an alarm_t sub-record.
type PVAlarm struct {
	severity *PVScalar
	status   *PVScalar
	message  *PVScalar
}

// Attach binds the cursor to an alarm_t structure. Returns false and leaves
// the cursor unchanged when p is not an alarm_t fragment.
func (a *PVAlarm) Attach(p *PVStructure) bool {
	if p == nil || !IsAlarm(p.structure) {
		return false
	}
	severity, ok := SubFieldOf[*PVScalar](p, "severity")
	if !ok {
		return false
	}
	status, ok := SubFieldOf[*PVScalar](p, "status")
	if !ok {
		return false
	}
	message, ok := SubFieldOf[*PVScalar](p, "message")
	if !ok {
		return false
	}
	a.severity, a.status, a.message = severity, status, message
	return true
}

// IsAttached reports whether the cursor is bound to a record.
func (a *PVAlarm) IsAttached() bool { return a.severity != nil }

// Get returns severity, status and message.
func (a *PVAlarm) Get() (severity, status int32, message string) {
	severity, _ = ScalarOf[int32](a.severity)
	status, _ = ScalarOf[int32](a.status)
	message, _ = ScalarOf[string](a.message)
	return severity, status, message
}

// Set stores severity, status and message.
func (a *PVAlarm) Set(severity, status int32, message string) {
	if !a.IsAttached() {
		return
	}
	_ = a.severity.Put(severity)
	_ = a.status.Put(status)
	_ = a.message.Put(message)
}

// PVDisplay is a live-value cursor over a display_t sub-record.
type PVDisplay struct {
	limitLow    *PVScalar
	limitHigh   *PVScalar
	description *PVScalar
	format      *PVScalar
	units       *PVScalar
}

// Attach binds the cursor to a display_t structure. Returns false and
// leaves the cursor unchanged when p is not a display_t fragment.
func (d *PVDisplay) Attach(p *PVStructure) bool {
	if p == nil || !IsDisplay(p.structure) {
		return false
	}
	limitLow, ok := SubFieldOf[*PVScalar](p, "limitLow")
	if !ok {
		return false
	}
	limitHigh, ok := SubFieldOf[*PVScalar](p, "limitHigh")
	if !ok {
		return false
	}
	description, ok := SubFieldOf[*PVScalar](p, "description")
	if !ok {
		return false
	}
	format, ok := SubFieldOf[*PVScalar](p, "format")
	if !ok {
		return false
	}
	units, ok := SubFieldOf[*PVScalar](p, "units")
	if !ok {
		return false
	}
	d.limitLow, d.limitHigh = limitLow, limitHigh
	d.description, d.format, d.units = description, format, units
	return true
}

// IsAttached reports whether the cursor is bound to a record.
func (d *PVDisplay) IsAttached() bool { return d.limitLow != nil }

// Limits returns the display limits.
func (d *PVDisplay) Limits() (low, high float64) {
	low, _ = ScalarOf[float64](d.limitLow)
	high, _ = ScalarOf[float64](d.limitHigh)
	return low, high
}

// SetLimits stores the display limits.
func (d *PVDisplay) SetLimits(low, high float64) {
	if !d.IsAttached() {
		return
	}
	_ = d.limitLow.Put(low)
	_ = d.limitHigh.Put(high)
}

// Description returns the description text.
func (d *PVDisplay) Description() string {
	v, _ := ScalarOf[string](d.description)
	return v
}

// SetDescription stores the description text.
func (d *PVDisplay) SetDescription(text string) {
	if !d.IsAttached() {
		return
	}
	_ = d.description.Put(text)
}

// Format returns the display format string.
func (d *PVDisplay) Format() string {
	v, _ := ScalarOf[string](d.format)
	return v
}

// SetFormat stores the display format string.
func (d *PVDisplay) SetFormat(format string) {
	if !d.IsAttached() {
		return
	}
	_ = d.format.Put(format)
}

// Units returns the engineering units.
func (d *PVDisplay) Units() string {
	v, _ := ScalarOf[string](d.units)
	return v
}

// SetUnits stores the engineering units.
func (d *PVDisplay) SetUnits(units string) {
	if !d.IsAttached() {
		return
	}
	_ = d.units.Put(units)
}
