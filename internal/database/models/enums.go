package models

// EntryType enumerates the kinds of hours a day entry can carry
type EntryType string

const (
	EntryTypeWork    EntryType = "work"
	EntryTypeSick    EntryType = "sick"
	EntryTypeTimeOff EntryType = "time_off"
)

// IsValid reports whether t is one of the known entry types
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeWork, EntryTypeSick, EntryTypeTimeOff:
		return true
	}
	return false
}
