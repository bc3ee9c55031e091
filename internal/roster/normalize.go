package roster

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// DayRecord - запись одного календарного дня в том виде, в каком она хранится.
type DayRecord struct {
	Shifts           []ShiftCode          `json:"shifts"`
	Type             DayType              `json:"type"`
	CustomStartTimes map[ShiftCode]string `json:"customStartTimes,omitempty"`
	CustomEndTimes   map[ShiftCode]string `json:"customEndTimes,omitempty"`
}

// ShiftsMap maps ISO dates (yyyy-MM-dd) to day records. Absent dates mean
// no shift and no leave.
type ShiftsMap map[string]DayRecord

type Warning struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}

type dayRecordJSON struct {
	Shifts           []ShiftCode          `json:"shifts"`
	Type             *DayType             `json:"type"`
	CustomStartTimes map[ShiftCode]string `json:"customStartTimes,omitempty"`
	CustomEndTimes   map[ShiftCode]string `json:"customEndTimes,omitempty"`
}

// UnmarshalJSON accepts the legacy bare-string form ("DN"), null and the
// structured object.
func (r *DayRecord) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = emptyRecord()
		return nil
	}

	if data[0] == '"' {
		var code string
		if err := json.Unmarshal(data, &code); err != nil {
			return err
		}
		*r = emptyRecord()
		if code != "" {
			r.Shifts = []ShiftCode{ShiftCode(code)}
		}
		return nil
	}

	var aux dayRecordJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*r = DayRecord{
		Shifts:           aux.Shifts,
		CustomStartTimes: aux.CustomStartTimes,
		CustomEndTimes:   aux.CustomEndTimes,
	}
	if r.Shifts == nil {
		r.Shifts = []ShiftCode{}
	}
	if aux.Type != nil {
		r.Type = *aux.Type
	}

	return nil
}

// MarshalJSON пишет пустой тип как null, как это делает фронтенд.
func (r DayRecord) MarshalJSON() ([]byte, error) {
	aux := dayRecordJSON{
		Shifts:           r.Shifts,
		CustomStartTimes: r.CustomStartTimes,
		CustomEndTimes:   r.CustomEndTimes,
	}
	if aux.Shifts == nil {
		aux.Shifts = []ShiftCode{}
	}
	if r.Type != NoType {
		t := r.Type
		aux.Type = &t
	}
	return json.Marshal(aux)
}

// Normalize coerces a stored payload into a DayRecord. It never fails:
// a payload that cannot be decoded yields the empty record.
func Normalize(raw []byte) DayRecord {
	rec, err := decodeRecord(raw)
	if err != nil {
		return emptyRecord()
	}
	return rec
}

// NormalizeMap normalizes every stored day once, at the map boundary.
// Undecodable days are replaced by the empty record and reported.
func NormalizeMap(raw map[string]json.RawMessage) (ShiftsMap, []Warning) {
	out := make(ShiftsMap, len(raw))
	var warnings []Warning

	for _, date := range slices.Sorted(maps.Keys(raw)) {
		rec, err := decodeRecord(raw[date])
		if err != nil {
			warnings = append(warnings, Warning{
				Date:    date,
				Message: fmt.Sprintf("unreadable day record ignored: %v", err),
			})
			rec = emptyRecord()
		}
		out[date] = rec
	}

	return out, warnings
}

func decodeRecord(raw []byte) (DayRecord, error) {
	var rec DayRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return DayRecord{}, err
	}
	return rec, nil
}

func emptyRecord() DayRecord {
	return DayRecord{Shifts: []ShiftCode{}}
}

func (r DayRecord) Has(code ShiftCode) bool {
	return slices.Contains(r.Shifts, code)
}

func (r DayRecord) HasNight() bool {
	return slices.ContainsFunc(r.Shifts, IsNight)
}

func (r DayRecord) IsEmpty() bool {
	return len(r.Shifts) == 0 && r.Type == NoType
}

// Clone returns a deep copy safe to mutate.
func (r DayRecord) Clone() DayRecord {
	c := DayRecord{
		Shifts: slices.Clone(r.Shifts),
		Type:   r.Type,
	}
	if c.Shifts == nil {
		c.Shifts = []ShiftCode{}
	}
	if r.CustomStartTimes != nil {
		c.CustomStartTimes = maps.Clone(r.CustomStartTimes)
	}
	if r.CustomEndTimes != nil {
		c.CustomEndTimes = maps.Clone(r.CustomEndTimes)
	}
	return c
}

// Day returns the normalized record for the date; absent dates give the
// empty record.
func (m ShiftsMap) Day(key string) DayRecord {
	rec, ok := m[key]
	if !ok {
		return emptyRecord()
	}
	if rec.Shifts == nil {
		rec.Shifts = []ShiftCode{}
	}
	return rec
}
