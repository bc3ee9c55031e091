package claim_form

import (
	"fmt"

	"nurse-roster/internal/roster"
	"nurse-roster/internal/service/overtime"
)

const displayDate = "02/01/2006"

// BuildFields maps a monthly summary onto the field names of the OT claim PDF
// template. The names are fixed by the template and must not change.
func BuildFields(summary *overtime.Summary) map[string]string {
	fields := make(map[string]string)

	if n := summary.Nurse; n != nil {
		fields["name"] = n.Name
		fields["employee_no"] = n.EmployeeNo
		fields["ward"] = n.Ward
		fields["rank"] = n.Rank
	}
	fields["period_from"] = reformat(summary.StartDate)
	fields["period_to"] = reformat(summary.EndDate)

	for i, week := range summary.Weeks {
		w := i + 1

		for j, d := range week.Days {
			day := j + 1

			fields[fmt.Sprintf("week%d_date%d", w, day)] = reformat(d.Date)
			fields[fmt.Sprintf("week%d_in%d", w, day)] = d.DutyIn
			fields[fmt.Sprintf("week%d_out%d", w, day)] = d.DutyOut
			fields[fmt.Sprintf("week%d_hrs%d", w, day)] = d.DutyHrs
			fields[fmt.Sprintf("week%d_otin%d", w, day)] = d.OTIn
			fields[fmt.Sprintf("week%d_otout%d", w, day)] = d.OTOut
			fields[fmt.Sprintf("week%d_othrs%d", w, day)] = d.OTHrs
			fields[fmt.Sprintf("week%d_reason%d", w, day)] = d.Reason
		}

		fields[fmt.Sprintf("week%d_range", w)] = week.Range
		putBoxes(fields, fmt.Sprintf("week%d_", w), week.Stats)
	}

	putBoxes(fields, "total_", summary.MonthlyStats)

	return fields
}

func putBoxes(fields map[string]string, prefix string, s roster.Stats) {
	fields[prefix+"box1"] = roster.FormatHours(s.Box1)
	fields[prefix+"box2"] = roster.FormatHours(s.Box2)
	fields[prefix+"box3"] = roster.FormatHours(s.Box3)
	fields[prefix+"box4"] = roster.FormatHours(s.Box4)
}

// в форме даты в формате дд/мм/гггг
func reformat(isoDate string) string {
	d, err := roster.ParseDate(isoDate)
	if err != nil {
		return isoDate
	}
	return d.Format(displayDate)
}
