package linkage

import "strings"

// columnAliases maps each logical field to the header phrases seen across
// the application-form exports, most specific first. The long entries are
// the literal MS Forms question texts.
var columnAliases = map[string][]string{
	"name":            {"Please provide your full name", "Full Name", "Name", "Candidate Name"},
	"email":           {"What is your email address?", "Email Address", "Email"},
	"phone":           {"Please enter your phone number", "Phone Number", "Phone", "Contact Number"},
	"county":          {"What county are you based in", "County", "Location"},
	"availability":    {"If you are only able to work part time", "Availability", "Shift availability"},
	"completion_time": {"Completion time", "Submitted at", "Timestamp"},
	"source":          {"Where did you see the job advertisement?", "Source", "Job board"},
	"notes":           {"Anything else you want to tell us?", "Notes", "Additional information"},
}

// AutodetectColumns guesses which spreadsheet header feeds each logical
// field: an exact normalized match wins, otherwise the first header that
// contains the alias as a substring. Fields with no plausible header are
// absent from the result, and callers may override any guess.
func AutodetectColumns(headers []string) map[string]string {
	norm := make(map[string]string, len(headers)) // normalized -> original
	var order []string
	for _, h := range headers {
		n := strings.ToLower(Normalize(h))
		if _, dup := norm[n]; !dup {
			norm[n] = h
			order = append(order, n)
		}
	}

	out := map[string]string{}
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			key := strings.ToLower(Normalize(alias))
			if orig, ok := norm[key]; ok {
				out[field] = orig
				break
			}
			found := ""
			for _, n := range order {
				if strings.Contains(n, key) {
					found = norm[n]
					break
				}
			}
			if found != "" {
				out[field] = found
				break
			}
		}
	}
	return out
}
