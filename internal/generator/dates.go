package generator

// DateFragments holds the pieces cut out of a date of birth. Any field may
// be empty.
type DateFragments struct {
	Day   string
	Month string
	Year  string
}

// ExtractDateFragments splits DDMMYYYY or YYYY. Other lengths yield empty
// fragments; values are not range checked.
func ExtractDateFragments(dob string) DateFragments {
	switch len(dob) {
	case 8:
		return DateFragments{
			Day:   dob[:2],
			Month: dob[2:4],
			Year:  dob[4:],
		}
	case 4:
		return DateFragments{Year: dob}
	default:
		return DateFragments{}
	}
}
