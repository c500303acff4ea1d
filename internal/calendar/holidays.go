package calendar

// DefaultFiscalYears returns the built-in company holiday tables keyed by fiscal year.
// The config file can replace them; callers get a fresh copy each time.
func DefaultFiscalYears() map[string][]Holiday {
	return map[string][]Holiday{
		"2025-26": {
			{Date: "2026-01-14", Name: "Makar Sankranti / Pongal"},
			{Date: "2026-01-15", Name: "Vasi Uttarayan"},
			{Date: "2026-01-26", Name: "Republic Day"},
			{Date: "2026-03-04", Name: "Holi"},
		},
		"2026-27": {
			{Date: "2026-08-15", Name: "Independence Day"},
			{Date: "2026-08-28", Name: "Raksha Bandhan"},
			{Date: "2026-09-04", Name: "Janmashtami"},
			{Date: "2026-09-14", Name: "Ganesh Chaturthi"},
			{Date: "2026-10-02", Name: "Gandhi Jayanti"},
			{Date: "2026-10-20", Name: "Dussehra"},
			{Date: "2026-11-08", Name: "Diwali"},
			{Date: "2026-11-10", Name: "Gujarati New Year"},
			{Date: "2026-11-11", Name: "Bhai Dooj"},
			{Date: "2026-12-25", Name: "Christmas"},
		},
	}
}

// Default returns the built-in holidays as one calendar.
func Default() Holidays {
	return FromFiscalYears(DefaultFiscalYears())
}
