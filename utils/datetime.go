package utils

import "time"

// Sheet rows carry the processing moment in Indian Standard Time, split into
// separate Date and Time columns.
var istLocation = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// ISTDateTime formats t in IST as DD-MM-YYYY and HH:MM:SS (24-hour).
func ISTDateTime(t time.Time) (date string, clock string) {
	local := t.In(istLocation)
	return local.Format("02-01-2006"), local.Format("15:04:05")
}
