package xnu

// Release is a Darwin kernel major version.
type Release uint64

const (
	Cheetah      Release = 4
	Puma         Release = 5
	Jaguar       Release = 6
	Panther      Release = 7
	Tiger        Release = 8
	Leopard      Release = 9
	SnowLeopard  Release = 10
	Lion         Release = 11
	MountainLion Release = 12
	Mavericks    Release = 13
	Yosemite     Release = 14
	ElCapitan    Release = 15 // first release with SIP
	Sierra       Release = 16
	HighSierra   Release = 17
	Mojave       Release = 18
	Catalina     Release = 19
	BigSur       Release = 20 // signed system volume
	Monterey     Release = 21
	Ventura      Release = 22
	Sonoma       Release = 23
	Sequoia      Release = 24
	Tahoe        Release = 25
)

var releaseNames = map[Release]string{
	Cheetah:      "Cheetah",
	Puma:         "Puma",
	Jaguar:       "Jaguar",
	Panther:      "Panther",
	Tiger:        "Tiger",
	Leopard:      "Leopard",
	SnowLeopard:  "Snow Leopard",
	Lion:         "Lion",
	MountainLion: "Mountain Lion",
	Mavericks:    "Mavericks",
	Yosemite:     "Yosemite",
	ElCapitan:    "El Capitan",
	Sierra:       "Sierra",
	HighSierra:   "High Sierra",
	Mojave:       "Mojave",
	Catalina:     "Catalina",
	BigSur:       "Big Sur",
	Monterey:     "Monterey",
	Ventura:      "Ventura",
	Sonoma:       "Sonoma",
	Sequoia:      "Sequoia",
	Tahoe:        "Tahoe",
}

// ReleaseName returns the marketing name of a kernel major version, or "" if
// the major version is unknown.
func ReleaseName(major uint64) string {
	return releaseNames[Release(major)]
}
