package zone

import "strings"

// Catalog returns the descriptors offered by the add-search view. Offset
// labels are display-only standard-time hints; all computation goes through
// the IANA key. Static configuration data, kept in rough west-to-east order.
func Catalog() []Descriptor {
	return []Descriptor{
		{Name: "Honolulu", Zone: "Pacific/Honolulu", OffsetLabel: "UTC-10"},
		{Name: "Anchorage", Zone: "America/Anchorage", OffsetLabel: "UTC-9"},
		{Name: "Los Angeles", Zone: "America/Los_Angeles", OffsetLabel: "UTC-8"},
		{Name: "Vancouver", Zone: "America/Vancouver", OffsetLabel: "UTC-8"},
		{Name: "Denver", Zone: "America/Denver", OffsetLabel: "UTC-7"},
		{Name: "Mexico City", Zone: "America/Mexico_City", OffsetLabel: "UTC-6"},
		{Name: "Chicago", Zone: "America/Chicago", OffsetLabel: "UTC-6"},
		{Name: "New York", Zone: "America/New_York", OffsetLabel: "UTC-5"},
		{Name: "Toronto", Zone: "America/Toronto", OffsetLabel: "UTC-5"},
		{Name: "Santiago", Zone: "America/Santiago", OffsetLabel: "UTC-4"},
		{Name: "Buenos Aires", Zone: "America/Argentina/Buenos_Aires", OffsetLabel: "UTC-3"},
		{Name: "São Paulo", Zone: "America/Sao_Paulo", OffsetLabel: "UTC-3"},
		{Name: "Reykjavik", Zone: "Atlantic/Reykjavik", OffsetLabel: "UTC+0"},
		{Name: "London", Zone: "Europe/London", OffsetLabel: "UTC+0"},
		{Name: "Lagos", Zone: "Africa/Lagos", OffsetLabel: "UTC+1"},
		{Name: "Paris", Zone: "Europe/Paris", OffsetLabel: "UTC+1"},
		{Name: "Berlin", Zone: "Europe/Berlin", OffsetLabel: "UTC+1"},
		{Name: "Madrid", Zone: "Europe/Madrid", OffsetLabel: "UTC+1"},
		{Name: "Cairo", Zone: "Africa/Cairo", OffsetLabel: "UTC+2"},
		{Name: "Johannesburg", Zone: "Africa/Johannesburg", OffsetLabel: "UTC+2"},
		{Name: "Istanbul", Zone: "Europe/Istanbul", OffsetLabel: "UTC+3"},
		{Name: "Moscow", Zone: "Europe/Moscow", OffsetLabel: "UTC+3"},
		{Name: "Nairobi", Zone: "Africa/Nairobi", OffsetLabel: "UTC+3"},
		{Name: "Dubai", Zone: "Asia/Dubai", OffsetLabel: "UTC+4"},
		{Name: "Karachi", Zone: "Asia/Karachi", OffsetLabel: "UTC+5"},
		{Name: "Mumbai", Zone: "Asia/Kolkata", OffsetLabel: "UTC+5:30"},
		{Name: "Dhaka", Zone: "Asia/Dhaka", OffsetLabel: "UTC+6"},
		{Name: "Bangkok", Zone: "Asia/Bangkok", OffsetLabel: "UTC+7"},
		{Name: "Jakarta", Zone: "Asia/Jakarta", OffsetLabel: "UTC+7"},
		{Name: "Singapore", Zone: "Asia/Singapore", OffsetLabel: "UTC+8"},
		{Name: "Hong Kong", Zone: "Asia/Hong_Kong", OffsetLabel: "UTC+8"},
		{Name: "Shanghai", Zone: "Asia/Shanghai", OffsetLabel: "UTC+8"},
		{Name: "Seoul", Zone: "Asia/Seoul", OffsetLabel: "UTC+9"},
		{Name: "Tokyo", Zone: "Asia/Tokyo", OffsetLabel: "UTC+9"},
		{Name: "Sydney", Zone: "Australia/Sydney", OffsetLabel: "UTC+10"},
		{Name: "Auckland", Zone: "Pacific/Auckland", OffsetLabel: "UTC+12"},
	}
}

// Defaults is the selection used on first run and whenever stored data is
// absent or unreadable.
func Defaults() []Descriptor {
	return []Descriptor{
		{Name: "New York", Zone: "America/New_York", OffsetLabel: "UTC-5"},
		{Name: "London", Zone: "Europe/London", OffsetLabel: "UTC+0"},
		{Name: "Tokyo", Zone: "Asia/Tokyo", OffsetLabel: "UTC+9"},
		{Name: "Sydney", Zone: "Australia/Sydney", OffsetLabel: "UTC+10"},
	}
}

// Search filters the catalog by case-insensitive substring match against the
// display name and the zone key. An empty query returns the whole catalog.
func Search(query string) []Descriptor {
	if query == "" {
		return Catalog()
	}
	q := strings.ToLower(query)
	var matches []Descriptor
	for _, d := range Catalog() {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Zone), q) {
			matches = append(matches, d)
		}
	}
	return matches
}

// ByZone looks up a catalog descriptor by zone key.
func ByZone(zoneKey string) (Descriptor, bool) {
	for _, d := range Catalog() {
		if d.Zone == zoneKey {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Areas groups All into area -> locations, skipping keys without an area
// part (UTC and the like).
func Areas() map[string][]string {
	areas := make(map[string][]string)
	for _, tz := range All {
		area, location, found := strings.Cut(tz, "/")
		if !found {
			continue
		}
		areas[area] = append(areas[area], location)
	}
	return areas
}

// All lists the IANA zone keys known to the list command and shell
// completion. A curated subset of the tz database covering every area.
var All = []string{
	"Africa/Abidjan",
	"Africa/Accra",
	"Africa/Addis_Ababa",
	"Africa/Algiers",
	"Africa/Cairo",
	"Africa/Casablanca",
	"Africa/Dakar",
	"Africa/Dar_es_Salaam",
	"Africa/Harare",
	"Africa/Johannesburg",
	"Africa/Kampala",
	"Africa/Khartoum",
	"Africa/Kinshasa",
	"Africa/Lagos",
	"Africa/Luanda",
	"Africa/Nairobi",
	"Africa/Tripoli",
	"Africa/Tunis",
	"America/Anchorage",
	"America/Argentina/Buenos_Aires",
	"America/Asuncion",
	"America/Bogota",
	"America/Caracas",
	"America/Chicago",
	"America/Costa_Rica",
	"America/Denver",
	"America/Edmonton",
	"America/Guatemala",
	"America/Halifax",
	"America/Havana",
	"America/La_Paz",
	"America/Lima",
	"America/Los_Angeles",
	"America/Mexico_City",
	"America/Montevideo",
	"America/New_York",
	"America/Panama",
	"America/Phoenix",
	"America/Santiago",
	"America/Sao_Paulo",
	"America/St_Johns",
	"America/Toronto",
	"America/Vancouver",
	"America/Winnipeg",
	"Antarctica/McMurdo",
	"Antarctica/Palmer",
	"Asia/Almaty",
	"Asia/Amman",
	"Asia/Baghdad",
	"Asia/Baku",
	"Asia/Bangkok",
	"Asia/Beirut",
	"Asia/Colombo",
	"Asia/Dhaka",
	"Asia/Dubai",
	"Asia/Hong_Kong",
	"Asia/Ho_Chi_Minh",
	"Asia/Jakarta",
	"Asia/Jerusalem",
	"Asia/Kabul",
	"Asia/Karachi",
	"Asia/Kathmandu",
	"Asia/Kolkata",
	"Asia/Kuala_Lumpur",
	"Asia/Kuwait",
	"Asia/Manila",
	"Asia/Riyadh",
	"Asia/Seoul",
	"Asia/Shanghai",
	"Asia/Singapore",
	"Asia/Taipei",
	"Asia/Tashkent",
	"Asia/Tbilisi",
	"Asia/Tehran",
	"Asia/Tokyo",
	"Asia/Ulaanbaatar",
	"Asia/Yangon",
	"Asia/Yekaterinburg",
	"Atlantic/Azores",
	"Atlantic/Bermuda",
	"Atlantic/Canary",
	"Atlantic/Cape_Verde",
	"Atlantic/Reykjavik",
	"Australia/Adelaide",
	"Australia/Brisbane",
	"Australia/Darwin",
	"Australia/Hobart",
	"Australia/Melbourne",
	"Australia/Perth",
	"Australia/Sydney",
	"Europe/Amsterdam",
	"Europe/Athens",
	"Europe/Belgrade",
	"Europe/Berlin",
	"Europe/Brussels",
	"Europe/Bucharest",
	"Europe/Budapest",
	"Europe/Copenhagen",
	"Europe/Dublin",
	"Europe/Helsinki",
	"Europe/Istanbul",
	"Europe/Kyiv",
	"Europe/Lisbon",
	"Europe/London",
	"Europe/Madrid",
	"Europe/Moscow",
	"Europe/Oslo",
	"Europe/Paris",
	"Europe/Prague",
	"Europe/Riga",
	"Europe/Rome",
	"Europe/Sofia",
	"Europe/Stockholm",
	"Europe/Tallinn",
	"Europe/Vienna",
	"Europe/Vilnius",
	"Europe/Warsaw",
	"Europe/Zurich",
	"Indian/Maldives",
	"Indian/Mauritius",
	"Pacific/Auckland",
	"Pacific/Chatham",
	"Pacific/Fiji",
	"Pacific/Guam",
	"Pacific/Honolulu",
	"Pacific/Midway",
	"Pacific/Noumea",
	"Pacific/Pago_Pago",
	"Pacific/Port_Moresby",
	"Pacific/Tahiti",
	"Pacific/Tongatapu",
	"UTC",
}
