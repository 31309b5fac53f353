package valueobjects

import "fmt"

// LocationType distinguishes jobs worked at the customer site from jobs whose
// equipment is shipped to the workshop depot.
type LocationType string

const (
	LocationOnSite   LocationType = "on_site"
	LocationWorkshop LocationType = "workshop"
)

var validLocationTypes = map[LocationType]bool{
	LocationOnSite:   true,
	LocationWorkshop: true,
}

func (l LocationType) String() string {
	return string(l)
}

func (l LocationType) IsValid() bool {
	return validLocationTypes[l]
}

func (l LocationType) IsWorkshop() bool {
	return l == LocationWorkshop
}

func (l LocationType) IsOnSite() bool {
	return l == LocationOnSite
}

func NewLocationType(s string) (LocationType, error) {
	l := LocationType(s)
	if !l.IsValid() {
		return "", fmt.Errorf("invalid location type: %s", s)
	}
	return l, nil
}
