package entity

// Region is one of the three independently tracked focus pools.
type Region int

const (
	RegionTopChrome Region = iota
	RegionContent
	RegionBottomChrome
)

// Regions lists all regions in lookup order.
var Regions = [...]Region{RegionTopChrome, RegionContent, RegionBottomChrome}

// Valid reports whether r is one of the known regions.
func (r Region) Valid() bool {
	return r >= RegionTopChrome && r <= RegionBottomChrome
}

func (r Region) String() string {
	switch r {
	case RegionTopChrome:
		return "top_chrome"
	case RegionContent:
		return "content"
	case RegionBottomChrome:
		return "bottom_chrome"
	default:
		return "unknown"
	}
}

// ParseRegion converts a configuration name into a Region.
func ParseRegion(name string) (Region, error) {
	switch name {
	case "top_chrome", "top":
		return RegionTopChrome, nil
	case "content", "":
		return RegionContent, nil
	case "bottom_chrome", "bottom":
		return RegionBottomChrome, nil
	default:
		return -1, ErrUnknownRegion
	}
}
