package kernel

import "servicearea/internal/pkg/errs"

// ErrUniverseIsEmpty is returned when constructing a universe with no provinces.
var ErrUniverseIsEmpty = errs.NewValueIsRequiredError("universe provinces")

// Universe is the static enumeration of the full addressable province set.
// It exists only to give coverage classification a denominator: the engine
// never validates assignments against it, so adding a region outside the
// universe is allowed and simply does not move the coverage ratio.
type Universe struct {
	codes map[string]struct{}
}

// cnProvinces is the standard set of 34 Chinese province-level divisions
// used by the operator console.
var cnProvinces = []string{
	"北京市", "天津市", "上海市", "重庆市",
	"河北省", "山西省", "辽宁省", "吉林省", "黑龙江省",
	"江苏省", "浙江省", "安徽省", "福建省", "江西省", "山东省",
	"河南省", "湖北省", "湖南省", "广东省", "海南省",
	"四川省", "贵州省", "云南省", "陕西省", "甘肃省", "青海省", "台湾省",
	"内蒙古自治区", "广西壮族自治区", "西藏自治区", "宁夏回族自治区", "新疆维吾尔自治区",
	"香港特别行政区", "澳门特别行政区",
}

// NewUniverse builds a universe from explicit province codes.
// Input is trimmed and deduplicated; an empty result is an error.
func NewUniverse(provinces []string) (Universe, error) {
	codes, err := NormalizeRegionCodes(provinces)
	if err != nil {
		return Universe{}, err
	}
	if len(codes) == 0 {
		return Universe{}, ErrUniverseIsEmpty
	}

	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c.String()] = struct{}{}
	}
	return Universe{codes: set}, nil
}

// DefaultUniverse returns the Chinese province-level division set.
func DefaultUniverse() Universe {
	u, err := NewUniverse(cnProvinces)
	if err != nil {
		// The built-in list is static and non-empty.
		panic(err)
	}
	return u
}

// Size returns the universe cardinality.
func (u Universe) Size() int {
	return len(u.codes)
}

// Contains reports whether a province belongs to the universe.
func (u Universe) Contains(code RegionCode) bool {
	_, ok := u.codes[code.String()]
	return ok
}

// Validate checks that the universe was built through a constructor.
func (u Universe) Validate() error {
	if len(u.codes) == 0 {
		return ErrUniverseIsEmpty
	}
	return nil
}
