package feed

import (
	"net/url"
	"strings"

	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
)

// Recognized filter criteria.
const (
	FilterAuthor   = "author"
	FilterClubName = "clubName"
)

// HomeClub is the club selector entry for the home feed. Selecting it
// clears the club criterion instead of filtering by a club of that name.
const HomeClub = "Main"

func IsHomeClub(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), HomeClub)
}

func knownFilter(name string) bool {
	return name == FilterAuthor || name == FilterClubName
}

// FilterSet maps criterion name to value, one value per name. A criterion
// is either present with a non-empty value or absent. The zero value is an
// empty set ready to use.
type FilterSet struct {
	criteria map[string]string
}

func NewFilterSet() FilterSet {
	return FilterSet{criteria: make(map[string]string, 2)}
}

// Set stores value under name, replacing any previous value. An empty value,
// or HomeClub for clubName, removes the criterion.
func (f *FilterSet) Set(name, value string) error {
	if !knownFilter(name) {
		return appErrors.ErrInvalidFilterName
	}

	value = strings.TrimSpace(value)
	if value == "" || (name == FilterClubName && IsHomeClub(value)) {
		delete(f.criteria, name)
		return nil
	}

	if f.criteria == nil {
		f.criteria = make(map[string]string, 2)
	}
	f.criteria[name] = value
	return nil
}

func (f *FilterSet) Clear() {
	clear(f.criteria)
}

func (f FilterSet) Get(name string) (string, bool) {
	v, ok := f.criteria[name]
	return v, ok
}

func (f FilterSet) Author() string {
	return f.criteria[FilterAuthor]
}

func (f FilterSet) ClubName() string {
	return f.criteria[FilterClubName]
}

func (f FilterSet) Len() int {
	return len(f.criteria)
}

func (f FilterSet) IsEmpty() bool {
	return len(f.criteria) == 0
}

func (f FilterSet) Clone() FilterSet {
	c := NewFilterSet()
	for k, v := range f.criteria {
		c.criteria[k] = v
	}
	return c
}

func (f FilterSet) Equal(other FilterSet) bool {
	if len(f.criteria) != len(other.criteria) {
		return false
	}
	for k, v := range f.criteria {
		if ov, ok := other.criteria[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Encode serializes the set as a query string with keys in sorted order,
// so equal sets always encode identically.
func (f FilterSet) Encode() string {
	v := make(url.Values, len(f.criteria))
	for name, value := range f.criteria {
		v.Set(name, value)
	}
	return v.Encode()
}

func (f FilterSet) String() string {
	if f.IsEmpty() {
		return "<home>"
	}
	return f.Encode()
}

// ParseFilterSet is the inverse of Encode. The last value wins for repeated
// keys and the same removal rules as Set apply.
func ParseFilterSet(rawQuery string) (FilterSet, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return FilterSet{}, appErrors.Wrap(appErrors.CodeInvalidArgument, "malformed filter query", err)
	}
	return FromValues(values)
}

func FromValues(values url.Values) (FilterSet, error) {
	fs := NewFilterSet()
	for name, vs := range values {
		if len(vs) == 0 {
			continue
		}
		if err := fs.Set(name, vs[len(vs)-1]); err != nil {
			return FilterSet{}, err
		}
	}
	return fs, nil
}
