package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Blank is the sentinel the catalog uses for "not set". Fields holding it
// are treated the same as empty strings for display and selector options.
const Blank = "-"

// Scalar holds a field that may appear in the catalog file as either a JSON
// string or a JSON number. It is always compared and displayed as a string.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	// Bare number token; keep its lexical form.
	*s = Scalar(trimmed)
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s Scalar) String() string { return string(s) }

// Record is one catalog entry. Field order here fixes the JSON field order
// of saved catalogs, keeping files diffable.
type Record struct {
	MainLink    string `json:"main_link"`
	Website     string `json:"website,omitempty"`
	Duration    Scalar `json:"duration"`
	Rate        Scalar `json:"rate"`
	Studio      string `json:"studio"`
	CoreCat     string `json:"core_cat"`
	Cat1        string `json:"cat_1"`
	Cat2        string `json:"cat_2"`
	Cat3        string `json:"cat_3"`
	Cat4        string `json:"cat_4"`
	Cat5        string `json:"cat_5"`
	Cat6        string `json:"cat_6"`
	GeneralTags string `json:"general_tags"`
	Star1       string `json:"star_1"`
	Star2       string `json:"star_2"`
	Star3       string `json:"star_3"`
	Pos1        Scalar `json:"pos_1"`
	Pos2        Scalar `json:"pos_2"`
	Pos3        Scalar `json:"pos_3"`
}

// DurationMinutes returns the record duration in minutes. Unparseable or
// missing values coerce to 0.
func (r Record) DurationMinutes() int {
	value, err := strconv.Atoi(strings.TrimSpace(r.Duration.String()))
	if err != nil {
		return 0
	}
	return value
}

// Rating returns the record rating. Unparseable or missing values coerce to 0.
func (r Record) Rating() float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(r.Rate.String()), 64)
	if err != nil {
		return 0
	}
	return value
}

// Categories returns the six category tag fields in order.
func (r Record) Categories() []string {
	return []string{r.Cat1, r.Cat2, r.Cat3, r.Cat4, r.Cat5, r.Cat6}
}

// Stars returns the three star fields in order.
func (r Record) Stars() []string {
	return []string{r.Star1, r.Star2, r.Star3}
}

// Positions returns the three position fields as strings, regardless of how
// they were stored in the catalog file.
func (r Record) Positions() []string {
	return []string{r.Pos1.String(), r.Pos2.String(), r.Pos3.String()}
}

// SetField assigns a value to the field with the given catalog name. It
// reports whether the name matched a known field.
func (r *Record) SetField(name, value string) bool {
	switch name {
	case "main_link":
		r.MainLink = value
	case "website":
		r.Website = value
	case "duration":
		r.Duration = Scalar(value)
	case "rate":
		r.Rate = Scalar(value)
	case "studio":
		r.Studio = value
	case "core_cat":
		r.CoreCat = value
	case "cat_1":
		r.Cat1 = value
	case "cat_2":
		r.Cat2 = value
	case "cat_3":
		r.Cat3 = value
	case "cat_4":
		r.Cat4 = value
	case "cat_5":
		r.Cat5 = value
	case "cat_6":
		r.Cat6 = value
	case "general_tags":
		r.GeneralTags = value
	case "star_1":
		r.Star1 = value
	case "star_2":
		r.Star2 = value
	case "star_3":
		r.Star3 = value
	case "pos_1":
		r.Pos1 = Scalar(value)
	case "pos_2":
		r.Pos2 = Scalar(value)
	case "pos_3":
		r.Pos3 = Scalar(value)
	default:
		return false
	}
	return true
}

// MergeFields joins the non-empty values with ", ", skipping the Blank
// sentinel. Used for the merged Stars/Categories/Positions display columns.
func MergeFields(values []string) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" || trimmed == Blank {
			continue
		}
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, ", ")
}
